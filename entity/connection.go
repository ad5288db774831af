package entity

import (
	"fmt"
	"time"
)

type ConnectionParams struct {
	Host     string `json:"host" validate:"required,hostname_rfc1123|ip"`
	Port     int    `json:"port" validate:"required,min=1,max=65535"`
	Database string `json:"database" validate:"required"`
	User     string `json:"user" validate:"required"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode,omitempty" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
}

// Address returns host:port for log fields and status display.
func (p ConnectionParams) Address() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

// ConnectionProfile is a saved, named set of connection params.
// The password column holds the sealed password, never the plain one.
type ConnectionProfile struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"uniqueIndex;not null" json:"name" validate:"required,max=64"`
	Host           string    `gorm:"not null" json:"host"`
	Port           int       `gorm:"not null" json:"port"`
	Database       string    `gorm:"not null" json:"database"`
	User           string    `gorm:"not null" json:"user"`
	SealedPassword string    `gorm:"type:text" json:"-"`
	SSLMode        string    `json:"ssl_mode"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Params returns the connection params of the profile with the given
// (already opened) password.
func (p *ConnectionProfile) Params(password string) ConnectionParams {
	return ConnectionParams{
		Host:     p.Host,
		Port:     p.Port,
		Database: p.Database,
		User:     p.User,
		Password: password,
		SSLMode:  p.SSLMode,
	}
}

type SessionState string

const (
	StateDisconnected SessionState = "disconnected"
	StateConnected    SessionState = "connected"
)

// SessionStatus is a read-only view of the console session.
type SessionStatus struct {
	SessionID   string       `json:"session_id"`
	State       SessionState `json:"state"`
	Host        string       `json:"host,omitempty"`
	Database    string       `json:"database,omitempty"`
	User        string       `json:"user,omitempty"`
	ConnectedAt *time.Time   `json:"connected_at,omitempty"`
	Schemas     []string     `json:"schemas"`
	Tables      []string     `json:"tables"`
	TableSchema string       `json:"table_schema,omitempty"`
}
