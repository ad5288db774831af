package entity

import "time"

type QueryHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Query     string    `gorm:"type:text;not null;index" json:"query"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
