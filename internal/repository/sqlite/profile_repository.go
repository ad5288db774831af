package sqlite

import (
	"context"
	"errors"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/helper"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConnectionProfileRepository interface {
	Save(ctx context.Context, profile *entity.ConnectionProfile) error
	FindAll(ctx context.Context) ([]*entity.ConnectionProfile, error)
	FindByName(ctx context.Context, name string) (*entity.ConnectionProfile, error)
	Delete(ctx context.Context, name string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewConnectionProfileRepository(db *gorm.DB) ConnectionProfileRepository {
	return &profileRepository{db: db}
}

// Save inserts the profile, or overwrites the one with the same name.
func (r *profileRepository) Save(ctx context.Context, profile *entity.ConnectionProfile) error {
	funcName := "ConnectionProfileRepository.Save"
	if err := helper.CheckDeadline(ctx); err != nil {
		return errwrap.Wrap(err, funcName)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"host", "port", "database", "user", "sealed_password", "ssl_mode", "updated_at"}),
		}).
		Create(profile).Error
	if err != nil {
		return errwrap.Wrap(err, funcName)
	}
	return nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]*entity.ConnectionProfile, error) {
	funcName := "ConnectionProfileRepository.FindAll"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var profiles []*entity.ConnectionProfile
	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&profiles).Error

	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return profiles, nil
}

func (r *profileRepository) FindByName(ctx context.Context, name string) (*entity.ConnectionProfile, error) {
	funcName := "ConnectionProfileRepository.FindByName"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var profile entity.ConnectionProfile
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errwrap.Wrap(err, funcName)
	}
	return &profile, nil
}

func (r *profileRepository) Delete(ctx context.Context, name string) error {
	funcName := "ConnectionProfileRepository.Delete"
	if err := helper.CheckDeadline(ctx); err != nil {
		return errwrap.Wrap(err, funcName)
	}

	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&entity.ConnectionProfile{})
	if res.Error != nil {
		return errwrap.Wrap(res.Error, funcName)
	}
	if res.RowsAffected == 0 {
		return entity.ErrProfileNotFound
	}
	return nil
}
