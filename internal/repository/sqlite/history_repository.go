package sqlite

import (
	"context"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/helper"
	"gorm.io/gorm"
)

type QueryHistoryRepository interface {
	Create(ctx context.Context, history *entity.QueryHistory) error
	FindLatest(ctx context.Context, limit int) ([]*entity.QueryHistory, error)
	Prune(ctx context.Context, maxLimit int) error
}

type QueryHistory struct {
	db *gorm.DB
}

func NewQueryHistoryRepository(db *gorm.DB) *QueryHistory {
	return &QueryHistory{db: db}
}

func (r *QueryHistory) Create(ctx context.Context, history *entity.QueryHistory) error {
	funcName := "QueryHistoryRepository.Create"
	if err := helper.CheckDeadline(ctx); err != nil {
		return errwrap.Wrap(err, funcName)
	}

	if err := r.db.WithContext(ctx).Create(history).Error; err != nil {
		return errwrap.Wrap(err, funcName)
	}
	return nil
}

// FindLatest returns up to limit entries, newest first.
func (r *QueryHistory) FindLatest(ctx context.Context, limit int) ([]*entity.QueryHistory, error) {
	funcName := "QueryHistoryRepository.FindLatest"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var histories []*entity.QueryHistory
	err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Find(&histories).Error

	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return histories, nil
}

// Prune keeps the newest maxLimit entries and deletes the rest.
func (r *QueryHistory) Prune(ctx context.Context, maxLimit int) error {
	funcName := "QueryHistoryRepository.Prune"
	if err := helper.CheckDeadline(ctx); err != nil {
		return errwrap.Wrap(err, funcName)
	}

	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)",
			r.db.Model(&entity.QueryHistory{}).
				Select("id").
				Order("id desc").
				Limit(maxLimit),
		).
		Delete(&entity.QueryHistory{}).Error
	if err != nil {
		return errwrap.Wrap(err, funcName)
	}
	return nil
}
