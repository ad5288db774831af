package usecase

import (
	"context"

	"github.com/rahmatrdn/go-pg-manager/entity"
	"go.uber.org/zap"
)

func (u *consoleUsecase) SaveProfile(ctx context.Context, name string, params entity.ConnectionParams) (*entity.ConnectionProfile, error) {
	if err := u.validator.Validate(params); err != nil {
		return nil, err
	}

	profile := &entity.ConnectionProfile{
		Name:     name,
		Host:     params.Host,
		Port:     params.Port,
		Database: params.Database,
		User:     params.User,
		SSLMode:  params.SSLMode,
	}
	if err := u.validator.Validate(profile); err != nil {
		return nil, err
	}

	sealed, err := u.secret.Seal(params.Password)
	if err != nil {
		return nil, err
	}
	profile.SealedPassword = sealed

	if err := u.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	u.log.Info("profile saved", zap.String("profile", name), zap.String("address", params.Address()))
	return profile, nil
}

func (u *consoleUsecase) ListProfiles(ctx context.Context) ([]*entity.ConnectionProfile, error) {
	return u.profileRepo.FindAll(ctx)
}

func (u *consoleUsecase) DeleteProfile(ctx context.Context, name string) error {
	return u.profileRepo.Delete(ctx, name)
}
