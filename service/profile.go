package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/entity"
)

const defaultTheme = "classic"

type profileRepo interface {
	Save(ctx context.Context, profile *entity.Profile) error
	Load(ctx context.Context) (*entity.Profile, error)
}

type ProfileService interface {
	GetOrCreateProfile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, profile *entity.Profile) error
	SetDifficulty(ctx context.Context, difficulty entity.Difficulty) (*entity.Profile, error)
}

type profileService struct {
	logger *slog.Logger
	repo   profileRepo
}

func NewProfileService(logger *slog.Logger, repo profileRepo) ProfileService {
	return &profileService{
		logger: logger.With("component", "profile"),
		repo:   repo,
	}
}

// GetOrCreateProfile - loads the installation profile, creating it on first
// launch.
func (that *profileService) GetOrCreateProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := that.repo.Load(ctx)
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, apperror.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile = &entity.Profile{
		ID:           uuid.NewString(),
		Theme:        defaultTheme,
		SoundEnabled: true,
		Difficulty:   entity.DifficultyEasy,
	}

	if err = that.repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save new profile: %w", err)
	}

	that.logger.Info("created new profile", "id", profile.ID)

	return profile, nil
}

func (that *profileService) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	if err := that.repo.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// SetDifficulty - persists the selected difficulty tier on the profile.
func (that *profileService) SetDifficulty(ctx context.Context, difficulty entity.Difficulty) (*entity.Profile, error) {
	profile, err := that.GetOrCreateProfile(ctx)
	if err != nil {
		return nil, err
	}

	profile.Difficulty = difficulty
	if err = that.repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save difficulty: %w", err)
	}

	return profile, nil
}
