package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/entity"
)

type ProfileRepository interface {
	Save(ctx context.Context, profile *entity.Profile) error
	Load(ctx context.Context) (*entity.Profile, error)
}

type profileRepository struct {
	conn *sql.DB
}

func NewProfileRepository(conn *sql.DB) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (that *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	query := `INSERT INTO profile (id, name, theme, sound_enabled, difficulty)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			theme = excluded.theme,
			sound_enabled = excluded.sound_enabled,
			difficulty = excluded.difficulty`

	_, err := that.conn.ExecContext(ctx, query,
		profile.ID, profile.Name, profile.Theme, profile.SoundEnabled, string(profile.Difficulty))
	if err != nil {
		return fmt.Errorf("can't save profile: %w", err)
	}

	return nil
}

func (that *profileRepository) Load(ctx context.Context) (*entity.Profile, error) {
	query := `SELECT id, name, theme, sound_enabled, difficulty FROM profile LIMIT 1`

	var (
		profile    entity.Profile
		difficulty string
	)

	err := that.conn.QueryRowContext(ctx, query).
		Scan(&profile.ID, &profile.Name, &profile.Theme, &profile.SoundEnabled, &difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't load profile: %w", err)
	}

	profile.Difficulty = entity.Difficulty(difficulty)

	return &profile, nil
}
