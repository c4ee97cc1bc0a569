package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/entity"
)

// statsKey - the fixed key the aggregate stats blob lives under. One
// installation, one record.
const statsKey = "gameStats"

type StatsRepository interface {
	Save(ctx context.Context, stats *entity.GameStats) error
	Load(ctx context.Context) (*entity.GameStats, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func (that *dbStats) Save(ctx context.Context, stats *entity.GameStats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("could not marshal stats: %w", err)
	}

	if err = that.client.Set(ctx, statsKey, statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set stats: %w", err)
	}

	return nil
}

func (that *dbStats) Load(ctx context.Context) (*entity.GameStats, error) {
	response, err := that.client.Get(ctx, statsKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrStatsNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := entity.NewGameStats()
	if err = json.Unmarshal([]byte(response), stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return stats, nil
}
