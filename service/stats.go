package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/entity"
)

type statsRepo interface {
	Save(ctx context.Context, stats *entity.GameStats) error
	Load(ctx context.Context) (*entity.GameStats, error)
}

type StatsService interface {
	RecordGameEnd(ctx context.Context, result entity.GameResult)
	Stats() *entity.GameStats
}

type statsService struct {
	logger *slog.Logger

	mu    sync.RWMutex
	stats *entity.GameStats

	repo statsRepo
}

// NewStatsService - restores the aggregate stats from the repository, or
// starts fresh when nothing is stored yet. A load failure is non-fatal.
func NewStatsService(ctx context.Context, logger *slog.Logger, repo statsRepo) StatsService {
	log := logger.With("component", "stats")

	stats, err := repo.Load(ctx)
	if errors.Is(err, apperror.ErrStatsNotFound) {
		stats = entity.NewGameStats()
	} else if err != nil {
		log.Error("failed to load stats, starting fresh", "error", err)
		stats = entity.NewGameStats()
	}

	return &statsService{
		logger: log,
		stats:  stats,
		repo:   repo,
	}
}

// RecordGameEnd - applies one finished game to the aggregate counters and
// persists the result best-effort. Streak fields are order-dependent; every
// other counter is purely additive.
func (that *statsService) RecordGameEnd(ctx context.Context, result entity.GameResult) {
	that.mu.Lock()

	seconds := result.Duration.Seconds()
	tier := that.stats.Tier(result.Difficulty)

	switch result.Winner {
	case entity.PlayerX:
		that.stats.TotalWins++
		that.stats.WinStreak++
		if that.stats.WinStreak > that.stats.BestStreak {
			that.stats.BestStreak = that.stats.WinStreak
		}
		if that.stats.FastestWin == 0 || seconds < that.stats.FastestWin {
			that.stats.FastestWin = seconds
		}
		if result.TotalMoves == entity.PerfectGameMoves {
			that.stats.PerfectGames++
		}

		tier.Wins++
		if tier.FastestWin == 0 || seconds < tier.FastestWin {
			tier.FastestWin = seconds
		}
	case entity.PlayerO:
		that.stats.TotalLosses++
		that.stats.WinStreak = 0

		tier.Losses++
	case entity.PlayerTie:
		that.stats.TotalTies++

		tier.Ties++
	}

	that.stats.GamesPlayed++
	that.stats.TotalPlayTime += seconds
	tier.Played++

	snapshot := that.stats.Clone()
	that.mu.Unlock()

	// Persistence is best-effort: a failed save never invalidates the
	// in-memory state.
	if err := that.repo.Save(ctx, snapshot); err != nil {
		that.logger.Error("failed to persist stats", "error", err)
	}
}

// Stats - snapshot copy of the aggregate counters.
func (that *statsService) Stats() *entity.GameStats {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.stats.Clone()
}
