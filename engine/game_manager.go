package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/entity"
	"github.com/rocketscienceinc/tictactoe-engine/service"
	"github.com/rocketscienceinc/tictactoe-engine/tictactoe"
)

// DefaultBotDelay - pause before the opponent's reply, so the UI can show
// the opponent "thinking".
const DefaultBotDelay = 500 * time.Millisecond

// Scheduler - defers the opponent's reply. The engine only needs AfterFunc;
// tests substitute a manual implementation.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// GameEndListener - game-end fan-out to sound/haptics/animation
// collaborators. Listeners are injected, never global.
type GameEndListener interface {
	GameEnded(result entity.GameResult)
}

// GameManager - the single-player game state machine. It owns the live
// board, the turn and the session counter; the statistics service owns the
// cumulative stats. All reads return committed state.
type GameManager struct {
	logger *slog.Logger

	mu         sync.Mutex
	board      entity.Board
	turn       string
	status     string
	winner     string
	winLine    *[3]int
	difficulty entity.Difficulty
	moves      int
	session    uint64
	startedAt  time.Time

	bot       service.BotService
	stats     service.StatsService
	listeners []GameEndListener

	scheduler Scheduler
	botDelay  time.Duration
	now       func() time.Time
}

func NewGameManager(logger *slog.Logger, bot service.BotService, stats service.StatsService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "engine"),

		status:     entity.StatusWaiting,
		difficulty: entity.DifficultyEasy,

		bot:   bot,
		stats: stats,

		scheduler: timerScheduler{},
		botDelay:  DefaultBotDelay,
		now:       time.Now,
	}
}

// AddGameEndListener - registers a collaborator notified after every
// finished game.
func (that *GameManager) AddGameEndListener(listener GameEndListener) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, listener)
}

// SetBotDelay - overrides the opponent's thinking pause.
func (that *GameManager) SetBotDelay(delay time.Duration) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.botDelay = delay
}

// StartGame - begins a fresh game with the human to move. Bumping the
// session counter invalidates any opponent move still pending from the
// previous game.
func (that *GameManager) StartGame() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.session++
	that.board.Reset()
	that.turn = entity.PlayerX
	that.status = entity.StatusOngoing
	that.winner = ""
	that.winLine = nil
	that.moves = 0
	that.startedAt = that.now()
}

// SubmitMove - applies the human's move, then schedules the opponent's
// reply. Illegal moves are rejected with no state change.
func (that *GameManager) SubmitMove(cell int) error {
	that.mu.Lock()

	if err := that.confirmHumanTurn(); err != nil {
		that.mu.Unlock()
		return err
	}

	if err := that.board.Set(cell, entity.PlayerX); err != nil {
		that.mu.Unlock()
		return fmt.Errorf("invalid turn: %w", err)
	}
	that.moves++

	if result, finished := that.finishIfTerminal(); finished {
		that.mu.Unlock()
		that.emitGameEnd(result)
		return nil
	}

	that.turn = entity.PlayerO
	session := that.session
	delay := that.botDelay
	that.mu.Unlock()

	that.scheduler.AfterFunc(delay, func() {
		that.playBotMove(session)
	})

	return nil
}

// SetDifficulty - selects the tier used for end-of-game stats bucketing.
// An in-progress board is not affected.
func (that *GameManager) SetDifficulty(difficulty entity.Difficulty) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.difficulty = difficulty
}

// playBotMove - the deferred opponent move. It validates the session id
// first, so a move scheduled for a stale game is dropped instead of leaking
// into a newer one.
func (that *GameManager) playBotMove(session uint64) {
	that.mu.Lock()

	if session != that.session || that.status != entity.StatusOngoing || that.turn != entity.PlayerO {
		that.mu.Unlock()
		return
	}

	cell, err := that.bot.ChooseCell(that.board, that.difficulty)
	if err != nil {
		that.logger.Error("bot failed to choose a cell", "error", err)
		that.mu.Unlock()
		return
	}

	if err = that.board.Set(cell, entity.PlayerO); err != nil {
		that.logger.Error("bot chose an illegal cell", "cell", cell, "error", err)
		that.mu.Unlock()
		return
	}
	that.moves++

	if result, finished := that.finishIfTerminal(); finished {
		that.mu.Unlock()
		that.emitGameEnd(result)
		return
	}

	that.turn = entity.PlayerX
	that.mu.Unlock()
}

func (that *GameManager) confirmHumanTurn() error {
	switch that.status {
	case entity.StatusWaiting:
		return apperror.ErrGameNotStarted
	case entity.StatusFinished:
		return apperror.ErrGameFinished
	}

	if that.turn != entity.PlayerX {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// finishIfTerminal - runs the win detector and, on a won or full board,
// transitions to finished and builds the game summary. Caller holds the lock.
func (that *GameManager) finishIfTerminal() (entity.GameResult, bool) {
	result := tictactoe.Evaluate(that.board)
	if result == nil && !that.board.IsFull() {
		return entity.GameResult{}, false
	}

	that.status = entity.StatusFinished
	that.turn = ""

	if result != nil {
		that.winner = result.Winner
		line := result.Line
		that.winLine = &line
	} else {
		that.winner = entity.PlayerTie
	}

	return entity.GameResult{
		Winner:     that.winner,
		Duration:   that.now().Sub(that.startedAt),
		TotalMoves: that.moves,
		Difficulty: that.difficulty,
	}, true
}

// emitGameEnd - records the game and fans the result out to listeners.
// Called outside the engine lock, so listeners may read engine state.
func (that *GameManager) emitGameEnd(result entity.GameResult) {
	that.stats.RecordGameEnd(context.Background(), result)

	that.mu.Lock()
	listeners := make([]GameEndListener, len(that.listeners))
	copy(listeners, that.listeners)
	that.mu.Unlock()

	for _, listener := range listeners {
		listener.GameEnded(result)
	}
}

// Board - snapshot copy of the current board.
func (that *GameManager) Board() entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board
}

func (that *GameManager) Turn() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.turn
}

func (that *GameManager) Status() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.status
}

func (that *GameManager) Winner() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.winner
}

// WinningLine - the completed line of the finished game, nil otherwise.
func (that *GameManager) WinningLine() *[3]int {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.winLine == nil {
		return nil
	}

	line := *that.winLine
	return &line
}

func (that *GameManager) MoveCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.moves
}

func (that *GameManager) Difficulty() entity.Difficulty {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.difficulty
}

// Stats - snapshot of the cumulative statistics.
func (that *GameManager) Stats() *entity.GameStats {
	return that.stats.Stats()
}
