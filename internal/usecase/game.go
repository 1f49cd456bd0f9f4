package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type GameUseCase interface {
	// Click - plays the next mark on the cell. Illegal clicks leave the game untouched.
	Click(cell int) *View
	JumpTo(move int) (*View, error)

	NewGame() *View
	State() *View
}

type gameUseCase struct {
	logger *slog.Logger

	game *entity.Game
}

func NewGameUseCase(logger *slog.Logger) GameUseCase {
	that := &gameUseCase{
		logger: logger.With("component", "game"),
	}
	that.start()

	return that
}

func (that *gameUseCase) Click(cell int) *View {
	log := that.logger.With("method", "Click", "game", that.game.ID, "cell", cell)

	if err := tictactoe.MakeTurn(that.game, cell); err != nil {
		if isIgnoredTurn(err) {
			log.Debug("click ignored", "reason", err.Error())
		} else {
			log.Error("unexpected turn error", "error", err)
		}

		return that.State()
	}

	view := that.State()
	log.Info("move played", "move", view.CurrentMove, "mark", view.Board[cell])

	if view.Winner != tictactoe.NoWinner {
		log.Info("game won", "winner", view.Winner)
	}

	return view
}

func (that *gameUseCase) JumpTo(move int) (*View, error) {
	log := that.logger.With("method", "JumpTo", "game", that.game.ID)

	if err := tictactoe.JumpTo(that.game, move); err != nil {
		return nil, fmt.Errorf("failed to jump to move %d: %w", move, err)
	}

	log.Info("jumped", "move", move)

	return that.State(), nil
}

func (that *gameUseCase) NewGame() *View {
	that.start()

	return that.State()
}

func (that *gameUseCase) State() *View {
	return newView(that.game)
}

func (that *gameUseCase) start() {
	that.game = entity.NewGameWithRandomID()

	that.logger.Info("game started", "game", that.game.ID)
}

func isIgnoredTurn(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrGameFinished) ||
		errors.Is(err, apperror.ErrInvalidCell)
}
