package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const NoWinner = ""

// Winner - returns the mark owning a full line of the board, or NoWinner.
// A full board without a line is not distinguished from an ongoing game.
func Winner(board entity.Board) string {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return NoWinner
}

// MakeTurn - places the next mark on the current board and records the result in the history.
func MakeTurn(game *entity.Game, cell int) error {
	board := game.CurrentBoard()

	if err := validateMove(board, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.History.Play(board.With(cell, game.NextMark()))

	return nil
}

// JumpTo - makes the given move the displayed one.
func JumpTo(game *entity.Game, move int) error {
	if err := game.History.JumpTo(move); err != nil {
		return fmt.Errorf("failed to jump: %w", err)
	}

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if Winner(board) != NoWinner {
		return apperror.ErrGameFinished
	}

	if !board.IsEmpty(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Status - the line shown above the board.
func Status(board entity.Board, nextMark string) string {
	if winner := Winner(board); winner != NoWinner {
		return "Winner is " + winner
	}

	return "Next Player is " + nextMark
}

// MoveDescription - the label of the history entry for a move.
func MoveDescription(move int) string {
	if move > 0 {
		return fmt.Sprintf("Go to move #%d", move)
	}

	return "Go to game start"
}
