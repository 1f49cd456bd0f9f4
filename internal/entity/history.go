package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

// History - the list of board snapshots of a game and the cursor selecting the displayed one.
// Index 0 is always the empty board.
type History struct {
	Boards []Board `json:"history"`
	Cursor int     `json:"current_move"`
}

func NewHistory() *History {
	return &History{
		Boards: []Board{{}},
		Cursor: 0,
	}
}

// Play - drops every snapshot after the cursor, appends the board and moves the cursor onto it.
func (that *History) Play(board Board) {
	that.Boards = append(that.Boards[:that.Cursor+1], board)
	that.Cursor = len(that.Boards) - 1
}

// JumpTo - moves the cursor without touching the stored snapshots.
func (that *History) JumpTo(move int) error {
	if move < 0 || move >= len(that.Boards) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrMoveOutOfRange, move, len(that.Boards))
	}

	that.Cursor = move

	return nil
}

func (that *History) Current() Board {
	return that.Boards[that.Cursor]
}

func (that *History) Len() int {
	return len(that.Boards)
}

// XIsNext - X moves on even cursor positions, O on odd ones.
func (that *History) XIsNext() bool {
	return that.Cursor%2 == 0
}

func (that *History) NextMark() string {
	if that.XIsNext() {
		return PlayerX
	}
	return PlayerO
}
