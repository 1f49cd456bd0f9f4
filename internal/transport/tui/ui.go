package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const (
	statusHeight = 1
	boardGap     = 1
)

type gameUseCase interface {
	Click(cell int) *usecase.View
	JumpTo(move int) (*usecase.View, error)
	NewGame() *usecase.View
	State() *usecase.View
}

// UI - the game page: the board, the status line and the list of moves.
type UI struct {
	logger *slog.Logger
	game   gameUseCase

	app    *tview.Application
	board  *tview.Grid
	cells  [entity.BoardSize]*tview.Button
	status *tview.TextView
	moves  *tview.List
}

func New(logger *slog.Logger, conf config.UI, game gameUseCase) *UI {
	that := &UI{
		logger: logger.With("component", "tui"),
		game:   game,

		app:    tview.NewApplication(),
		status: tview.NewTextView().SetTextAlign(tview.AlignCenter),
		moves:  tview.NewList().ShowSecondaryText(false).SetHighlightFullLine(true),
	}

	that.board = tview.NewGrid().
		SetRows(conf.CellHeight, conf.CellHeight, conf.CellHeight).
		SetColumns(conf.CellWidth, conf.CellWidth, conf.CellWidth).
		SetGap(boardGap, boardGap)

	for cell := range that.cells {
		button := tview.NewButton(entity.EmptyCell).SetSelectedFunc(func() {
			that.click(cell)
		})
		that.cells[cell] = button
		that.board.AddItem(button, cell/3, cell%3, 1, 1, 0, 0, cell == 4)
	}

	that.moves.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		that.jumpTo(index)
	})
	that.moves.SetBorder(true).SetTitle(" Moves ")

	boardWidth := 3*conf.CellWidth + 2*boardGap
	boardHeight := 3*conf.CellHeight + 2*boardGap

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.status, statusHeight, 0, false).
		AddItem(that.board, boardHeight, 0, true)

	root := tview.NewFlex().
		AddItem(left, boardWidth, 0, true).
		AddItem(that.moves, 0, 1, false)

	that.app.SetRoot(root, true).
		EnableMouse(!conf.NoMouse).
		SetInputCapture(that.handleKey)

	that.render(game.State())

	return that
}

// Run - blocks until the user quits or ctx is canceled.
func (that *UI) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			that.app.Stop()
		case <-done:
		}
	}()

	that.logger.Info("terminal ui started")

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	that.logger.Info("terminal ui stopped")

	return nil
}

func (that *UI) click(cell int) {
	that.render(that.game.Click(cell))
}

func (that *UI) jumpTo(move int) {
	view, err := that.game.JumpTo(move)
	if err != nil {
		that.logger.Error("failed to jump", "move", move, "error", err)
		return
	}

	that.render(view)
}

func (that *UI) newGame() {
	that.render(that.game.NewGame())
}

// toggleFocus - moves the keyboard focus between the board and the move list.
func (that *UI) toggleFocus() {
	if that.moves.HasFocus() {
		that.app.SetFocus(that.board)
		return
	}

	that.app.SetFocus(that.moves)
}

// handleKey - 1-9 play a cell, Tab switches between the board and the moves, n starts a new game, q and Esc quit.
func (that *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		that.app.Stop()
		return nil
	case tcell.KeyTab, tcell.KeyBacktab:
		that.toggleFocus()
		return nil
	}

	if event.Key() != tcell.KeyRune {
		return event
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '9':
		that.click(int(r - '1'))
	case r == 'n':
		that.newGame()
	case r == 'q':
		that.app.Stop()
	default:
		return event
	}

	return nil
}

func (that *UI) render(view *usecase.View) {
	for cell, button := range that.cells {
		button.SetLabel(view.Board[cell])
	}

	that.status.SetText(view.Status)

	that.moves.Clear()
	for _, move := range view.Moves {
		that.moves.AddItem(fmt.Sprintf("%d. %s", move.Move+1, move.Description), "", 0, nil)
	}
	that.moves.SetCurrentItem(view.CurrentMove)
}
