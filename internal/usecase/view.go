package usecase

import (
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

// View - everything the page shows for the move under the cursor.
type View struct {
	GameID      string       `json:"game_id"`
	Board       entity.Board `json:"board"`
	Status      string       `json:"status"`
	Winner      string       `json:"winner,omitempty"`
	NextMark    string       `json:"next_player"`
	CurrentMove int          `json:"current_move"`
	Moves       []MoveView   `json:"moves"`
}

type MoveView struct {
	Move        int    `json:"move"`
	Description string `json:"description"`
	Current     bool   `json:"current,omitempty"`
}

func newView(game *entity.Game) *View {
	board := game.CurrentBoard()
	nextMark := game.NextMark()

	moves := make([]MoveView, 0, game.History.Len())
	for move := range game.History.Len() {
		moves = append(moves, MoveView{
			Move:        move,
			Description: tictactoe.MoveDescription(move),
			Current:     move == game.CurrentMove(),
		})
	}

	return &View{
		GameID:      game.ID,
		Board:       board,
		Status:      tictactoe.Status(board, nextMark),
		Winner:      tictactoe.Winner(board),
		NextMark:    nextMark,
		CurrentMove: game.CurrentMove(),
		Moves:       moves,
	}
}
