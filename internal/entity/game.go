package entity

import "github.com/google/uuid"

type Game struct {
	ID      string   `json:"id"`
	History *History `json:"moves"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		History: NewHistory(),
	}
}

// NewGameWithRandomID - creates a game identified by a fresh uuid.
func NewGameWithRandomID() *Game {
	return NewGame(uuid.NewString())
}

// CurrentBoard - the snapshot under the history cursor.
func (that *Game) CurrentBoard() Board {
	return that.History.Current()
}

func (that *Game) CurrentMove() int {
	return that.History.Cursor
}

func (that *Game) NextMark() string {
	return that.History.NextMark()
}
