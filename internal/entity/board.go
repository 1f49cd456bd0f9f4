package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	BoardSize = 9
)

// WinCombos - rows, columns and diagonals of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - a snapshot of the 9 cells at one point of the game.
type Board [BoardSize]string

// With - returns a copy of the board with the cell set to mark.
func (that Board) With(cell int, mark string) Board {
	that[cell] = mark
	return that
}

func (that Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}

// IsValidCell - reports whether cell is an index on the board.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
