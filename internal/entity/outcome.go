package entity

type OutcomeKind uint8

const (
	InProgress OutcomeKind = iota
	Win
	Draw
)

func (that OutcomeKind) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

type LineKind uint8

const (
	ColumnLine LineKind = iota
	RowLine
	DiagonalLine
	AntiDiagonalLine
)

func (that LineKind) String() string {
	switch that {
	case ColumnLine:
		return "column"
	case RowLine:
		return "row"
	case DiagonalLine:
		return "diagonal"
	default:
		return "anti-diagonal"
	}
}

// Line is a row, column or diagonal of three cells.
type Line struct {
	Kind  LineKind        `json:"kind"`
	Index int             `json:"index"`
	Cells [BoardSize]Move `json:"cells"`
}

// Lines holds every winning line: columns, rows, then the two diagonals.
var Lines = [8]Line{
	{Kind: ColumnLine, Index: 0, Cells: [3]Move{{0, 0}, {1, 0}, {2, 0}}},
	{Kind: ColumnLine, Index: 1, Cells: [3]Move{{0, 1}, {1, 1}, {2, 1}}},
	{Kind: ColumnLine, Index: 2, Cells: [3]Move{{0, 2}, {1, 2}, {2, 2}}},
	{Kind: RowLine, Index: 0, Cells: [3]Move{{0, 0}, {0, 1}, {0, 2}}},
	{Kind: RowLine, Index: 1, Cells: [3]Move{{1, 0}, {1, 1}, {1, 2}}},
	{Kind: RowLine, Index: 2, Cells: [3]Move{{2, 0}, {2, 1}, {2, 2}}},
	{Kind: DiagonalLine, Index: 0, Cells: [3]Move{{0, 0}, {1, 1}, {2, 2}}},
	{Kind: AntiDiagonalLine, Index: 0, Cells: [3]Move{{0, 2}, {1, 1}, {2, 0}}},
}

// Outcome is the state of a match as derived from its board.
// Winner and Line are only meaningful when Kind is Win.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Player      `json:"winner,omitempty"`
	Line   Line        `json:"line"`

	// Cheated is set when a human line was credited to the computer.
	Cheated bool `json:"cheated,omitempty"`
}

func (that Outcome) IsFinished() bool {
	return that.Kind != InProgress
}

// Evaluate derives the outcome of any board. It has no side effects.
func Evaluate(board Board) Outcome {
	for _, line := range Lines {
		a, b, c := board.at(line.Cells[0]), board.at(line.Cells[1]), board.at(line.Cells[2])
		if a != EmptyCell && a == b && b == c {
			return Outcome{Kind: Win, Winner: playerOf(a), Line: line}
		}
	}

	// the game goes on until all the squares are full
	if !board.IsFull() {
		return Outcome{Kind: InProgress}
	}

	return Outcome{Kind: Draw}
}

// WinningLine returns the first complete line of the player's marks.
func WinningLine(board Board, player Player) (Line, bool) {
	mark := player.Mark()
	for _, line := range Lines {
		if board.at(line.Cells[0]) == mark && board.at(line.Cells[1]) == mark && board.at(line.Cells[2]) == mark {
			return line, true
		}
	}

	return Line{}, false
}

func HasWon(board Board, player Player) bool {
	_, ok := WinningLine(board, player)
	return ok
}

func (that *Board) at(move Move) Cell {
	return that[move.Row][move.Col]
}

func playerOf(cell Cell) Player {
	if cell == ComputerCell {
		return Computer
	}
	return Human
}
