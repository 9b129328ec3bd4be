package entity

// Cell is the state of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	HumanCell
	ComputerCell
)

func (that Cell) String() string {
	switch that {
	case HumanCell:
		return "X"
	case ComputerCell:
		return "O"
	default:
		return " "
	}
}

// Player is one of the two sides of the match. A draw is not a player.
type Player uint8

const (
	Human Player = iota + 1
	Computer
)

// Mark returns the cell value a player leaves on the board.
func (that Player) Mark() Cell {
	if that == Computer {
		return ComputerCell
	}
	return HumanCell
}

func (that Player) Opponent() Player {
	if that == Computer {
		return Human
	}
	return Computer
}

func (that Player) String() string {
	switch that {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}
