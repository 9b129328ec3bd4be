package entity

// Phase is the state of the turn controller.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlayerTurn
	PhaseComputerTurn
	PhaseEnded
)

func (that Phase) String() string {
	switch that {
	case PhaseMenu:
		return "menu"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseComputerTurn:
		return "computer_turn"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
