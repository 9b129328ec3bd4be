package entity

// Score is the running tally of finished matches.
type Score struct {
	Games        int64 `json:"games"`
	ComputerWins int64 `json:"computer_wins"`
	CheatWins    int64 `json:"cheat_wins"`
	Draws        int64 `json:"draws"`
}
