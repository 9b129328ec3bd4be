package entity

type EventType string

const (
	EventGameStarted      EventType = "game_started"
	EventGhostMoved       EventType = "ghost_moved"
	EventMarkPlaced       EventType = "mark_placed"
	EventPlacementDropped EventType = "placement_dropped"
	EventGameEnded        EventType = "game_ended"
)

// GhostMove describes a human mark relocated by the cheat.
type GhostMove struct {
	From Move `json:"from"`
	To   Move `json:"to"`
}

// Event is published by the game controller after every state change.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`

	// Player and Cell are set for EventMarkPlaced, Cell alone for EventPlacementDropped.
	Player Player `json:"player,omitempty"`
	Cell   Move   `json:"cell"`

	Ghost   GhostMove `json:"ghost"`
	Outcome Outcome   `json:"outcome"`
}
