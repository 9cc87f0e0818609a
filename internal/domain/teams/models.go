package teams

// Team is the club reference embedded in a scheduled game.
type Team struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}
