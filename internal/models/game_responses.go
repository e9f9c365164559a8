package models

// JoinedGame is the roster-relevant subset returned after a validated join.
type JoinedGame struct {
	GameCode        string      `json:"game_code"`
	NumberOfPlayers int         `json:"number_of_players"`
	GamesParts      StringArray `json:"games_Parts"`
	Players         []Player    `json:"players"`
}

// JoinGameResponse tells a client whether it made it into the room.
type JoinGameResponse struct {
	CanJoin bool        `json:"canJoin"`
	Game    *JoinedGame `json:"game,omitempty"`
}
