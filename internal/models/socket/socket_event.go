package socket

import (
	"encoding/json"
)

// Event is the envelope every inbound socket message arrives in.
type Event struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// GameRoomPayload addresses a game room.
type GameRoomPayload struct {
	GameCode string `json:"gameCode"`
}

// IncompleteUsersPayload asks for the players still drawing a part.
type IncompleteUsersPayload struct {
	GameCode string `json:"gameCode"`
	PartName string `json:"partName"`
}

// DrawingPayload addresses one player's drawing of one part.
type DrawingPayload struct {
	GameCode   string `json:"gameCode"`
	PlayerName string `json:"playerName"`
	PartName   string `json:"partName"`
}

// UpdateGamePayload patches a room's status fields.
type UpdateGamePayload struct {
	GameCode string         `json:"gameCode"`
	GameData GameDataFields `json:"gameData"`
}

// GameDataFields is the status subset a socket client may update. Nil fields
// are left untouched.
type GameDataFields struct {
	StartGame   *bool `json:"start_game"`
	Join        *bool `json:"join"`
	DrawingTime *int  `json:"drawing_time"`
}

// Reply is the envelope for every outbound socket message: the event name, a
// success flag and either the payload or a human-readable message.
type Reply struct {
	Event   string `json:"event"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
