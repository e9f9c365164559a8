package models

// SocketGameHub tracks which connections joined which game room.
// Rooms are keyed by game_code.
type SocketGameHub struct {
	Rooms map[string][]*SocketClient
}
