package models

// RoomState is the explicit session state derived from the start/join flags.
// Started wins over the join flag: a started room rejects joins even when the
// flag was left open.
type RoomState int

const (
	RoomOpen RoomState = iota
	RoomClosed
	RoomStarted
)

func (rs RoomState) String() string {
	switch rs {
	case RoomOpen:
		return "open"
	case RoomClosed:
		return "closed"
	case RoomStarted:
		return "started"
	default:
		return "unknown"
	}
}

func (game *Game) RoomState() RoomState {
	if game.StartGame {
		return RoomStarted
	}
	if !game.Join {
		return RoomClosed
	}
	return RoomOpen
}
