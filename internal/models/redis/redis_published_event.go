package redis

const REDIS_CHANNEL_GAME_EVENTS = "game_events"

// PublishedEvent is the envelope relayed through redis so every server
// instance can fan a room broadcast out to its local connections.
type PublishedEvent struct {
	Event    string `json:"event"`
	GameCode string `json:"game_code"`
	Payload  any    `json:"payload"`
}
