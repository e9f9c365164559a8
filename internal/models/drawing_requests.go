package models

// DrawingStatusRequest carries one batch of stroke points for a player's part,
// plus the descriptive metadata snapshotted onto every chunk it touches.
type DrawingStatusRequest struct {
	GameCode            string  `json:"game_code"`
	PlayerName          string  `json:"player_name"`
	PlayerPart          string  `json:"player_part"`
	DrawingPoints       []Point `json:"drawing_points"`
	IsCompleted         bool    `json:"is_completed"`
	PlayerID            int     `json:"player_id"`
	PlayerImage         string  `json:"player_image"`
	PlayerDrawing       string  `json:"player_drawing"`
	DrawedPartsOfPlayer string  `json:"drawed_parts_of_player"`
}
