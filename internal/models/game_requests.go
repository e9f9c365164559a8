package models

// UpdateGameWithPlayerRequest appends one player to a game's roster.
type UpdateGameWithPlayerRequest struct {
	GameCode   string     `json:"game_code"`
	PlayerData PlayerData `json:"player_data"`
}

// UpdateGameStatusRequest patches room flags. Nil fields are left untouched.
type UpdateGameStatusRequest struct {
	GameCode    string `json:"game_code"`
	StartGame   *bool  `json:"start_game"`
	Join        *bool  `json:"join"`
	DrawingTime *int   `json:"drawing_time"`
}
