package models

// ChunkDescriptor identifies one chunk touched by an append.
type ChunkDescriptor struct {
	ID          uint `json:"id"`
	ChunkIndex  int  `json:"chunk_index"`
	PointsCount int  `json:"pointsCount"`
}

// DrawingResponse is a full stroke reassembled from its chunks in
// chunk_index order. Meta fields come from the first chunk.
type DrawingResponse struct {
	DrawingPoints Points `json:"drawing_points"`
	IsCompleted   bool   `json:"is_completed"`
	PlayerName    string `json:"player_name"`
	PlayerPart    string `json:"player_part"`
	GameCode      string `json:"game_code"`
	Chunks        int    `json:"chunks"`
	TotalPoints   int    `json:"total_points"`
}

// CompletedDrawing is one grouped (player_name, player_part) drawing returned
// by the completed-drawings collection.
type CompletedDrawing struct {
	GameCode            string `json:"game_code"`
	PlayerName          string `json:"player_name"`
	PlayerPart          string `json:"player_part"`
	DrawingPoints       Points `json:"drawing_points"`
	IsCompleted         bool   `json:"is_completed"`
	PlayerID            int    `json:"player_id"`
	PlayerImage         string `json:"player_image"`
	PlayerDrawing       string `json:"player_drawing"`
	DrawedPartsOfPlayer string `json:"drawed_parts_of_player"`
}

// IncompletePlayersResponse lists players still drawing a part.
type IncompletePlayersResponse struct {
	IncompletePlayers []string `json:"incompletePlayers"`
}
