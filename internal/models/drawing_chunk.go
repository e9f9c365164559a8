package models

import "gorm.io/gorm"

// MaxPointsPerChunk caps how many stroke points one persisted chunk may hold.
// A drawing longer than this is split across consecutive chunk_index values.
const MaxPointsPerChunk = 50

// DrawingChunk is one fixed-capacity slice of a player's stroke data for one
// body part. Chunks of the same (game_code, player_name, player_part) stream
// carry contiguous chunk_index values starting at 0.
type DrawingChunk struct {
	gorm.Model
	GameCode            string `json:"game_code" gorm:"index:idx_chunk_stream"`
	PlayerName          string `json:"player_name" gorm:"index:idx_chunk_stream"`
	PlayerPart          string `json:"player_part" gorm:"index:idx_chunk_stream"`
	ChunkIndex          int    `json:"chunk_index"`
	DrawingPoints       Points `json:"drawing_points" gorm:"type:jsonb"`
	IsCompleted         bool   `json:"is_completed"`
	PlayerID            int    `json:"player_id"`
	PlayerImage         string `json:"player_image"`
	PlayerDrawing       string `json:"player_drawing"`
	DrawedPartsOfPlayer string `json:"drawed_parts_of_player"`
}

func (dc *DrawingChunk) SpaceLeft() int {
	return MaxPointsPerChunk - len(dc.DrawingPoints)
}

func (dc *DrawingChunk) ToChunkDescriptor() ChunkDescriptor {
	return ChunkDescriptor{
		ID:          dc.ID,
		ChunkIndex:  dc.ChunkIndex,
		PointsCount: len(dc.DrawingPoints),
	}
}
