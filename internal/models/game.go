package models

import "gorm.io/gorm"

// Game is one drawing session room. The players collection is owned by the
// game; number_of_players always equals its length after any roster mutation.
type Game struct {
	gorm.Model
	GameCode        string      `json:"game_code" gorm:"uniqueIndex;not null"`
	DrawingTime     int         `json:"drawing_time"`
	GamesParts      StringArray `json:"games_Parts" gorm:"type:jsonb"`
	Join            bool        `json:"join"`
	StartGame       bool        `json:"start_game"`
	NumberOfPlayers int         `json:"number_of_players"`
	Players         []Player    `json:"players" gorm:"foreignKey:GameCode;references:GameCode"`
}

func (game *Game) ToJoinedGameResponse() JoinedGame {
	return JoinedGame{
		GameCode:        game.GameCode,
		NumberOfPlayers: game.NumberOfPlayers,
		GamesParts:      game.GamesParts,
		Players:         game.Players,
	}
}
