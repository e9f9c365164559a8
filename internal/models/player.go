package models

import "gorm.io/gorm"

// Player is one roster entry embedded in a game.
type Player struct {
	gorm.Model
	GameCode                       string      `json:"game_code" gorm:"index"`
	PlayerName                     string      `json:"player_name"`
	PlayerNumber                   int         `json:"player_number"`
	PlayerImage                    string      `json:"player_image"`
	PlayerBodyImages               StringArray `json:"player_body_images" gorm:"type:jsonb"`
	PlayerBodyPartsWithPlayerNames StringArray `json:"player_body_parts_with_player_names" gorm:"type:jsonb"`
	PlayerCurrentStep              IntArray    `json:"player_current_step" gorm:"type:jsonb"`
}

// PlayerData is the wire shape of a joining player before the game code is
// stamped onto it.
type PlayerData struct {
	PlayerName                     string      `json:"player_name"`
	PlayerNumber                   int         `json:"player_number"`
	PlayerImage                    string      `json:"player_image"`
	PlayerBodyImages               StringArray `json:"player_body_images"`
	PlayerBodyPartsWithPlayerNames StringArray `json:"player_body_parts_with_player_names"`
	PlayerCurrentStep              IntArray    `json:"player_current_step"`
}

func (pd *PlayerData) ToPlayer(gameCode string) Player {
	bodyImages := pd.PlayerBodyImages
	if bodyImages == nil {
		bodyImages = StringArray{}
	}
	return Player{
		GameCode:                       gameCode,
		PlayerName:                     pd.PlayerName,
		PlayerNumber:                   pd.PlayerNumber,
		PlayerImage:                    pd.PlayerImage,
		PlayerBodyImages:               bodyImages,
		PlayerBodyPartsWithPlayerNames: pd.PlayerBodyPartsWithPlayerNames,
		PlayerCurrentStep:              pd.PlayerCurrentStep,
	}
}
