package validators

import (
	"sketchParty/internal/errs"
	"sketchParty/internal/models"
)

func ValidateGameState(game *models.Game) []error {
	var errors []error
	if game == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if game.GameCode == "" {
		errors = append(errors, errs.ErrGameCodeRequired)
	}

	if len(game.GamesParts) == 0 {
		errors = append(errors, errs.ErrGamePartsRequired)
	}

	return errors
}

func ValidateDrawingStatus(drawingData *models.DrawingStatusRequest) []error {
	var errors []error
	if drawingData == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if drawingData.GameCode == "" {
		errors = append(errors, errs.ErrGameCodeRequired)
	}

	if drawingData.PlayerName == "" {
		errors = append(errors, errs.ErrPlayerNameRequired)
	}

	if drawingData.PlayerPart == "" {
		errors = append(errors, errs.ErrPlayerPartRequired)
	}

	return errors
}

func ValidatePlayerData(playerData *models.PlayerData) []error {
	var errors []error
	if playerData == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if playerData.PlayerName == "" {
		errors = append(errors, errs.ErrPlayerNameRequired)
	}

	return errors
}
