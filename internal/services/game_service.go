package services

import (
	"sketchParty/internal/errs"
	"sketchParty/internal/models"
	"sketchParty/internal/repositories"
	"sketchParty/internal/validators"
)

// GameService owns room lifecycle and roster membership. Joining is gated by
// the room state machine in one place; handlers never inspect the raw flags.
type GameService struct {
	gameRepo *repositories.GameRepository
}

func NewGameService(gameRepo *repositories.GameRepository) *GameService {
	return &GameService{
		gameRepo: gameRepo,
	}
}

func (gs *GameService) CreateGame(game *models.Game) (*models.Game, []error) {
	if validationErrs := validators.ValidateGameState(game); len(validationErrs) > 0 {
		return nil, validationErrs
	}
	if gs.gameRepo.CheckGameExists(game.GameCode) {
		return nil, []error{errs.ErrGameAlreadyExists}
	}

	for i := range game.Players {
		game.Players[i].GameCode = game.GameCode
		if game.Players[i].PlayerBodyImages == nil {
			game.Players[i].PlayerBodyImages = models.StringArray{}
		}
	}
	game.NumberOfPlayers = len(game.Players)

	created, err := gs.gameRepo.CreateGame(game)
	if err != nil {
		return nil, []error{err}
	}
	return created, nil
}

func (gs *GameService) GetGame(gameCode string) (*models.Game, error) {
	return gs.gameRepo.FindGameByCode(gameCode)
}

func (gs *GameService) AddPlayer(gameCode string, playerData *models.PlayerData) (*models.Game, error) {
	if _, err := gs.gameRepo.FindGameByCode(gameCode); err != nil {
		return nil, err
	}
	player := playerData.ToPlayer(gameCode)
	return gs.gameRepo.AddPlayerToGame(gameCode, &player)
}

// ValidateAndJoin is the only join entry point. A started room rejects the
// join even when its join flag is still set.
func (gs *GameService) ValidateAndJoin(gameCode string, playerData *models.PlayerData) (*models.JoinGameResponse, error) {
	game, err := gs.gameRepo.FindGameByCode(gameCode)
	if err != nil {
		return nil, err
	}

	switch game.RoomState() {
	case models.RoomStarted:
		return &models.JoinGameResponse{CanJoin: false}, errs.ErrRoomAlreadyStarted
	case models.RoomClosed:
		return &models.JoinGameResponse{CanJoin: false}, errs.ErrRoomClosed
	}

	player := playerData.ToPlayer(gameCode)
	updated, err := gs.gameRepo.AddPlayerToGame(gameCode, &player)
	if err != nil {
		return nil, err
	}

	joined := updated.ToJoinedGameResponse()
	return &models.JoinGameResponse{
		CanJoin: true,
		Game:    &joined,
	}, nil
}

// UpdateStatus patches only the fields present in the request; nil fields
// keep their stored values.
func (gs *GameService) UpdateStatus(statusData *models.UpdateGameStatusRequest) (*models.Game, error) {
	if _, err := gs.gameRepo.FindGameByCode(statusData.GameCode); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if statusData.StartGame != nil {
		fields["start_game"] = *statusData.StartGame
	}
	if statusData.Join != nil {
		fields["join"] = *statusData.Join
	}
	if statusData.DrawingTime != nil {
		fields["drawing_time"] = *statusData.DrawingTime
	}

	return gs.gameRepo.UpdateGameFields(statusData.GameCode, fields)
}
