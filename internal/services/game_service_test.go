package services

import (
	"errors"
	"sketchParty/internal/errs"
	"sketchParty/internal/models"
	"testing"
)

func openGame(code string, parts ...string) *models.Game {
	return &models.Game{
		GameCode:    code,
		DrawingTime: 60,
		GamesParts:  models.StringArray(parts),
		Join:        true,
		StartGame:   false,
	}
}

func playerData(name string, number int) *models.PlayerData {
	return &models.PlayerData{
		PlayerName:   name,
		PlayerNumber: number,
		PlayerImage:  "avatar.png",
	}
}

func TestCreateGameRequiresCodeAndParts(t *testing.T) {
	gs := newGameService(t)

	_, createErrs := gs.CreateGame(&models.Game{})
	if len(createErrs) != 2 {
		t.Fatalf("expected 2 validation errors, got %v", createErrs)
	}

	_, createErrs = gs.CreateGame(&models.Game{GameCode: "G1"})
	if len(createErrs) != 1 || !errors.Is(createErrs[0], errs.ErrGamePartsRequired) {
		t.Fatalf("expected parts required, got %v", createErrs)
	}
}

func TestCreateGameRejectsDuplicateCode(t *testing.T) {
	gs := newGameService(t)

	if _, createErrs := gs.CreateGame(openGame("G1", "head")); len(createErrs) > 0 {
		t.Fatalf("unexpected create errors: %v", createErrs)
	}
	_, createErrs := gs.CreateGame(openGame("G1", "head"))
	if len(createErrs) != 1 || !errors.Is(createErrs[0], errs.ErrGameAlreadyExists) {
		t.Fatalf("expected duplicate rejection, got %v", createErrs)
	}
}

func TestCreateGameStampsRoster(t *testing.T) {
	gs := newGameService(t)

	game := openGame("G1", "head", "torso", "legs")
	game.Players = []models.Player{
		{PlayerName: "ada", PlayerNumber: 1},
		{PlayerName: "bob", PlayerNumber: 2},
	}
	created, createErrs := gs.CreateGame(game)
	if len(createErrs) > 0 {
		t.Fatalf("unexpected create errors: %v", createErrs)
	}
	if created.NumberOfPlayers != 2 {
		t.Errorf("expected number_of_players 2, got %d", created.NumberOfPlayers)
	}
	for _, player := range created.Players {
		if player.GameCode != "G1" {
			t.Errorf("player %v missing game code", player.PlayerName)
		}
		if player.PlayerBodyImages == nil {
			t.Errorf("player %v has nil body images", player.PlayerName)
		}
	}
}

func TestGetGameNotFound(t *testing.T) {
	gs := newGameService(t)

	if _, err := gs.GetGame("missing"); !errors.Is(err, errs.ErrGameNotFound) {
		t.Fatalf("expected game not found, got %v", err)
	}
}

func TestAddPlayerKeepsCounterInSync(t *testing.T) {
	gs := newGameService(t)

	if _, createErrs := gs.CreateGame(openGame("G1", "head")); len(createErrs) > 0 {
		t.Fatalf("unexpected create errors: %v", createErrs)
	}

	for i, name := range []string{"ada", "bob", "eve"} {
		game, err := gs.AddPlayer("G1", playerData(name, i+1))
		if err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
		if game.NumberOfPlayers != len(game.Players) {
			t.Fatalf("counter drifted: number_of_players=%d, roster=%d", game.NumberOfPlayers, len(game.Players))
		}
		if game.NumberOfPlayers != i+1 {
			t.Fatalf("expected %d players, got %d", i+1, game.NumberOfPlayers)
		}
	}
}

func TestAddPlayerToMissingGame(t *testing.T) {
	gs := newGameService(t)

	if _, err := gs.AddPlayer("missing", playerData("ada", 1)); !errors.Is(err, errs.ErrGameNotFound) {
		t.Fatalf("expected game not found, got %v", err)
	}
}

func TestValidateAndJoinRejectsStartedRoom(t *testing.T) {
	gs := newGameService(t)

	game := openGame("G1", "head")
	game.StartGame = true
	// Started wins even though join is still true.
	if _, createErrs := gs.CreateGame(game); len(createErrs) > 0 {
		t.Fatalf("unexpected create errors: %v", createErrs)
	}

	joinResponse, err := gs.ValidateAndJoin("G1", playerData("ada", 1))
	if !errors.Is(err, errs.ErrRoomAlreadyStarted) {
		t.Fatalf("expected room already started, got %v", err)
	}
	if joinResponse == nil || joinResponse.CanJoin {
		t.Fatalf("expected canJoin=false, got %+v", joinResponse)
	}
}

func TestValidateAndJoinRejectsClosedRoom(t *testing.T) {
	gs := newGameService(t)

	game := openGame("G1", "head")
	game.Join = false
	if _, createErrs := gs.CreateGame(game); len(createErrs) > 0 {
		t.Fatalf("unexpected create errors: %v", createErrs)
	}

	joinResponse, err := gs.ValidateAndJoin("G1", playerData("ada", 1))
	if !errors.Is(err, errs.ErrRoomClosed) {
		t.Fatalf("expected room closed, got %v", err)
	}
	if joinResponse == nil || joinResponse.CanJoin {
		t.Fatalf("expected canJoin=false, got %+v", joinResponse)
	}
}

func TestValidateAndJoinAppendsExactlyOnePlayer(t *testing.T) {
	gs := newGameService(t)

	if _, createErrs := gs.CreateGame(openGame("G1", "head", "torso")); len(createErrs) > 0 {
		t.Fatalf("unexpected create errors: %v", createErrs)
	}

	joinResponse, err := gs.ValidateAndJoin("G1", playerData("ada", 1))
	if err != nil {
		t.Fatalf("unexpected join error: %v", err)
	}
	if !joinResponse.CanJoin {
		t.Fatalf("expected canJoin=true")
	}
	if joinResponse.Game == nil || joinResponse.Game.NumberOfPlayers != 1 || len(joinResponse.Game.Players) != 1 {
		t.Fatalf("unexpected joined game subset: %+v", joinResponse.Game)
	}
	if joinResponse.Game.GameCode != "G1" || len(joinResponse.Game.GamesParts) != 2 {
		t.Fatalf("unexpected joined game subset: %+v", joinResponse.Game)
	}
}

func TestValidateAndJoinMissingGame(t *testing.T) {
	gs := newGameService(t)

	if _, err := gs.ValidateAndJoin("missing", playerData("ada", 1)); !errors.Is(err, errs.ErrGameNotFound) {
		t.Fatalf("expected game not found, got %v", err)
	}
}

func TestUpdateStatusPatchesOnlyPresentFields(t *testing.T) {
	gs := newGameService(t)

	if _, createErrs := gs.CreateGame(openGame("G1", "head")); len(createErrs) > 0 {
		t.Fatalf("unexpected create errors: %v", createErrs)
	}

	started := true
	game, err := gs.UpdateStatus(&models.UpdateGameStatusRequest{
		GameCode:  "G1",
		StartGame: &started,
	})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if !game.StartGame {
		t.Errorf("start_game was not applied")
	}
	if !game.Join {
		t.Errorf("join was reset although absent from the patch")
	}
	if game.DrawingTime != 60 {
		t.Errorf("drawing_time was reset although absent from the patch, got %d", game.DrawingTime)
	}

	drawingTime := 90
	game, err = gs.UpdateStatus(&models.UpdateGameStatusRequest{
		GameCode:    "G1",
		DrawingTime: &drawingTime,
	})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if game.DrawingTime != 90 || !game.StartGame {
		t.Errorf("patch touched the wrong fields: %+v", game)
	}
}

func TestUpdateStatusMissingGame(t *testing.T) {
	gs := newGameService(t)

	started := true
	_, err := gs.UpdateStatus(&models.UpdateGameStatusRequest{GameCode: "missing", StartGame: &started})
	if !errors.Is(err, errs.ErrGameNotFound) {
		t.Fatalf("expected game not found, got %v", err)
	}
}
