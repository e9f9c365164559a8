package handlers

import (
	"log"
	"net/http"
	"sketchParty/internal/errs"
	"sketchParty/internal/models"
	"sketchParty/internal/msgs"
	"sketchParty/internal/services"
	"sketchParty/internal/validators"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	gameService    *services.GameService
	drawingService *services.DrawingService
}

func NewRestHandler(
	gameService *services.GameService,
	drawingService *services.DrawingService,
) *RestHandler {
	return &RestHandler{
		gameService:    gameService,
		drawingService: drawingService,
	}
}

func statusForError(err error) int {
	switch err {
	case errs.ErrGameNotFound,
		errs.ErrDrawingNotFound,
		errs.ErrNoIncompleteDrawings,
		errs.ErrNoCompletedDrawings:
		return http.StatusNotFound
	case errs.ErrInvalidRequestBody,
		errs.ErrInvalidParams,
		errs.ErrGameCodeRequired,
		errs.ErrGamePartsRequired,
		errs.ErrGameAlreadyExists,
		errs.ErrPlayerNameRequired,
		errs.ErrPlayerPartRequired,
		errs.ErrRoomAlreadyStarted,
		errs.ErrRoomClosed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// StoreGameState godoc
// @Summary      Store the game state
// @Description  Create a new game room with its parts list and initial roster
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        game  body      models.Game  true  "Game state"
// @Success      201   {object}  models.Response
// @Failure      400   {object}  models.Response
// @Router       /storeGameState [post]
func (rh *RestHandler) StoreGameState(ctx *gin.Context) {
	var game models.Game
	if err := ctx.BindJSON(&game); err != nil {
		log.Println("Error game state json binding:", err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	created, createErrs := rh.gameService.CreateGame(&game)
	if len(createErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  createErrs,
		})
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgGameStateStored,
		Data:    created,
	})
}

// UpdateDrawingStatus godoc
// @Summary      Append drawing points
// @Description  Store a batch of stroke points, chunked into fixed-size records
// @Tags         drawing
// @Accept       json
// @Produce      json
// @Param        drawing  body      models.DrawingStatusRequest  true  "Drawing status"
// @Success      201      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Router       /updateDrawingStatus [post]
func (rh *RestHandler) UpdateDrawingStatus(ctx *gin.Context) {
	var drawingData models.DrawingStatusRequest
	if err := ctx.BindJSON(&drawingData); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	if validationErrs := validators.ValidateDrawingStatus(&drawingData); len(validationErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  validationErrs,
		})
		return
	}

	chunks, err := rh.drawingService.AppendPoints(&drawingData)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgDrawingStatusUpdated,
		Data:    gin.H{"chunks": chunks},
	})
}

// GetIncompleteUsers godoc
// @Summary      Get incomplete users for a game and part
// @Tags         drawing
// @Produce      json
// @Param        game_code  path      string  true  "Game code"
// @Param        part_name  path      string  true  "Part name"
// @Success      200        {object}  models.Response
// @Failure      404        {object}  models.Response
// @Router       /incompleteUsers/{game_code}/{part_name} [get]
func (rh *RestHandler) GetIncompleteUsers(ctx *gin.Context) {
	gameCode := ctx.Param("game_code")
	partName := ctx.Param("part_name")

	players, err := rh.drawingService.GetIncompletePlayers(gameCode, partName)
	if err != nil {
		ctx.AbortWithStatusJSON(statusForError(err), models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    models.IncompletePlayersResponse{IncompletePlayers: players},
	})
}

// GetDrawing godoc
// @Summary      Get drawing data for a player and part
// @Description  Reassemble the full stroke from its chunks in chunk order
// @Tags         drawing
// @Produce      json
// @Param        game_code    path      string  true  "Game code"
// @Param        player_name  path      string  true  "Player name"
// @Param        part_name    path      string  true  "Part name"
// @Success      200          {object}  models.Response
// @Failure      404          {object}  models.Response
// @Router       /getDrawing/{game_code}/{player_name}/{part_name} [get]
func (rh *RestHandler) GetDrawing(ctx *gin.Context) {
	gameCode := ctx.Param("game_code")
	playerName := ctx.Param("player_name")
	partName := ctx.Param("part_name")

	drawing, err := rh.drawingService.GetDrawing(gameCode, playerName, partName)
	if err != nil {
		ctx.AbortWithStatusJSON(statusForError(err), models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    drawing,
	})
}

// GetCompletedDrawings godoc
// @Summary      Get all completed drawings for a game
// @Description  Deletes the game's incomplete chunks, then returns completed drawings grouped by player and part
// @Tags         drawing
// @Produce      json
// @Param        game_code  path      string  true  "Game code"
// @Success      200        {object}  models.Response
// @Failure      404        {object}  models.Response
// @Router       /completedDrawings/{game_code} [get]
func (rh *RestHandler) GetCompletedDrawings(ctx *gin.Context) {
	gameCode := ctx.Param("game_code")

	drawings, err := rh.drawingService.CollectCompleted(gameCode)
	if err != nil {
		ctx.AbortWithStatusJSON(statusForError(err), models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    drawings,
	})
}

// UpdateGameWithPlayer godoc
// @Summary      Update game with new player data
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateGameWithPlayerRequest  true  "Player data"
// @Success      200   {object}  models.Response
// @Failure      404   {object}  models.Response
// @Router       /updateGameWithPlayer [put]
func (rh *RestHandler) UpdateGameWithPlayer(ctx *gin.Context) {
	var body models.UpdateGameWithPlayerRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	game, err := rh.gameService.AddPlayer(body.GameCode, &body.PlayerData)
	if err != nil {
		ctx.AbortWithStatusJSON(statusForError(err), models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgGameUpdated,
		Data:    game,
	})
}

// UpdateGameStatus godoc
// @Summary      Update game status fields
// @Description  Patch start_game, join and drawing_time; absent fields are left untouched
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateGameStatusRequest  true  "Status fields"
// @Success      200   {object}  models.Response
// @Failure      404   {object}  models.Response
// @Router       /updateGameStatus [put]
func (rh *RestHandler) UpdateGameStatus(ctx *gin.Context) {
	var body models.UpdateGameStatusRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	game, err := rh.gameService.UpdateStatus(&body)
	if err != nil {
		ctx.AbortWithStatusJSON(statusForError(err), models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgGameStatusUpdated,
		Data:    game,
	})
}

// ValidateJoinGame godoc
// @Summary      Validate if user can join the game and add them if possible
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      models.UpdateGameWithPlayerRequest  true  "Player data"
// @Success      200   {object}  models.Response
// @Failure      400   {object}  models.Response
// @Failure      404   {object}  models.Response
// @Router       /validateJoinGame [post]
func (rh *RestHandler) ValidateJoinGame(ctx *gin.Context) {
	var body models.UpdateGameWithPlayerRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	joinResponse, err := rh.gameService.ValidateAndJoin(body.GameCode, &body.PlayerData)
	if err != nil {
		ctx.AbortWithStatusJSON(statusForError(err), models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
			Data:    joinResponse,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserJoinedGame,
		Data:    joinResponse,
	})
}

// GetGameData godoc
// @Summary      Get game data by game code
// @Tags         game
// @Produce      json
// @Param        game_code  path      string  true  "Game code"
// @Success      200        {object}  models.Response
// @Failure      404        {object}  models.Response
// @Router       /getGameData/{game_code} [get]
func (rh *RestHandler) GetGameData(ctx *gin.Context) {
	gameCode := ctx.Param("game_code")

	game, err := rh.gameService.GetGame(gameCode)
	if err != nil {
		ctx.AbortWithStatusJSON(statusForError(err), models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgGameDataRetrieved,
		Data:    game,
	})
}
