package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sketchParty/internal/enums"
	"sketchParty/internal/models"
	redisModels "sketchParty/internal/models/redis"
	"sketchParty/internal/models/socket"
	"sketchParty/internal/services"
	"sketchParty/internal/validators"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// SocketGameHandler serves the pub/sub side of the API. Room-wide results go
// through redis so every server instance fans them out to its own
// connections; unicast replies are written straight back on the requesting
// connection.
type SocketGameHandler struct {
	mu             sync.Mutex
	ctx            context.Context
	upgrader       websocket.Upgrader
	hub            *models.SocketGameHub
	Redis          *redis.Client
	gameService    *services.GameService
	drawingService *services.DrawingService
}

func NewSocketGameHandler(
	redis *redis.Client,
	ctx context.Context,
	gameService *services.GameService,
	drawingService *services.DrawingService,
) *SocketGameHandler {
	sgh := &SocketGameHandler{
		ctx:            ctx,
		gameService:    gameService,
		drawingService: drawingService,
		mu:             sync.Mutex{},
		Redis:          redis,
		hub: &models.SocketGameHub{
			Rooms: make(map[string][]*models.SocketClient),
		},
	}
	go sgh.HandleRedisMessages()
	return sgh
}

func (sgh *SocketGameHandler) HandleSocketGameRoute(ctx *gin.Context) {
	ws, err := sgh.upgradeHttpToWs(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: err.Error(),
			Errors:  []error{err},
		})
		return
	}
	defer func(ws *websocket.Conn) {
		if err := ws.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	client := &models.SocketClient{
		Conn:     ws,
		ClientId: uuid.NewString(),
	}
	log.Printf("Client connected: %v", client.ClientId)

	sgh.handleIncomingEvents(client)

	sgh.removeClientFromAllRooms(client.ClientId)
	log.Printf("Client disconnected: %v", client.ClientId)
}

func (sgh *SocketGameHandler) upgradeHttpToWs(ctx *gin.Context) (*websocket.Conn, error) {
	sgh.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	ws, err := sgh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func (sgh *SocketGameHandler) handleIncomingEvents(client *models.SocketClient) {
	for {
		var event socket.Event
		if err := client.Conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err) {
				break
			}
			log.Printf("handleIncomingEvents / Error reading json: %v", err)
			break
		}

		switch event.Event {
		case enums.SOCKET_EVENT_JOIN_GAME:
			sgh.handleJoinGame(client, event.Payload)
		case enums.SOCKET_EVENT_LEAVE_GAME:
			sgh.handleLeaveGame(client, event.Payload)
		case enums.SOCKET_EVENT_GET_GAME_DATA:
			sgh.handleGetGameData(client, event.Payload)
		case enums.SOCKET_EVENT_GET_INCOMPLETE_USERS:
			sgh.handleGetIncompleteUsers(client, event.Payload)
		case enums.SOCKET_EVENT_GET_DRAWING:
			sgh.handleGetDrawing(client, event.Payload)
		case enums.SOCKET_EVENT_UPDATE_GAME_DATA:
			sgh.handleUpdateGameData(client, event.Payload)
		case enums.SOCKET_EVENT_UPDATE_DRAWING_STATUS:
			sgh.handleUpdateDrawingStatus(client, event.Payload)
		default:
			log.Printf("Unknown event: %v", event.Event)
		}
	}
}

func (sgh *SocketGameHandler) handleJoinGame(client *models.SocketClient, payload json.RawMessage) {
	var room socket.GameRoomPayload
	if err := json.Unmarshal(payload, &room); err != nil || room.GameCode == "" {
		return
	}
	sgh.addClientToRoom(client, room.GameCode)
	log.Printf("Client %v joined game %v", client.ClientId, room.GameCode)
}

func (sgh *SocketGameHandler) handleLeaveGame(client *models.SocketClient, payload json.RawMessage) {
	var room socket.GameRoomPayload
	if err := json.Unmarshal(payload, &room); err != nil || room.GameCode == "" {
		return
	}
	sgh.removeClientFromRoom(client.ClientId, room.GameCode)
	log.Printf("Client %v left game %v", client.ClientId, room.GameCode)
}

func (sgh *SocketGameHandler) handleGetGameData(client *models.SocketClient, payload json.RawMessage) {
	var room socket.GameRoomPayload
	if err := json.Unmarshal(payload, &room); err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_GAME_DATA, Success: false, Message: err.Error()})
		return
	}

	game, err := sgh.gameService.GetGame(room.GameCode)
	if err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_GAME_DATA, Success: false, Message: err.Error()})
		return
	}
	sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_GAME_DATA, Success: true, Data: game})
}

func (sgh *SocketGameHandler) handleGetIncompleteUsers(client *models.SocketClient, payload json.RawMessage) {
	var req socket.IncompleteUsersPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_INCOMPLETE_USERS, Success: false, Message: err.Error()})
		return
	}

	players, err := sgh.drawingService.GetIncompletePlayers(req.GameCode, req.PartName)
	if err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_INCOMPLETE_USERS, Success: false, Message: err.Error()})
		return
	}
	sgh.sendToClient(client, socket.Reply{
		Event:   enums.SOCKET_EVENT_INCOMPLETE_USERS,
		Success: true,
		Data:    models.IncompletePlayersResponse{IncompletePlayers: players},
	})
}

func (sgh *SocketGameHandler) handleGetDrawing(client *models.SocketClient, payload json.RawMessage) {
	var req socket.DrawingPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_DRAWING_DATA, Success: false, Message: err.Error()})
		return
	}

	drawing, err := sgh.drawingService.GetDrawing(req.GameCode, req.PlayerName, req.PartName)
	if err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_DRAWING_DATA, Success: false, Message: err.Error()})
		return
	}
	sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_DRAWING_DATA, Success: true, Data: drawing})
}

func (sgh *SocketGameHandler) handleUpdateGameData(client *models.SocketClient, payload json.RawMessage) {
	var req socket.UpdateGamePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_GAME_DATA_UPDATED, Success: false, Message: err.Error()})
		return
	}

	game, err := sgh.gameService.UpdateStatus(&models.UpdateGameStatusRequest{
		GameCode:    req.GameCode,
		StartGame:   req.GameData.StartGame,
		Join:        req.GameData.Join,
		DrawingTime: req.GameData.DrawingTime,
	})
	if err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_GAME_DATA_UPDATED, Success: false, Message: err.Error()})
		return
	}

	sgh.publishToRoom(enums.SOCKET_EVENT_GAME_DATA_UPDATED, req.GameCode, game)
}

func (sgh *SocketGameHandler) handleUpdateDrawingStatus(client *models.SocketClient, payload json.RawMessage) {
	var drawingData models.DrawingStatusRequest
	if err := json.Unmarshal(payload, &drawingData); err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_DRAWING_STATUS_UPDATED, Success: false, Message: err.Error()})
		return
	}

	if validationErrs := validators.ValidateDrawingStatus(&drawingData); len(validationErrs) > 0 {
		sgh.sendToClient(client, socket.Reply{
			Event:   enums.SOCKET_EVENT_DRAWING_STATUS_UPDATED,
			Success: false,
			Message: validationErrs[0].Error(),
		})
		return
	}

	chunks, err := sgh.drawingService.AppendPoints(&drawingData)
	if err != nil {
		sgh.sendToClient(client, socket.Reply{Event: enums.SOCKET_EVENT_DRAWING_STATUS_UPDATED, Success: false, Message: err.Error()})
		return
	}

	sgh.publishToRoom(enums.SOCKET_EVENT_DRAWING_UPDATED, drawingData.GameCode, gin.H{
		"player_name":  drawingData.PlayerName,
		"player_part":  drawingData.PlayerPart,
		"is_completed": drawingData.IsCompleted,
		"chunks":       chunks,
	})

	sgh.sendToClient(client, socket.Reply{
		Event:   enums.SOCKET_EVENT_DRAWING_STATUS_UPDATED,
		Success: true,
		Data:    gin.H{"chunks": chunks},
	})
}

func (sgh *SocketGameHandler) addClientToRoom(client *models.SocketClient, gameCode string) {
	sgh.mu.Lock()
	defer sgh.mu.Unlock()
	if _, ok := sgh.hub.Rooms[gameCode]; !ok {
		sgh.hub.Rooms[gameCode] = []*models.SocketClient{}
	}
	for _, member := range sgh.hub.Rooms[gameCode] {
		if member.ClientId == client.ClientId {
			return
		}
	}
	sgh.hub.Rooms[gameCode] = append(sgh.hub.Rooms[gameCode], client)
}

func (sgh *SocketGameHandler) removeClientFromRoom(clientId string, gameCode string) {
	sgh.mu.Lock()
	defer sgh.mu.Unlock()
	sgh.removeClientLocked(clientId, gameCode)
}

func (sgh *SocketGameHandler) removeClientFromAllRooms(clientId string) {
	sgh.mu.Lock()
	defer sgh.mu.Unlock()
	for gameCode := range sgh.hub.Rooms {
		sgh.removeClientLocked(clientId, gameCode)
	}
}

// Caller must hold sgh.mu.
func (sgh *SocketGameHandler) removeClientLocked(clientId string, gameCode string) {
	for i, member := range sgh.hub.Rooms[gameCode] {
		if member.ClientId == clientId {
			sgh.hub.Rooms[gameCode] = append(sgh.hub.Rooms[gameCode][:i], sgh.hub.Rooms[gameCode][i+1:]...)
			break
		}
	}
	if len(sgh.hub.Rooms[gameCode]) == 0 {
		delete(sgh.hub.Rooms, gameCode)
	}
}

func (sgh *SocketGameHandler) sendToClient(client *models.SocketClient, reply socket.Reply) {
	sgh.mu.Lock()
	defer sgh.mu.Unlock()
	if err := client.Conn.WriteJSON(reply); err != nil {
		log.Printf("Error writing json: %v", err)
	}
}

func (sgh *SocketGameHandler) publishToRoom(event string, gameCode string, payload any) {
	publishedEvent := redisModels.PublishedEvent{
		Event:    event,
		GameCode: gameCode,
		Payload:  payload,
	}
	jsonEvent, err := json.Marshal(publishedEvent)
	if err != nil {
		log.Printf("Error marshalling event: %v", err)
		return
	}
	if err := sgh.PublishMessage(sgh.Redis, redisModels.REDIS_CHANNEL_GAME_EVENTS, jsonEvent); err != nil {
		log.Printf("Error publishing event: %v", err)
	}
}

func (sgh *SocketGameHandler) HandleRedisMessages() {
	ch := sgh.SubscribeToChannel(sgh.Redis, redisModels.REDIS_CHANNEL_GAME_EVENTS)
	for msg := range ch {
		var publishedEvent redisModels.PublishedEvent
		if err := json.Unmarshal([]byte(msg.Payload), &publishedEvent); err != nil {
			log.Printf("Error unmarshalling event: %v", err)
			continue
		}
		sgh.broadcastToRoom(publishedEvent)
	}
}

func (sgh *SocketGameHandler) broadcastToRoom(publishedEvent redisModels.PublishedEvent) {
	sgh.mu.Lock()
	defer sgh.mu.Unlock()
	reply := socket.Reply{
		Event:   publishedEvent.Event,
		Success: true,
		Data:    publishedEvent.Payload,
	}
	for _, client := range sgh.hub.Rooms[publishedEvent.GameCode] {
		if err := client.Conn.WriteJSON(reply); err != nil {
			log.Printf("Error writing json: %v", err)
			if err := client.Conn.Close(); err != nil {
				continue
			}
			sgh.removeClientLocked(client.ClientId, publishedEvent.GameCode)
		}
	}
}

func (sgh *SocketGameHandler) PublishMessage(redis *redis.Client, channel string, message []byte) error {
	return redis.Publish(sgh.ctx, channel, message).Err()
}

func (sgh *SocketGameHandler) SubscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(sgh.ctx, channel)
	if _, err := pubsub.Receive(sgh.ctx); err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}

// CloseAllConnections drops every room member; used during shutdown.
func (sgh *SocketGameHandler) CloseAllConnections() {
	sgh.mu.Lock()
	defer sgh.mu.Unlock()
	for gameCode, clients := range sgh.hub.Rooms {
		for _, client := range clients {
			if err := client.Conn.Close(); err != nil {
				continue
			}
		}
		delete(sgh.hub.Rooms, gameCode)
	}
}
