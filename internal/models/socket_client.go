package models

import (
	"github.com/gorilla/websocket"
)

// SocketClient is one websocket connection joined to game rooms.
type SocketClient struct {
	Conn     *websocket.Conn
	ClientId string
}
