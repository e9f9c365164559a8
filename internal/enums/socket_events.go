package enums

// Inbound socket events.
const (
	SOCKET_EVENT_JOIN_GAME             = "joinGame"
	SOCKET_EVENT_LEAVE_GAME            = "leaveGame"
	SOCKET_EVENT_GET_GAME_DATA         = "getGameData"
	SOCKET_EVENT_GET_INCOMPLETE_USERS  = "getIncompleteUsers"
	SOCKET_EVENT_GET_DRAWING           = "getDrawing"
	SOCKET_EVENT_UPDATE_GAME_DATA      = "updateGameData"
	SOCKET_EVENT_UPDATE_DRAWING_STATUS = "updateDrawingStatus"
)

// Outbound socket events.
const (
	SOCKET_EVENT_GAME_DATA              = "gameData"
	SOCKET_EVENT_INCOMPLETE_USERS       = "incompleteUsers"
	SOCKET_EVENT_DRAWING_DATA           = "drawingData"
	SOCKET_EVENT_GAME_DATA_UPDATED      = "gameDataUpdated"
	SOCKET_EVENT_DRAWING_UPDATED        = "drawingUpdated"
	SOCKET_EVENT_DRAWING_STATUS_UPDATED = "drawingStatusUpdated"
)
