package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody    = Error("invalid request body")
	ErrInvalidParams         = Error("invalid params")
	ErrGameCodeRequired      = Error("game code is required")
	ErrGamePartsRequired     = Error("game parts are required")
	ErrGameAlreadyExists     = Error("game already exists")
	ErrGameNotFound          = Error("game not found")
	ErrRoomAlreadyStarted    = Error("room already started")
	ErrRoomClosed            = Error("room is not accepting new players")
	ErrDrawingNotFound       = Error("drawing not found")
	ErrNoIncompleteDrawings  = Error("no incomplete drawings found")
	ErrNoCompletedDrawings   = Error("no completed drawings found")
	ErrPlayerNameRequired    = Error("player name is required")
	ErrPlayerPartRequired    = Error("player part is required")
	ErrChunkCreationFailed   = Error("drawing chunk creation failed")
)
