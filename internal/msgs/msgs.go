package msgs

const (
	MsgOperationFailed            = "Operation failed"
	MsgOperationSuccessful        = "Operation successful"
	MsgGameStateStored            = "Game state stored successfully"
	MsgDrawingStatusUpdated       = "Drawing status updated successfully (chunked)"
	MsgGameUpdated                = "Game updated successfully"
	MsgGameStatusUpdated          = "Game status updated successfully"
	MsgUserJoinedGame             = "User joined the game successfully"
	MsgGameDataRetrieved          = "Game data retrieved successfully"
)
