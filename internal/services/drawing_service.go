package services

import (
	"fmt"
	"sketchParty/internal/errs"
	"sketchParty/internal/models"
	"sketchParty/internal/repositories"
	"sync"
)

// DrawingService stores stroke points in fixed-size chunks and reassembles
// them on read. Appends for one stream (game_code, player_name, player_part)
// are serialized through a per-stream lock held across the latest-chunk
// lookup and every chunk write; without it two writers can observe the same
// latest chunk and mint duplicate indexes.
type DrawingService struct {
	drawingRepo *repositories.DrawingRepository
	mu          sync.Mutex
	streamLocks map[string]*sync.Mutex
}

func NewDrawingService(drawingRepo *repositories.DrawingRepository) *DrawingService {
	return &DrawingService{
		drawingRepo: drawingRepo,
		streamLocks: make(map[string]*sync.Mutex),
	}
}

func streamKey(gameCode, playerName, playerPart string) string {
	return fmt.Sprintf("%s/%s/%s", gameCode, playerName, playerPart)
}

func (ds *DrawingService) lockStream(gameCode, playerName, playerPart string) *sync.Mutex {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	key := streamKey(gameCode, playerName, playerPart)
	lock, ok := ds.streamLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		ds.streamLocks[key] = lock
	}
	return lock
}

// AppendPoints fills the stream's latest chunk first, then spills the rest
// into new chunks of at most MaxPointsPerChunk points each, keeping
// chunk_index contiguous from 0. It returns a descriptor per touched chunk in
// touch order. An empty batch only performs the latest-chunk lookup.
//
// Each chunk write is its own durable operation; a failure mid-sequence
// leaves the already-written prefix in place and the caller must re-read the
// stream to reconcile.
func (ds *DrawingService) AppendPoints(drawingData *models.DrawingStatusRequest) ([]models.ChunkDescriptor, error) {
	lock := ds.lockStream(drawingData.GameCode, drawingData.PlayerName, drawingData.PlayerPart)
	lock.Lock()
	defer lock.Unlock()

	pending := drawingData.DrawingPoints
	chunkIndex := 0
	touched := []models.ChunkDescriptor{}

	latest, err := ds.drawingRepo.FindLatestChunk(
		drawingData.GameCode,
		drawingData.PlayerName,
		drawingData.PlayerPart,
	)
	if err != nil {
		return nil, err
	}

	if latest != nil {
		chunkIndex = latest.ChunkIndex + 1
		if space := latest.SpaceLeft(); space > 0 && len(pending) > 0 {
			take := min(len(pending), space)
			latest.DrawingPoints = append(latest.DrawingPoints, pending[:take]...)
			if err := ds.drawingRepo.SaveChunk(latest); err != nil {
				return nil, err
			}
			touched = append(touched, latest.ToChunkDescriptor())
			pending = pending[take:]
		}
	}

	for len(pending) > 0 {
		take := min(len(pending), models.MaxPointsPerChunk)
		chunk := &models.DrawingChunk{
			GameCode:            drawingData.GameCode,
			PlayerName:          drawingData.PlayerName,
			PlayerPart:          drawingData.PlayerPart,
			ChunkIndex:          chunkIndex,
			DrawingPoints:       append(models.Points{}, pending[:take]...),
			IsCompleted:         drawingData.IsCompleted,
			PlayerID:            drawingData.PlayerID,
			PlayerImage:         drawingData.PlayerImage,
			PlayerDrawing:       drawingData.PlayerDrawing,
			DrawedPartsOfPlayer: drawingData.DrawedPartsOfPlayer,
		}
		if err := ds.drawingRepo.CreateChunk(chunk); err != nil {
			return nil, err
		}
		touched = append(touched, chunk.ToChunkDescriptor())
		pending = pending[take:]
		chunkIndex++
	}

	return touched, nil
}

// GetDrawing concatenates a stream's chunks in chunk_index order. Completion
// flag and meta fields come from the first chunk; later chunks may carry a
// stale snapshot and are ignored for those fields.
func (ds *DrawingService) GetDrawing(gameCode, playerName, partName string) (*models.DrawingResponse, error) {
	chunks, err := ds.drawingRepo.FindChunks(gameCode, playerName, partName)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, errs.ErrDrawingNotFound
	}

	allPoints := models.Points{}
	for _, chunk := range chunks {
		allPoints = append(allPoints, chunk.DrawingPoints...)
	}

	first := chunks[0]
	return &models.DrawingResponse{
		DrawingPoints: allPoints,
		IsCompleted:   first.IsCompleted,
		PlayerName:    first.PlayerName,
		PlayerPart:    first.PlayerPart,
		GameCode:      first.GameCode,
		Chunks:        len(chunks),
		TotalPoints:   len(allPoints),
	}, nil
}

// GetIncompletePlayers returns the distinct names still drawing the part.
func (ds *DrawingService) GetIncompletePlayers(gameCode, partName string) ([]string, error) {
	names, err := ds.drawingRepo.FindIncompletePlayers(gameCode, partName)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errs.ErrNoIncompleteDrawings
	}
	return names, nil
}

// CollectCompleted purges every incomplete chunk of the game, then groups the
// surviving chunks by (player_name, player_part). The purge is irreversible
// and not atomic with the read: an append landing in between may or may not
// be included. Groups concatenate in chunk_index order.
func (ds *DrawingService) CollectCompleted(gameCode string) ([]models.CompletedDrawing, error) {
	if err := ds.drawingRepo.DeleteIncompleteChunks(gameCode); err != nil {
		return nil, err
	}

	chunks, err := ds.drawingRepo.FindCompletedChunks(gameCode)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, errs.ErrNoCompletedDrawings
	}

	grouped := make(map[string]*models.CompletedDrawing)
	order := []string{}
	for _, chunk := range chunks {
		key := fmt.Sprintf("%s-%s", chunk.PlayerName, chunk.PlayerPart)
		drawing, ok := grouped[key]
		if !ok {
			drawing = &models.CompletedDrawing{
				GameCode:            chunk.GameCode,
				PlayerName:          chunk.PlayerName,
				PlayerPart:          chunk.PlayerPart,
				DrawingPoints:       models.Points{},
				IsCompleted:         chunk.IsCompleted,
				PlayerID:            chunk.PlayerID,
				PlayerImage:         chunk.PlayerImage,
				PlayerDrawing:       chunk.PlayerDrawing,
				DrawedPartsOfPlayer: chunk.DrawedPartsOfPlayer,
			}
			grouped[key] = drawing
			order = append(order, key)
		}
		drawing.DrawingPoints = append(drawing.DrawingPoints, chunk.DrawingPoints...)
	}

	drawings := make([]models.CompletedDrawing, 0, len(order))
	for _, key := range order {
		drawings = append(drawings, *grouped[key])
	}
	return drawings, nil
}
