package services

import (
	"errors"
	"sketchParty/internal/errs"
	"sketchParty/internal/models"
	"testing"
)

func TestAppendSplitsBatchIntoChunks(t *testing.T) {
	ds := newDrawingService(t)

	chunks, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(75), false))
	if err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].ChunkIndex != 0 || chunks[0].PointsCount != 50 {
		t.Errorf("chunk 0: got index %d size %d, want 0/50", chunks[0].ChunkIndex, chunks[0].PointsCount)
	}
	if chunks[1].ChunkIndex != 1 || chunks[1].PointsCount != 25 {
		t.Errorf("chunk 1: got index %d size %d, want 1/25", chunks[1].ChunkIndex, chunks[1].PointsCount)
	}
}

func TestAppendFillsLatestChunkBeforeCreating(t *testing.T) {
	ds := newDrawingService(t)

	if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(75), false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}

	chunks, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(30), false))
	if err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected 2 touched chunks, got %d", len(chunks))
	}
	if chunks[0].ChunkIndex != 1 || chunks[0].PointsCount != 50 {
		t.Errorf("filled chunk: got index %d size %d, want 1/50", chunks[0].ChunkIndex, chunks[0].PointsCount)
	}
	if chunks[1].ChunkIndex != 2 || chunks[1].PointsCount != 5 {
		t.Errorf("spill chunk: got index %d size %d, want 2/5", chunks[1].ChunkIndex, chunks[1].PointsCount)
	}
}

func TestAppendExactMultipleLeavesNoPartialChunk(t *testing.T) {
	ds := newDrawingService(t)

	chunks, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(100), false))
	if err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if len(chunks) != 2 || chunks[0].PointsCount != 50 || chunks[1].PointsCount != 50 {
		t.Fatalf("expected two full chunks, got %+v", chunks)
	}

	// The latest chunk is full, so the next batch starts a fresh chunk.
	chunks, err = ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(10), false))
	if err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if len(chunks) != 1 || chunks[0].ChunkIndex != 2 || chunks[0].PointsCount != 10 {
		t.Fatalf("expected one chunk with index 2 and 10 points, got %+v", chunks)
	}
}

func TestAppendEmptyBatchIsANoOp(t *testing.T) {
	ds := newDrawingService(t)

	chunks, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", nil, false))
	if err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no touched chunks, got %d", len(chunks))
	}

	if _, err := ds.GetDrawing("G1", "ada", "head"); !errors.Is(err, errs.ErrDrawingNotFound) {
		t.Fatalf("expected drawing not found, got %v", err)
	}
}

func TestReassembleReturnsPointsInOriginalOrder(t *testing.T) {
	ds := newDrawingService(t)

	first := makePoints(75)
	if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", first, false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	second := makePoints(130)
	if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", second, false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}

	drawing, err := ds.GetDrawing("G1", "ada", "head")
	if err != nil {
		t.Fatalf("unexpected reassemble error: %v", err)
	}

	want := append(append([]models.Point{}, first...), second...)
	if drawing.TotalPoints != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), drawing.TotalPoints)
	}
	if drawing.Chunks != 5 {
		t.Errorf("expected 5 chunks for 205 points, got %d", drawing.Chunks)
	}
	for i, point := range drawing.DrawingPoints {
		if point != want[i] {
			t.Fatalf("point %d out of order: got %+v, want %+v", i, point, want[i])
		}
	}
}

func TestReassembleMetaComesFromFirstChunk(t *testing.T) {
	ds := newDrawingService(t)

	if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(50), false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	// Later chunks carry is_completed=true; the first chunk still wins.
	if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(10), true)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}

	drawing, err := ds.GetDrawing("G1", "ada", "head")
	if err != nil {
		t.Fatalf("unexpected reassemble error: %v", err)
	}
	if drawing.IsCompleted {
		t.Errorf("expected is_completed from first chunk (false), got true")
	}
	if drawing.PlayerName != "ada" || drawing.PlayerPart != "head" || drawing.GameCode != "G1" {
		t.Errorf("unexpected meta fields: %+v", drawing)
	}
}

func TestChunkIndexesStayContiguous(t *testing.T) {
	ds := newDrawingService(t)

	for _, batch := range []int{7, 50, 61, 3} {
		if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "torso", makePoints(batch), false)); err != nil {
			t.Fatalf("unexpected append error: %v", err)
		}
	}

	drawing, err := ds.GetDrawing("G1", "ada", "torso")
	if err != nil {
		t.Fatalf("unexpected reassemble error: %v", err)
	}
	if drawing.TotalPoints != 121 {
		t.Fatalf("expected 121 points, got %d", drawing.TotalPoints)
	}
	if drawing.Chunks != 3 {
		t.Fatalf("expected 3 chunks (50+50+21), got %d", drawing.Chunks)
	}

	chunks, err := ds.drawingRepo.FindChunks("G1", "ada", "torso")
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	for i, chunk := range chunks {
		if chunk.ChunkIndex != i {
			t.Errorf("chunk %d has index %d", i, chunk.ChunkIndex)
		}
		if i < len(chunks)-1 && len(chunk.DrawingPoints) != models.MaxPointsPerChunk {
			t.Errorf("non-final chunk %d holds %d points", i, len(chunk.DrawingPoints))
		}
	}
}

func TestStreamsDoNotInterfere(t *testing.T) {
	ds := newDrawingService(t)

	if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(30), false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	chunks, err := ds.AppendPoints(drawingRequest("G1", "bob", "head", makePoints(30), false))
	if err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if len(chunks) != 1 || chunks[0].ChunkIndex != 0 {
		t.Fatalf("expected bob's stream to start at index 0, got %+v", chunks)
	}
}

func TestGetIncompletePlayers(t *testing.T) {
	ds := newDrawingService(t)

	if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", makePoints(60), false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if _, err := ds.AppendPoints(drawingRequest("G1", "bob", "head", makePoints(10), false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if _, err := ds.AppendPoints(drawingRequest("G1", "eve", "head", makePoints(10), true)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}

	players, err := ds.GetIncompletePlayers("G1", "head")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 incomplete players, got %v", players)
	}
	seen := map[string]bool{}
	for _, name := range players {
		seen[name] = true
	}
	if !seen["ada"] || !seen["bob"] || seen["eve"] {
		t.Errorf("unexpected incomplete set: %v", players)
	}

	if _, err := ds.GetIncompletePlayers("G1", "legs"); !errors.Is(err, errs.ErrNoIncompleteDrawings) {
		t.Fatalf("expected no incomplete drawings, got %v", err)
	}
}

func TestCollectCompletedPurgesAndGroups(t *testing.T) {
	ds := newDrawingService(t)

	adaPoints := makePoints(60)
	if _, err := ds.AppendPoints(drawingRequest("G1", "ada", "head", adaPoints, true)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if _, err := ds.AppendPoints(drawingRequest("G1", "eve", "torso", makePoints(20), true)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}
	if _, err := ds.AppendPoints(drawingRequest("G1", "bob", "head", makePoints(40), false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}

	drawings, err := ds.CollectCompleted("G1")
	if err != nil {
		t.Fatalf("unexpected collect error: %v", err)
	}
	if len(drawings) != 2 {
		t.Fatalf("expected 2 grouped drawings, got %d", len(drawings))
	}

	byPlayer := map[string]models.CompletedDrawing{}
	for _, drawing := range drawings {
		byPlayer[drawing.PlayerName] = drawing
	}
	ada, ok := byPlayer["ada"]
	if !ok {
		t.Fatalf("missing ada's drawing: %+v", drawings)
	}
	if len(ada.DrawingPoints) != 60 {
		t.Fatalf("expected ada's 60 points rejoined, got %d", len(ada.DrawingPoints))
	}
	for i, point := range ada.DrawingPoints {
		if point != adaPoints[i] {
			t.Fatalf("ada's point %d out of order", i)
		}
	}
	if _, ok := byPlayer["bob"]; ok {
		t.Errorf("incomplete drawing survived the purge")
	}

	// The purge is permanent: bob's stream is gone.
	if _, err := ds.GetDrawing("G1", "bob", "head"); !errors.Is(err, errs.ErrDrawingNotFound) {
		t.Fatalf("expected bob's drawing purged, got %v", err)
	}
}

func TestCollectCompletedEmptyGame(t *testing.T) {
	ds := newDrawingService(t)

	if _, err := ds.AppendPoints(drawingRequest("G1", "bob", "head", makePoints(10), false)); err != nil {
		t.Fatalf("unexpected append error: %v", err)
	}

	if _, err := ds.CollectCompleted("G1"); !errors.Is(err, errs.ErrNoCompletedDrawings) {
		t.Fatalf("expected no completed drawings, got %v", err)
	}
}
