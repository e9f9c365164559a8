package services

import (
	"path/filepath"
	"sketchParty/internal/models"
	"sketchParty/internal/repositories"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketch_party_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Game{}, &models.Player{}, &models.DrawingChunk{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newDrawingService(t *testing.T) *DrawingService {
	t.Helper()
	return NewDrawingService(repositories.NewDrawingRepository(newTestDB(t)))
}

func newGameService(t *testing.T) *GameService {
	t.Helper()
	return NewGameService(repositories.NewGameRepository(newTestDB(t)))
}

// makePoints returns n points whose offsets encode their position, so order
// survives chunking assertions.
func makePoints(n int) []models.Point {
	points := make([]models.Point, n)
	for i := range points {
		points[i] = models.Point{
			OffsetDx:  float64(i),
			OffsetDy:  float64(i) * 2,
			PointType: i % 3,
			Pressure:  0.5,
		}
	}
	return points
}

func drawingRequest(gameCode, playerName, playerPart string, points []models.Point, completed bool) *models.DrawingStatusRequest {
	return &models.DrawingStatusRequest{
		GameCode:      gameCode,
		PlayerName:    playerName,
		PlayerPart:    playerPart,
		DrawingPoints: points,
		IsCompleted:   completed,
		PlayerID:      1,
		PlayerImage:   "avatar.png",
	}
}
