package repositories

import (
	"errors"
	"sketchParty/internal/errs"
	"sketchParty/internal/models"

	"gorm.io/gorm"
)

type DrawingRepository struct {
	db *gorm.DB
}

func NewDrawingRepository(db *gorm.DB) *DrawingRepository {
	return &DrawingRepository{
		db: db,
	}
}

// FindLatestChunk returns the highest-index chunk of a stream, or nil when the
// stream has no chunks yet.
func (dr *DrawingRepository) FindLatestChunk(gameCode, playerName, playerPart string) (*models.DrawingChunk, error) {
	var chunk models.DrawingChunk
	result := dr.db.
		Where("game_code = ? AND player_name = ? AND player_part = ?", gameCode, playerName, playerPart).
		Order("chunk_index DESC").
		First(&chunk)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chunk, nil
}

func (dr *DrawingRepository) CreateChunk(chunk *models.DrawingChunk) error {
	result := dr.db.Create(chunk)
	if err := result.Error; err != nil {
		return err
	}
	if result.RowsAffected <= 0 {
		return errs.ErrChunkCreationFailed
	}
	return nil
}

func (dr *DrawingRepository) SaveChunk(chunk *models.DrawingChunk) error {
	return dr.db.Save(chunk).Error
}

// FindChunks returns every chunk of a stream in chunk_index order.
func (dr *DrawingRepository) FindChunks(gameCode, playerName, playerPart string) ([]models.DrawingChunk, error) {
	var chunks []models.DrawingChunk
	err := dr.db.
		Where("game_code = ? AND player_name = ? AND player_part = ?", gameCode, playerName, playerPart).
		Order("chunk_index ASC").
		Find(&chunks).Error
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// FindIncompletePlayers returns the distinct player names still drawing the
// given part.
func (dr *DrawingRepository) FindIncompletePlayers(gameCode, partName string) ([]string, error) {
	var names []string
	err := dr.db.
		Model(&models.DrawingChunk{}).
		Where("game_code = ? AND player_part = ? AND is_completed = ?", gameCode, partName, false).
		Distinct().
		Pluck("player_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (dr *DrawingRepository) DeleteIncompleteChunks(gameCode string) error {
	return dr.db.
		Where("game_code = ? AND is_completed = ?", gameCode, false).
		Delete(&models.DrawingChunk{}).Error
}

// FindCompletedChunks returns a game's completed chunks ordered so that each
// (player_name, player_part) group arrives contiguous and in chunk order.
func (dr *DrawingRepository) FindCompletedChunks(gameCode string) ([]models.DrawingChunk, error) {
	var chunks []models.DrawingChunk
	err := dr.db.
		Where("game_code = ? AND is_completed = ?", gameCode, true).
		Order("player_name ASC, player_part ASC, chunk_index ASC").
		Find(&chunks).Error
	if err != nil {
		return nil, err
	}
	return chunks, nil
}
