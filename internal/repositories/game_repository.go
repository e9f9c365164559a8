package repositories

import (
	"errors"
	"sketchParty/internal/errs"
	"sketchParty/internal/models"

	"gorm.io/gorm"
)

type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{
		db: db,
	}
}

func (gr *GameRepository) CreateGame(game *models.Game) (*models.Game, error) {
	result := gr.db.Create(game)
	if err := result.Error; err != nil {
		return nil, err
	}
	if result.RowsAffected <= 0 {
		return nil, errs.ErrGameAlreadyExists
	}
	return game, nil
}

func (gr *GameRepository) CheckGameExists(gameCode string) bool {
	var count int64
	gr.db.Model(&models.Game{}).Where("game_code = ?", gameCode).Count(&count)
	return count > 0
}

func (gr *GameRepository) FindGameByCode(gameCode string) (*models.Game, error) {
	var game models.Game
	result := gr.db.
		Preload("Players").
		Where("game_code = ?", gameCode).
		First(&game)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// AddPlayerToGame inserts the player and refreshes number_of_players from the
// roster count inside one transaction, so the counter cannot drift from the
// collection length.
func (gr *GameRepository) AddPlayerToGame(gameCode string, player *models.Player) (*models.Game, error) {
	transactionErr := gr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(player).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Player{}).
			Where("game_code = ?", gameCode).
			Count(&count).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.Game{}).
			Where("game_code = ?", gameCode).
			Update("number_of_players", count).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	return gr.FindGameByCode(gameCode)
}

// UpdateGameFields patches only the given columns and returns the fresh game.
func (gr *GameRepository) UpdateGameFields(gameCode string, fields map[string]interface{}) (*models.Game, error) {
	if len(fields) > 0 {
		result := gr.db.
			Model(&models.Game{}).
			Where("game_code = ?", gameCode).
			Updates(fields)
		if err := result.Error; err != nil {
			return nil, err
		}
	}
	return gr.FindGameByCode(gameCode)
}
