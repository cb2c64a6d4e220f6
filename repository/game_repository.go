package repository

import (
	"context"
	"strings"

	"gameshelf/models"

	"gorm.io/gorm"
)

// GameRepository is the persistence abstraction consumed by the service
// layer. Every operation touches at most one row except the list/search
// reads, so no multi-record transactions are needed.
type GameRepository interface {
	Insert(ctx context.Context, game *models.Game) error
	FindByID(ctx context.Context, id uint) (*models.Game, error)
	FindAll(ctx context.Context) ([]models.Game, error)
	FindBySystem(ctx context.Context, system string) ([]models.Game, error)
	FindByOwned(ctx context.Context, owned bool) ([]models.Game, error)
	FindByHasBackup(ctx context.Context, hasBackup bool) ([]models.Game, error)
	FindByNameContaining(ctx context.Context, name string) ([]models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Game{})
}

type gormGameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gormGameRepository{db: db}
}

func (r *gormGameRepository) Insert(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gormGameRepository) FindByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gormGameRepository) FindAll(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gormGameRepository) FindBySystem(ctx context.Context, system string) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Where("system = ?", system).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gormGameRepository) FindByOwned(ctx context.Context, owned bool) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Where("owned = ?", owned).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gormGameRepository) FindByHasBackup(ctx context.Context, hasBackup bool) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Where("has_backup = ?", hasBackup).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// FindByNameContaining matches on a case-insensitive substring of name.
func (r *gormGameRepository) FindByNameContaining(ctx context.Context, name string) ([]models.Game, error) {
	var games []models.Game
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.WithContext(ctx).Where("LOWER(name) LIKE ?", pattern).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gormGameRepository) Update(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *gormGameRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Game{}, id).Error
}

func (r *gormGameRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Game{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
