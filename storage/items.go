package storage

import (
	"errors"
	"strings"

	"github.com/BelkinSergey/shareit-server/models"
	"gorm.io/gorm"
)

// Items is the gorm-backed item store.
type Items struct {
	db *gorm.DB
}

func NewItems(db *gorm.DB) *Items {
	return &Items{db: db}
}

func (s *Items) Create(item *models.Item) error {
	return s.db.Create(item).Error
}

func (s *Items) Save(item *models.Item) error {
	return s.db.Save(item).Error
}

func (s *Items) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.Preload("Owner").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *Items) ByOwner(ownerID uint) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Where("owner_id = ?", ownerID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Items) OwnsAny(ownerID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Item{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search matches available items by name or description,
// case-insensitively.
func (s *Items) Search(text string) ([]models.Item, error) {
	like := "%" + strings.ToLower(text) + "%"
	var items []models.Item
	err := s.db.
		Where("available = true AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", like, like).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Items) ByRequestIDs(requestIDs []uint) ([]models.Item, error) {
	if len(requestIDs) == 0 {
		return []models.Item{}, nil
	}
	var items []models.Item
	if err := s.db.Where("request_id IN ?", requestIDs).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Items) Delete(id uint) error {
	return s.db.Delete(&models.Item{}, id).Error
}
