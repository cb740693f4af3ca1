package storage

import (
	"github.com/BelkinSergey/shareit-server/models"
	"gorm.io/gorm"
)

// Comments is the gorm-backed comment store.
type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{db: db}
}

func (s *Comments) Create(comment *models.Comment) error {
	return s.db.Create(comment).Error
}

func (s *Comments) ByItemIDs(itemIDs []uint) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return []models.Comment{}, nil
	}
	var comments []models.Comment
	err := s.db.Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
