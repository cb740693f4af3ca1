package storage

import (
	"errors"

	"github.com/BelkinSergey/shareit-server/models"
	"gorm.io/gorm"
)

// Requests is the gorm-backed item-request store.
type Requests struct {
	db *gorm.DB
}

func NewRequests(db *gorm.DB) *Requests {
	return &Requests{db: db}
}

func (s *Requests) Create(request *models.ItemRequest) error {
	return s.db.Create(request).Error
}

func (s *Requests) GetByID(id uint) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := s.db.Preload("Requester").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (s *Requests) ByRequester(requesterID uint) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := s.db.Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *Requests) AllExcept(requesterID uint) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := s.db.Preload("Requester").
		Where("requester_id <> ?", requesterID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
