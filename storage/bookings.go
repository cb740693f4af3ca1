package storage

import (
	"errors"
	"time"

	"github.com/BelkinSergey/shareit-server/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Bookings is the gorm-backed booking store.
type Bookings struct {
	db *gorm.DB
}

func NewBookings(db *gorm.DB) *Bookings {
	return &Bookings{db: db}
}

func (s *Bookings) Create(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

func (s *Bookings) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Item").Preload("Item.Owner").Preload("Booker").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// Confirm locks the booking row, lets decide validate and mutate the
// status, and writes the result, all in one transaction so concurrent
// confirmations of the same booking serialize.
func (s *Bookings) Confirm(id uint, decide func(*models.Booking) error) (*models.Booking, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		if err := decide(&booking); err != nil {
			return err
		}
		return tx.Model(&booking).Update("status", booking.Status).Error
	})
	if err != nil || !found {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Bookings) ByBooker(bookerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Item").Preload("Item.Owner").Preload("Booker").
		Where("booker_id = ?", bookerID).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Bookings) ByItemOwner(ownerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Joins("JOIN items ON items.id = bookings.item_id AND items.deleted_at IS NULL").
		Where("items.owner_id = ?", ownerID).
		Preload("Item").Preload("Item.Owner").Preload("Booker").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Bookings) ByItemIDs(itemIDs []uint) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return []models.Booking{}, nil
	}
	var bookings []models.Booking
	if err := s.db.Where("item_id IN ?", itemIDs).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Bookings) CountCompletedApproved(bookerID, itemID uint, before time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where(`booker_id = ? AND item_id = ? AND status = ? AND "end" < ?`,
			bookerID, itemID, models.StatusApproved, before).
		Count(&count).Error
	return count, err
}
