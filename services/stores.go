package services

import (
	"time"

	"github.com/BelkinSergey/shareit-server/models"
)

// Store interfaces the services run against. The gorm implementations
// live in the storage package; tests plug in fakes. Lookups return
// (nil, nil) when the row does not exist so that the services own the
// not-found semantics.

type UserStore interface {
	Create(user *models.User) error
	Save(user *models.User) error
	GetByID(id uint) (*models.User, error)
	Exists(id uint) (bool, error)
	All() ([]models.User, error)
	EmailTaken(email string, excludeID uint) (bool, error)
	Delete(id uint) error
}

type ItemStore interface {
	Create(item *models.Item) error
	Save(item *models.Item) error
	GetByID(id uint) (*models.Item, error)
	ByOwner(ownerID uint) ([]models.Item, error)
	OwnsAny(ownerID uint) (bool, error)
	Search(text string) ([]models.Item, error)
	ByRequestIDs(requestIDs []uint) ([]models.Item, error)
	Delete(id uint) error
}

type BookingStore interface {
	Create(booking *models.Booking) error
	// GetByID resolves the booking with its item (and the item's owner)
	// and booker attached.
	GetByID(id uint) (*models.Booking, error)
	// Confirm runs decide against the stored booking inside one
	// transaction, isolated from concurrent confirmations of the same
	// booking, and persists the mutated status when decide allows it.
	// Returns (nil, nil) when the booking does not exist.
	Confirm(id uint, decide func(*models.Booking) error) (*models.Booking, error)
	ByBooker(bookerID uint) ([]models.Booking, error)
	ByItemOwner(ownerID uint) ([]models.Booking, error)
	ByItemIDs(itemIDs []uint) ([]models.Booking, error)
	CountCompletedApproved(bookerID, itemID uint, before time.Time) (int64, error)
}

type RequestStore interface {
	Create(request *models.ItemRequest) error
	GetByID(id uint) (*models.ItemRequest, error)
	ByRequester(requesterID uint) ([]models.ItemRequest, error)
	AllExcept(requesterID uint) ([]models.ItemRequest, error)
}

type CommentStore interface {
	Create(comment *models.Comment) error
	ByItemIDs(itemIDs []uint) ([]models.Comment, error)
}
