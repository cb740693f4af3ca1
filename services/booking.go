package services

import (
	"strings"
	"time"

	"github.com/BelkinSergey/shareit-server/models"
	"golang.org/x/exp/slices"
)

type BookingService struct {
	bookings BookingStore
	items    ItemStore
	users    UserStore
}

func NewBookingService(bookings BookingStore, items ItemStore, users UserStore) *BookingService {
	return &BookingService{bookings: bookings, items: items, users: users}
}

type CreateBookingInput struct {
	ItemID uint             `json:"itemID" validate:"required"`
	Start  models.LocalTime `json:"start" validate:"required"`
	End    models.LocalTime `json:"end" validate:"required"`
}

// Create validates and persists a new WAITING booking. No overlap check
// against existing bookings on the item is performed; double-booking is
// resolved by the owner when confirming.
func (s *BookingService) Create(bookerID uint, in CreateBookingInput) (*models.Booking, error) {
	if !in.End.After(in.Start.Time) {
		return nil, InvalidParameter("booking end must be after its start")
	}

	ok, err := s.users.Exists(bookerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}

	item, err := s.items.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NotFound("item not found")
	}
	// Availability is checked before the self-own rule: an unavailable
	// self-owned item reports the availability error.
	if item.Available == nil || !*item.Available {
		return nil, InvalidParameter("item is not available for booking")
	}
	if item.OwnerID == bookerID {
		return nil, NotFound("owner cannot book their own item")
	}

	booking := &models.Booking{
		ItemID:   in.ItemID,
		BookerID: bookerID,
		Start:    in.Start,
		End:      in.End,
		Status:   models.StatusWaiting,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(booking.ID)
}

// Confirm applies the owner's decision. Re-applying the same terminal
// decision is an error, not a no-op. The caller is trusted to be the
// item's owner; ownership is not verified here.
func (s *BookingService) Confirm(ownerID, bookingID uint, approve bool) (*models.Booking, error) {
	booking, err := s.bookings.Confirm(bookingID, func(b *models.Booking) error {
		if b.Status == models.StatusRejected && !approve {
			return InvalidParameter("booking is already rejected")
		}
		if b.Status == models.StatusApproved && approve {
			return InvalidParameter("booking is already approved")
		}
		if approve {
			b.Status = models.StatusApproved
		} else {
			b.Status = models.StatusRejected
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NotFound("booking not found")
	}
	return booking, nil
}

// FindByID returns the booking to its booker or the item's owner only.
func (s *BookingService) FindByID(callerID, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NotFound("booking not found")
	}
	if !CanViewBooking(booking, callerID) {
		return nil, AccessDenied("booking details are available to the booker or the item owner only")
	}
	return booking, nil
}

// FindAllByBooker lists the caller's own bookings filtered by bucket.
func (s *BookingService) FindAllByBooker(bookerID uint, state string) ([]models.Booking, error) {
	ok, err := s.users.Exists(bookerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}
	bookings, err := s.bookings.ByBooker(bookerID)
	if err != nil {
		return nil, err
	}
	return classify(bookings, state, time.Now())
}

// FindAllByOwner lists bookings on items owned by the caller, filtered
// by bucket. An owner with no items has nothing to list.
func (s *BookingService) FindAllByOwner(ownerID uint, state string) ([]models.Booking, error) {
	owns, err := s.items.OwnsAny(ownerID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, NotFound("user owns no items")
	}
	bookings, err := s.bookings.ByItemOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return classify(bookings, state, time.Now())
}

// classify filters a candidate set by the named bucket and orders it.
// now is sampled once by the caller so every comparison within one
// listing shares the same instant.
func classify(bookings []models.Booking, bucket string, now time.Time) ([]models.Booking, error) {
	matched := make([]models.Booking, 0, len(bookings))
	ascending := false

	switch strings.ToUpper(bucket) {
	case "ALL":
		matched = append(matched, bookings...)
	case "CURRENT":
		ascending = true
		for _, b := range bookings {
			if !b.Start.After(now) && !b.End.Before(now) {
				matched = append(matched, b)
			}
		}
	case "PAST":
		for _, b := range bookings {
			if b.End.Before(now) {
				matched = append(matched, b)
			}
		}
	case "FUTURE":
		for _, b := range bookings {
			if b.Start.After(now) {
				matched = append(matched, b)
			}
		}
	case "WAITING":
		for _, b := range bookings {
			if b.Status == models.StatusWaiting {
				matched = append(matched, b)
			}
		}
	case "REJECTED":
		for _, b := range bookings {
			if b.Status == models.StatusRejected {
				matched = append(matched, b)
			}
		}
	default:
		return nil, InvalidParameter("unknown state: " + bucket)
	}

	slices.SortStableFunc(matched, func(a, b models.Booking) int {
		if ascending {
			return a.Start.Compare(b.Start.Time)
		}
		return b.Start.Compare(a.Start.Time)
	})
	return matched, nil
}
