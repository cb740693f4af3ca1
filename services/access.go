package services

import "github.com/BelkinSergey/shareit-server/models"

// CanViewBooking is the single access predicate for booking detail
// reads: the booker and the item's owner see it, nobody else. Listing
// endpoints scope their queries instead of filtering per record.
func CanViewBooking(booking *models.Booking, callerID uint) bool {
	if booking.BookerID == callerID {
		return true
	}
	return booking.Item != nil && booking.Item.OwnerID == callerID
}
