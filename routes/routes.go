package routes

import (
	"github.com/BelkinSergey/shareit-server/services"
	"github.com/BelkinSergey/shareit-server/storage"
	"gorm.io/gorm"
)

var (
	userService    *services.UserService
	itemService    *services.ItemService
	bookingService *services.BookingService
	requestService *services.RequestService
)

// Init wires the gorm stores into the services the handlers use.
func Init(db *gorm.DB) {
	users := storage.NewUsers(db)
	items := storage.NewItems(db)
	bookings := storage.NewBookings(db)
	comments := storage.NewComments(db)
	requests := storage.NewRequests(db)

	userService = services.NewUserService(users)
	itemService = services.NewItemService(items, users, bookings, comments)
	bookingService = services.NewBookingService(bookings, items, users)
	requestService = services.NewRequestService(requests, items, users)
}
