package services

import (
	"strings"
	"time"

	"github.com/BelkinSergey/shareit-server/models"
	"gorm.io/gorm"
)

// In-memory stores for exercising the services without a database.

func withID(id uint) gorm.Model { return gorm.Model{ID: id} }

type fakeUsers struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[uint]*models.User{}}
}

func (f *fakeUsers) add(user *models.User) *models.User {
	if user.ID == 0 {
		f.nextID++
		user.ID = f.nextID
	} else if user.ID > f.nextID {
		f.nextID = user.ID
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUsers) Create(user *models.User) error {
	f.add(user)
	return nil
}

func (f *fakeUsers) Save(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUsers) Exists(id uint) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUsers) All() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsers) EmailTaken(email string, excludeID uint) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Delete(id uint) error {
	delete(f.users, id)
	return nil
}

type fakeItems struct {
	items  map[uint]*models.Item
	nextID uint
}

func newFakeItems() *fakeItems {
	return &fakeItems{items: map[uint]*models.Item{}}
}

func (f *fakeItems) add(item *models.Item) *models.Item {
	if item.ID == 0 {
		f.nextID++
		item.ID = f.nextID
	} else if item.ID > f.nextID {
		f.nextID = item.ID
	}
	f.items[item.ID] = item
	return item
}

func (f *fakeItems) Create(item *models.Item) error {
	f.add(item)
	return nil
}

func (f *fakeItems) Save(item *models.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItems) GetByID(id uint) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	clone := *item
	return &clone, nil
}

func (f *fakeItems) ByOwner(ownerID uint) ([]models.Item, error) {
	out := []models.Item{}
	for _, item := range f.items {
		if item.OwnerID == ownerID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItems) OwnsAny(ownerID uint) (bool, error) {
	for _, item := range f.items {
		if item.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItems) Search(text string) ([]models.Item, error) {
	needle := strings.ToLower(text)
	out := []models.Item{}
	for _, item := range f.items {
		if item.Available == nil || !*item.Available {
			continue
		}
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItems) ByRequestIDs(requestIDs []uint) ([]models.Item, error) {
	wanted := map[uint]bool{}
	for _, id := range requestIDs {
		wanted[id] = true
	}
	out := []models.Item{}
	for _, item := range f.items {
		if item.RequestID != nil && wanted[*item.RequestID] {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItems) Delete(id uint) error {
	delete(f.items, id)
	return nil
}

type fakeBookings struct {
	bookings map[uint]*models.Booking
	items    *fakeItems
	nextID   uint
}

func newFakeBookings(items *fakeItems) *fakeBookings {
	return &fakeBookings{bookings: map[uint]*models.Booking{}, items: items}
}

func (f *fakeBookings) add(booking *models.Booking) *models.Booking {
	if booking.ID == 0 {
		f.nextID++
		booking.ID = f.nextID
	} else if booking.ID > f.nextID {
		f.nextID = booking.ID
	}
	f.bookings[booking.ID] = booking
	return booking
}

func (f *fakeBookings) Create(booking *models.Booking) error {
	f.add(booking)
	return nil
}

func (f *fakeBookings) resolve(booking *models.Booking) *models.Booking {
	clone := *booking
	if f.items != nil {
		clone.Item, _ = f.items.GetByID(booking.ItemID)
	}
	return &clone
}

func (f *fakeBookings) GetByID(id uint) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return f.resolve(booking), nil
}

func (f *fakeBookings) Confirm(id uint, decide func(*models.Booking) error) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	if err := decide(booking); err != nil {
		return nil, err
	}
	return f.resolve(booking), nil
}

func (f *fakeBookings) ByBooker(bookerID uint) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.BookerID == bookerID {
			out = append(out, *f.resolve(b))
		}
	}
	return out, nil
}

func (f *fakeBookings) ByItemOwner(ownerID uint) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		item, _ := f.items.GetByID(b.ItemID)
		if item != nil && item.OwnerID == ownerID {
			out = append(out, *f.resolve(b))
		}
	}
	return out, nil
}

func (f *fakeBookings) ByItemIDs(itemIDs []uint) ([]models.Booking, error) {
	wanted := map[uint]bool{}
	for _, id := range itemIDs {
		wanted[id] = true
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if wanted[b.ItemID] {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookings) CountCompletedApproved(bookerID, itemID uint, before time.Time) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.BookerID == bookerID && b.ItemID == itemID &&
			b.Status == models.StatusApproved && b.End.Before(before) {
			count++
		}
	}
	return count, nil
}

type fakeRequests struct {
	requests map[uint]*models.ItemRequest
	nextID   uint
}

func newFakeRequests() *fakeRequests {
	return &fakeRequests{requests: map[uint]*models.ItemRequest{}}
}

func (f *fakeRequests) Create(request *models.ItemRequest) error {
	if request.ID == 0 {
		f.nextID++
		request.ID = f.nextID
	}
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequests) GetByID(id uint) (*models.ItemRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	clone := *request
	return &clone, nil
}

func (f *fakeRequests) ByRequester(requesterID uint) ([]models.ItemRequest, error) {
	out := []models.ItemRequest{}
	for _, r := range f.requests {
		if r.RequesterID == requesterID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequests) AllExcept(requesterID uint) ([]models.ItemRequest, error) {
	out := []models.ItemRequest{}
	for _, r := range f.requests {
		if r.RequesterID != requesterID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeComments struct {
	comments map[uint]*models.Comment
	users    *fakeUsers
	nextID   uint
}

func newFakeComments(users *fakeUsers) *fakeComments {
	return &fakeComments{comments: map[uint]*models.Comment{}, users: users}
}

func (f *fakeComments) Create(comment *models.Comment) error {
	if comment.ID == 0 {
		f.nextID++
		comment.ID = f.nextID
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeComments) ByItemIDs(itemIDs []uint) ([]models.Comment, error) {
	wanted := map[uint]bool{}
	for _, id := range itemIDs {
		wanted[id] = true
	}
	out := []models.Comment{}
	for _, c := range f.comments {
		if !wanted[c.ItemID] {
			continue
		}
		clone := *c
		if f.users != nil {
			clone.Author, _ = f.users.GetByID(c.AuthorID)
		}
		out = append(out, clone)
	}
	return out, nil
}
