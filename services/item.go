package services

import (
	"time"

	"github.com/BelkinSergey/shareit-server/models"
	"golang.org/x/exp/slices"
)

type ItemService struct {
	items    ItemStore
	users    UserStore
	bookings BookingStore
	comments CommentStore
}

func NewItemService(items ItemStore, users UserStore, bookings BookingStore, comments CommentStore) *ItemService {
	return &ItemService{items: items, users: users, bookings: bookings, comments: comments}
}

// BookingRef is the compact last/next summary attached to item views.
type BookingRef struct {
	ID       uint             `json:"id"`
	BookerID uint             `json:"bookerID"`
	Start    models.LocalTime `json:"start"`
	End      models.LocalTime `json:"end"`
}

type CommentInfo struct {
	ID         uint             `json:"id"`
	Text       string           `json:"text"`
	AuthorName string           `json:"authorName"`
	Created    models.LocalTime `json:"created"`
}

// ItemView is an item enriched with recent booking activity and its
// comments. LastBooking/NextBooking are populated for the owner only.
type ItemView struct {
	models.Item
	LastBooking *BookingRef   `json:"lastBooking"`
	NextBooking *BookingRef   `json:"nextBooking"`
	Comments    []CommentInfo `json:"comments"`
}

type CreateItemInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *uint  `json:"requestID"`
}

type UpdateItemInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentInput struct {
	Text string `json:"text" validate:"required"`
}

func (s *ItemService) Create(ownerID uint, in CreateItemInput) (*models.Item, error) {
	ok, err := s.users.Exists(ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}

	item := &models.Item{
		Name:        in.Name,
		Description: in.Description,
		Available:   in.Available,
		OwnerID:     ownerID,
		RequestID:   in.RequestID,
	}
	if err := s.items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies a partial edit. Editing is available to the owner
// only; anyone else is told the item does not exist.
func (s *ItemService) Update(callerID, itemID uint, in UpdateItemInput) (*models.Item, error) {
	ok, err := s.users.Exists(callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}
	item, err := s.ownedItem(callerID, itemID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Available != nil {
		item.Available = in.Available
	}
	if err := s.items.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Delete(callerID, itemID uint) error {
	if _, err := s.ownedItem(callerID, itemID); err != nil {
		return err
	}
	return s.items.Delete(itemID)
}

// FindByID returns the annotated detail view. Comments are public;
// last/next booking activity is revealed to the owner only.
func (s *ItemService) FindByID(callerID, itemID uint) (*ItemView, error) {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NotFound("item not found")
	}

	comments, err := s.comments.ByItemIDs([]uint{itemID})
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if item.OwnerID == callerID {
		bookings, err = s.bookings.ByItemIDs([]uint{itemID})
		if err != nil {
			return nil, err
		}
	}

	view := annotate(*item, bookings, comments, time.Now())
	return &view, nil
}

// FindAllByOwner builds the owner's listing. Bookings and comments for
// every owned item are fetched in one pass each and grouped by item id,
// so the cost stays at three queries regardless of how many items the
// owner has.
func (s *ItemService) FindAllByOwner(ownerID uint) ([]ItemView, error) {
	ok, err := s.users.Exists(ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}

	items, err := s.items.ByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	itemIDs := make([]uint, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	bookings, err := s.bookings.ByItemIDs(itemIDs)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ByItemIDs(itemIDs)
	if err != nil {
		return nil, err
	}

	bookingsByItem := make(map[uint][]models.Booking)
	for _, b := range bookings {
		bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
	}
	commentsByItem := make(map[uint][]models.Comment)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	now := time.Now()
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, annotate(item, bookingsByItem[item.ID], commentsByItem[item.ID], now))
	}
	return views, nil
}

// Search finds available items whose name or description contains the
// text, case-insensitively. A blank query matches nothing.
func (s *ItemService) Search(text string) ([]models.Item, error) {
	if len(text) == 0 {
		return []models.Item{}, nil
	}
	items, err := s.items.Search(text)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// AddComment lets a user comment on an item they actually used: an
// APPROVED booking of theirs must have ended before now.
func (s *ItemService) AddComment(authorID, itemID uint, in CreateCommentInput) (*CommentInfo, error) {
	author, err := s.users.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, NotFound("user not found")
	}
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NotFound("item not found")
	}

	completed, err := s.bookings.CountCompletedApproved(authorID, itemID, time.Now())
	if err != nil {
		return nil, err
	}
	if completed == 0 {
		return nil, InvalidParameter("user has no completed booking of this item")
	}

	comment := &models.Comment{
		Text:     in.Text,
		ItemID:   itemID,
		AuthorID: authorID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return &CommentInfo{
		ID:         comment.ID,
		Text:       comment.Text,
		AuthorName: author.Name,
		Created:    models.NewLocalTime(comment.CreatedAt),
	}, nil
}

func (s *ItemService) ownedItem(callerID, itemID uint) (*models.Item, error) {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NotFound("item not found")
	}
	if item.OwnerID != callerID {
		return nil, NotFound("only the owner may edit an item")
	}
	return item, nil
}

// annotate computes the last/next booking summary for one item. Last is
// the latest-starting booking already over, next the earliest-starting
// one still ahead. A candidate set of zero or one bookings yields
// neither: a lone historical entry is not enough signal to surface as
// recent activity.
func annotate(item models.Item, bookings []models.Booking, comments []models.Comment, now time.Time) ItemView {
	view := ItemView{Item: item, Comments: make([]CommentInfo, 0, len(comments))}

	slices.SortStableFunc(comments, func(a, b models.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	for _, c := range comments {
		name := ""
		if c.Author != nil {
			name = c.Author.Name
		}
		view.Comments = append(view.Comments, CommentInfo{
			ID:         c.ID,
			Text:       c.Text,
			AuthorName: name,
			Created:    models.NewLocalTime(c.CreatedAt),
		})
	}

	if len(bookings) <= 1 {
		return view
	}

	var last, next *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if b.End.Before(now) {
			if last == nil || b.Start.After(last.Start.Time) {
				last = b
			}
		}
		if b.Start.After(now) {
			if next == nil || b.Start.Before(next.Start.Time) {
				next = b
			}
		}
	}
	view.LastBooking = toBookingRef(last)
	view.NextBooking = toBookingRef(next)
	return view
}

func toBookingRef(b *models.Booking) *BookingRef {
	if b == nil {
		return nil
	}
	return &BookingRef{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}
