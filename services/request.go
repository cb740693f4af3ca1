package services

import (
	"github.com/BelkinSergey/shareit-server/models"
	"golang.org/x/exp/slices"
)

type RequestService struct {
	requests RequestStore
	items    ItemStore
	users    UserStore
}

func NewRequestService(requests RequestStore, items ItemStore, users UserStore) *RequestService {
	return &RequestService{requests: requests, items: items, users: users}
}

type CreateRequestInput struct {
	Description string `json:"description" validate:"required"`
}

// RequestView is a request together with the items listed in reply.
type RequestView struct {
	models.ItemRequest
	Items []models.Item `json:"items"`
}

func (s *RequestService) Create(requesterID uint, in CreateRequestInput) (*models.ItemRequest, error) {
	ok, err := s.users.Exists(requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}

	request := &models.ItemRequest{Description: in.Description, RequesterID: requesterID}
	if err := s.requests.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// FindAllByRequester returns the caller's requests, newest first, each
// with its replies.
func (s *RequestService) FindAllByRequester(requesterID uint) ([]RequestView, error) {
	ok, err := s.users.Exists(requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}
	requests, err := s.requests.ByRequester(requesterID)
	if err != nil {
		return nil, err
	}
	return s.withReplies(requests)
}

// FindAllOfOthers returns other users' requests so the caller can find
// something to reply to.
func (s *RequestService) FindAllOfOthers(callerID uint) ([]RequestView, error) {
	ok, err := s.users.Exists(callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}
	requests, err := s.requests.AllExcept(callerID)
	if err != nil {
		return nil, err
	}
	return s.withReplies(requests)
}

func (s *RequestService) FindByID(callerID, requestID uint) (*RequestView, error) {
	ok, err := s.users.Exists(callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFound("user not found")
	}
	request, err := s.requests.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, NotFound("request not found")
	}
	views, err := s.withReplies([]models.ItemRequest{*request})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// withReplies batch-fetches the reply items for a page of requests and
// groups them by request id.
func (s *RequestService) withReplies(requests []models.ItemRequest) ([]RequestView, error) {
	slices.SortStableFunc(requests, func(a, b models.ItemRequest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	requestIDs := make([]uint, 0, len(requests))
	for _, r := range requests {
		requestIDs = append(requestIDs, r.ID)
	}
	replies, err := s.items.ByRequestIDs(requestIDs)
	if err != nil {
		return nil, err
	}
	repliesByRequest := make(map[uint][]models.Item)
	for _, item := range replies {
		if item.RequestID != nil {
			repliesByRequest[*item.RequestID] = append(repliesByRequest[*item.RequestID], item)
		}
	}

	views := make([]RequestView, 0, len(requests))
	for _, r := range requests {
		items := repliesByRequest[r.ID]
		if items == nil {
			items = []models.Item{}
		}
		views = append(views, RequestView{ItemRequest: r, Items: items})
	}
	return views, nil
}
