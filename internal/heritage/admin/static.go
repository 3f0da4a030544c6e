package admin

import (
	"context"
	"strings"
	"sync"
)

// StaticService is an in-memory Service for local development and tests.
// Credentials default to admin/admin123 to mirror the backend's dev setup.
type StaticService struct {
	mu       sync.Mutex
	Username string
	Password string
	Events   []Event

	authed bool
}

// NewStaticService constructs a StaticService with default credentials.
func NewStaticService(events ...Event) *StaticService {
	return &StaticService{
		Username: "admin",
		Password: "admin123",
		Events:   events,
	}
}

func (s *StaticService) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if username != s.Username || password != s.Password {
		return ErrUnauthorized
	}
	s.authed = true
	return nil
}

func (s *StaticService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authed = false
	return nil
}

func (s *StaticService) ListEvents(ctx context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed {
		return nil, ErrUnauthorized
	}
	out := make([]Event, len(s.Events))
	copy(out, s.Events)
	return out, nil
}

func (s *StaticService) CreateEvent(ctx context.Context, req CreateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed {
		return ErrUnauthorized
	}
	if strings.TrimSpace(req.Name) == "" {
		return &BackendError{Status: 400, Message: "Name is required"}
	}
	id := strings.ReplaceAll(req.Name, " ", "_")
	for _, ev := range s.Events {
		if ev.ID == id {
			return &BackendError{Status: 400, Message: "Resource already exists"}
		}
	}
	typeName := req.Type
	if typeName == "" {
		typeName = "Event"
	}
	s.Events = append(s.Events, Event{
		ID:          id,
		Type:        typeName,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	return nil
}

func (s *StaticService) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authed {
		return ErrUnauthorized
	}
	for i, ev := range s.Events {
		if ev.ID == id {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return nil
		}
	}
	return &BackendError{Status: 404, Message: "Resource not found"}
}
