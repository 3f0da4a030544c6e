package admin

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// User-facing messages for the three failure classes: transport errors,
// structured backend errors, and everything else.
const (
	msgLoginFailed  = "Invalid credentials"
	msgListFailed   = "Failed to fetch events"
	msgCreateFailed = "Failed to add event"
	msgDeleteFailed = "Failed to delete event"
)

const defaultPageSize = 10

// Controller manages the admin login state and the local snapshot of the
// admin record list. It deliberately starts unauthenticated and is never
// restored from a prior run. All methods are safe for concurrent use; the
// mutex also serializes login and create so duplicate form submissions
// cannot produce overlapping in-flight attempts.
type Controller struct {
	mu       sync.Mutex
	svc      Service
	log      *zap.Logger
	pageSize int

	loggedIn bool
	events   []Event
	query    string
	page     int
}

// NewController wires a controller around the given admin service.
func NewController(svc Service, logger *zap.Logger, pageSize int) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Controller{
		svc:      svc,
		log:      logger,
		pageSize: pageSize,
		page:     1,
	}
}

// LoggedIn reports the current session state.
func (c *Controller) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loggedIn
}

// Login authenticates against the admin sub-API. Success transitions to
// loggedIn and fetches the initial record list; failure returns a short
// user-facing message and leaves the state unchanged.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.svc.Login(ctx, username, password); err != nil {
		c.log.Warn("admin login failed", zap.String("username", username), zap.Error(err))
		return errors.New(msgLoginFailed)
	}
	c.loggedIn = true
	c.query = ""
	c.page = 1

	if err := c.refreshLocked(ctx); err != nil {
		// Login itself succeeded; the dashboard will show the list error.
		return nil
	}
	return nil
}

// Logout posts a best-effort logout and unconditionally clears local state.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.svc.Logout(ctx); err != nil {
		c.log.Warn("admin logout request failed", zap.Error(err))
	}
	c.loggedIn = false
	c.events = nil
	c.query = ""
	c.page = 1
}

// Refresh replaces the local snapshot from the backend. On failure the
// prior snapshot stays untouched and a user-facing message is returned.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *Controller) refreshLocked(ctx context.Context) error {
	events, err := c.svc.ListEvents(ctx)
	if err != nil {
		c.log.Error("admin event list fetch failed", zap.Error(err))
		return errors.New(msgListFailed)
	}
	c.events = events
	return nil
}

// Create posts a new record and re-synchronizes the snapshot. A structured
// backend error surfaces its exact message; anything else falls back to a
// generic text.
func (c *Controller) Create(ctx context.Context, req CreateRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.svc.CreateEvent(ctx, req); err != nil {
		c.log.Warn("admin create failed", zap.String("name", req.Name), zap.Error(err))
		var backendErr *BackendError
		if errors.As(err, &backendErr) && backendErr.Message != "" {
			return errors.New(backendErr.Message)
		}
		return errors.New(msgCreateFailed)
	}
	_ = c.refreshLocked(ctx)
	return nil
}

// Delete removes a record after interactive confirmation. Without
// confirmation no network call is issued.
func (c *Controller) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.svc.DeleteEvent(ctx, id); err != nil {
		c.log.Warn("admin delete failed", zap.String("id", id), zap.Error(err))
		return errors.New(msgDeleteFailed)
	}
	_ = c.refreshLocked(ctx)
	return nil
}

// SetQuery updates the search filter. A changed query resets the visible
// page to 1.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	query = strings.TrimSpace(query)
	if query != c.query {
		c.query = query
		c.page = 1
	}
}

// SetPage moves the visible page; View clamps it against the filtered set.
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 1 {
		page = 1
	}
	c.page = page
}

// Query returns the current search filter.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// View derives the paginated page over the search-filtered subset of the
// current snapshot.
func (c *Controller) View() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := filterEvents(c.events, c.query)
	page := Paginate(filtered, c.page, c.pageSize)
	c.page = page.Number
	return page
}

// filterEvents applies a case-insensitive substring match over name,
// description, and address.
func filterEvents(events []Event, query string) []Event {
	if query == "" {
		out := make([]Event, len(events))
		copy(out, events)
		return out
	}
	needle := strings.ToLower(query)
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Name), needle) ||
			strings.Contains(strings.ToLower(ev.Description), needle) ||
			strings.Contains(strings.ToLower(ev.Address), needle) {
			out = append(out, ev)
		}
	}
	return out
}
