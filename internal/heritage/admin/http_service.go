package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout    = 8 * time.Second
	idempotencyHeader = "Idempotency-Key"
)

// HTTPService implements Service against the session-cookie-authenticated
// admin sub-API. The backend session cookie issued on login lives in the
// client's jar, so one HTTPService carries one admin session.
type HTTPService struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPService constructs an admin client with its own cookie jar.
func NewHTTPService(baseURL string) (*HTTPService, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("admin: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("admin: parse base URL: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("admin: cookie jar: %w", err)
	}
	return &HTTPService{
		base: parsed,
		client: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
	}, nil
}

// Login posts credentials; the backend session cookie is captured by the jar.
func (s *HTTPService) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	req, err := s.newJSONRequest(ctx, http.MethodPost, "/api/admin/login", body)
	if err != nil {
		return err
	}
	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return s.errorFromResponse(resp)
	}
	return nil
}

// Logout is best-effort; the response body is ignored.
func (s *HTTPService) Logout(ctx context.Context) error {
	req, err := s.newJSONRequest(ctx, http.MethodPost, "/api/admin/logout", nil)
	if err != nil {
		return err
	}
	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
	return nil
}

// ListEvents fetches the admin-visible record list.
func (s *HTTPService) ListEvents(ctx context.Context) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.resolve("/api/admin/events"), nil)
	if err != nil {
		return nil, fmt.Errorf("admin: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, s.errorFromResponse(resp)
	}

	var payload []Event
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("admin: decode event list: %w", err)
	}
	return payload, nil
}

// CreateEvent posts a new record. Backend validation failures surface the
// structured {error} message verbatim.
func (s *HTTPService) CreateEvent(ctx context.Context, createReq CreateRequest) error {
	req, err := s.newJSONRequest(ctx, http.MethodPost, "/api/admin/events", createReq)
	if err != nil {
		return err
	}
	req.Header.Set(idempotencyHeader, uuid.NewString())
	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return s.errorFromResponse(resp)
	}
	return nil
}

// DeleteEvent removes one record by id.
func (s *HTTPService) DeleteEvent(ctx context.Context, id string) error {
	endpoint := path.Join("/api/admin/events", url.PathEscape(strings.TrimSpace(id)))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.resolve(endpoint), nil)
	if err != nil {
		return fmt.Errorf("admin: build request: %w", err)
	}
	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return s.errorFromResponse(resp)
	}
	return nil
}

func (s *HTTPService) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("admin: request failed: %w", err)
	}
	return resp, nil
}

func (s *HTTPService) newJSONRequest(ctx context.Context, method, endpoint string, payload any) (*http.Request, error) {
	var buf bytes.Buffer
	if payload != nil {
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("admin: encode payload: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, s.resolve(endpoint), &buf)
	if err != nil {
		return nil, fmt.Errorf("admin: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (s *HTTPService) resolve(endpoint string) string {
	trimmed := strings.TrimPrefix(endpoint, "/")
	ref := &url.URL{Path: trimmed}
	return s.base.ResolveReference(ref).String()
}

// BackendError carries a non-success status and, when the backend sent a
// structured {error} body, its exact message.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("admin: backend error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("admin: backend error (%d): %s", e.Status, http.StatusText(e.Status))
}

// errorFromResponse decodes a structured {error} body. An unparsable or
// missing body leaves Message empty so callers fall back to a generic text.
func (s *HTTPService) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Error string `json:"error"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			return &BackendError{Status: resp.StatusCode, Message: payload.Error}
		}
	}
	return &BackendError{Status: resp.StatusCode}
}
