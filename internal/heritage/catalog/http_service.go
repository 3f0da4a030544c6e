package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// HTTPClient matches the subset of http.Client used by HTTPService.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPService implements Service against the backend listing endpoints.
type HTTPService struct {
	base   *url.URL
	client HTTPClient
}

// textPolicy strips any markup the backend may carry inside free-text
// fields before they reach the templates.
var textPolicy = bluemonday.StrictPolicy()

// NewHTTPService constructs a Service that talks to the heritage data API.
func NewHTTPService(baseURL string, client HTTPClient) (*HTTPService, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("catalog: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPService{base: parsed, client: client}, nil
}

// List retrieves the full public record snapshot.
func (s *HTTPService) List(ctx context.Context) ([]Record, error) {
	req, err := s.newRequest(ctx, http.MethodGet, "/api/data")
	if err != nil {
		return nil, err
	}
	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.errorFromResponse(resp)
	}

	var payload []Record
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog: decode record list: %w", err)
	}
	for i := range payload {
		normalizeRecord(&payload[i])
	}
	return payload, nil
}

// Detail retrieves one record's full property set.
func (s *HTTPService) Detail(ctx context.Context, id string) (*Detail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("catalog: %w", ErrNotFound)
	}
	req, err := s.newRequest(ctx, http.MethodGet, path.Join("/api/data", url.PathEscape(id)))
	if err != nil {
		return nil, err
	}
	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, s.errorFromResponse(resp)
	}

	var payload Detail
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog: decode record detail: %w", err)
	}
	payload.Description = cleanText(payload.Description)
	payload.Address = cleanText(payload.Address)
	return &payload, nil
}

// normalizeRecord applies the client-side presentation defaults for fields
// the authoritative source does not carry.
func normalizeRecord(rec *Record) {
	rec.Name = cleanText(rec.Name)
	rec.Description = cleanText(rec.Description)
	rec.Address = cleanText(rec.Address)
	if rec.Types == nil {
		rec.Types = []string{}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if rec.Date == "" {
		rec.Date = now
	}
	if rec.EndDate == "" {
		rec.EndDate = now
	}
	if rec.Price == "" {
		rec.Price = "Free"
	}
	if rec.Source == "" {
		rec.Source = "heritage.jakarta.go.id"
	}
	if rec.Attendees == "" {
		rec.Attendees = "-"
	}
}

func cleanText(value string) string {
	return html.UnescapeString(textPolicy.Sanitize(value))
}

func (s *HTTPService) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: request failed: %w", err)
	}
	return resp, nil
}

func (s *HTTPService) newRequest(ctx context.Context, method, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.resolve(endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (s *HTTPService) resolve(endpoint string) string {
	trimmed := strings.TrimPrefix(endpoint, "/")
	ref := &url.URL{Path: trimmed}
	return s.base.ResolveReference(ref).String()
}

func (s *HTTPService) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Error string `json:"error"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			return fmt.Errorf("catalog: backend error (%d): %s", resp.StatusCode, payload.Error)
		}
	}
	return fmt.Errorf("catalog: backend error (%d): %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
