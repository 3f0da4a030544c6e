package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/admin"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/catalog"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/httpserver"
	appsession "github.com/albisatrio/heritage-jakarta-website/internal/heritage/session"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithCatalogService wires a custom catalog service implementation.
func WithCatalogService(service catalog.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Catalog = service
	}
}

// WithAdminController wires a custom admin controller.
func WithAdminController(ctrl *admin.Controller) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Admin = ctrl
	}
}

// WithSessions overrides the browser session manager.
func WithSessions(mgr *appsession.Manager) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Sessions = mgr
	}
}

// WithBasePath sets a custom base path for all routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithImageTable overrides the fallback image table.
func WithImageTable(table []string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.ImageTable = table
	}
}

// NewServer constructs an httptest server running the heritage HTTP stack
// with static service defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:  ":0",
		BasePath: "/",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
