package httpserver

import (
	"crypto/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/admin"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/catalog"
	custommw "github.com/albisatrio/heritage-jakarta-website/internal/heritage/httpserver/middleware"
	appsession "github.com/albisatrio/heritage-jakarta-website/internal/heritage/session"
	"github.com/albisatrio/heritage-jakarta-website/public"
)

// Config holds runtime options for the heritage web server.
type Config struct {
	Address    string
	BasePath   string
	Catalog    catalog.Service
	Admin      *admin.Controller
	Sessions   *appsession.Manager
	Logger     *zap.Logger
	ImageTable []string
}

// New constructs the HTTP server with the middleware stack, embedded
// assets, and all public and admin routes.
func New(cfg Config) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.NewStaticService()
	}
	if cfg.Admin == nil {
		cfg.Admin = admin.NewController(admin.NewStaticService(), logger, 0)
	}
	if cfg.Sessions == nil {
		cfg.Sessions = mustEphemeralSessions()
	}
	if len(cfg.ImageTable) == 0 {
		cfg.ImageTable = catalog.DefaultImageTable
	}

	renderer, err := NewRenderer(logger)
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	basePath := normalizeBasePath(cfg.BasePath)
	h := &Handlers{
		catalog:    cfg.Catalog,
		admin:      cfg.Admin,
		sessions:   cfg.Sessions,
		render:     renderer,
		log:        logger,
		basePath:   basePath,
		imageTable: cfg.ImageTable,
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(custommw.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(30 * time.Second))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	staticContent, err := public.StaticFS()
	if err != nil {
		logger.Fatal("embed static", zap.Error(err))
	}
	router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(staticContent))))

	mountRoutes(router, basePath, h)

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func mountRoutes(router chi.Router, base string, h *Handlers) {
	if base != "/" {
		router.Get(base, h.Home)
	}

	router.Route(base, func(r chi.Router) {
		r.Get("/", h.Home)
		r.Get("/event/{id}", h.Detail)

		r.Route("/admin", func(ar chi.Router) {
			ar.Use(custommw.NoStore())
			ar.Use(custommw.Session(h.sessions))

			ar.Get("/", h.AdminPage)
			ar.Post("/login", h.AdminLogin)
			ar.Post("/logout", h.AdminLogout)
			ar.Post("/events", h.AdminCreate)
			ar.Post("/events/{id}/delete", h.AdminDelete)
		})
	})
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

// mustEphemeralSessions builds a session manager with a process-ephemeral
// signing key, for development and tests.
func mustEphemeralSessions() *appsession.Manager {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	mgr, err := appsession.NewManager(appsession.Config{HashKey: key})
	if err != nil {
		panic(err)
	}
	return mgr
}
