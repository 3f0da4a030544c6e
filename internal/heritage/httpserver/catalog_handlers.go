package httpserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/admin"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/catalog"
	appsession "github.com/albisatrio/heritage-jakarta-website/internal/heritage/session"
)

const (
	msgListLoadFailed   = "Failed to load heritage data. Please try again."
	msgDetailLoadFailed = "Failed to load heritage details. Please try again."
	msgDetailNotFound   = "Event not found."
)

// Handlers exposes the HTTP handlers for public and admin pages.
type Handlers struct {
	catalog    catalog.Service
	admin      *admin.Controller
	sessions   *appsession.Manager
	render     *Renderer
	log        *zap.Logger
	basePath   string
	imageTable []string
}

var sortOptions = []Option{
	{Value: string(catalog.SortByName), Label: "Name (A-Z)"},
	{Value: string(catalog.SortByDate), Label: "Date (Upcoming First)"},
	{Value: string(catalog.SortByRating), Label: "Rating (Highest First)"},
	{Value: string(catalog.SortByAttendees), Label: "Attendees (Most First)"},
}

// Home renders the public catalog list with search, category, and sort
// facets applied. Filtering is local: each request re-fetches the snapshot
// and derives the visible subset in one pass.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	category := normalizeCategory(r.URL.Query().Get("category"))
	sortKey := normalizeSort(r.URL.Query().Get("sort"))

	data := HomeData{
		layout:           h.layout("Explore Heritage"),
		Query:            query,
		SelectedCategory: category,
		SortOptions:      selectedOptions(sortOptions, string(sortKey)),
		Categories:       h.categoryPills(query, category, sortKey),
	}

	snapshot, err := h.catalog.List(r.Context())
	if err != nil {
		h.log.Error("catalog list fetch failed", zap.Error(err))
		data.Error = msgListLoadFailed
		h.render.Render(w, "home", http.StatusOK, data)
		return
	}

	visible := catalog.Apply(snapshot, catalog.Facets{
		Query:    query,
		Category: category,
		Sort:     sortKey,
	})

	cards := make([]catalog.Card, 0, len(visible))
	for _, rec := range visible {
		card := catalog.BuildCard(rec, h.imageTable)
		card.DetailPath = h.path(card.DetailPath)
		cards = append(cards, card)
	}
	data.Cards = cards
	data.Count = len(cards)

	h.render.Render(w, "home", http.StatusOK, data)
}

// Detail renders one record's full property set.
func (h *Handlers) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.catalog.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.render.Render(w, "error", http.StatusNotFound, ErrorData{
				layout:  h.layout("Not Found"),
				Message: msgDetailNotFound,
			})
			return
		}
		h.log.Error("catalog detail fetch failed", zap.String("id", id), zap.Error(err))
		h.render.Render(w, "error", http.StatusBadGateway, ErrorData{
			layout:  h.layout("Error"),
			Message: msgDetailLoadFailed,
		})
		return
	}

	h.render.Render(w, "detail", http.StatusOK, DetailData{
		layout:      h.layout(detail.Name),
		Name:        detail.Name,
		Description: detail.Description,
		Address:     detail.Address,
		TypeLabels:  typeLabels(detail.Types),
		Properties:  catalog.PropertyRows(detail.Properties),
	})
}

func (h *Handlers) layout(title string) layout {
	return layout{
		Title:      title,
		AssetsPath: "/assets",
		HomePath:   h.path("/"),
		AdminPath:  h.path("/admin"),
	}
}

// path prefixes a route with the configured base path.
func (h *Handlers) path(p string) string {
	if h.basePath == "/" {
		return p
	}
	if p == "/" {
		return h.basePath
	}
	return h.basePath + p
}

func (h *Handlers) categoryPills(query, selected string, sortKey catalog.SortKey) []CategoryPill {
	pills := make([]CategoryPill, 0, len(catalog.Categories))
	for _, category := range catalog.Categories {
		pills = append(pills, CategoryPill{
			Label:    catalog.DisplayCategory(category),
			URL:      h.homeURL(query, category, sortKey),
			Selected: category == selected,
		})
	}
	return pills
}

func (h *Handlers) homeURL(query, category string, sortKey catalog.SortKey) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	if category != "" && category != catalog.CategoryAll {
		values.Set("category", category)
	}
	if sortKey != "" && sortKey != catalog.SortByName {
		values.Set("sort", string(sortKey))
	}
	target := h.path("/")
	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

// normalizeCategory accepts either a vocabulary value or its display label.
func normalizeCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return catalog.CategoryAll
	}
	return catalog.CategoryFromDisplay(raw)
}

func normalizeSort(raw string) catalog.SortKey {
	switch catalog.SortKey(strings.TrimSpace(raw)) {
	case catalog.SortByDate:
		return catalog.SortByDate
	case catalog.SortByRating:
		return catalog.SortByRating
	case catalog.SortByAttendees:
		return catalog.SortByAttendees
	default:
		return catalog.SortByName
	}
}

func selectedOptions(options []Option, value string) []Option {
	out := make([]Option, len(options))
	copy(out, options)
	for i := range out {
		out[i].Selected = out[i].Value == value
	}
	return out
}

func typeLabels(types []string) []string {
	seen := make(map[string]struct{}, len(types))
	labels := make([]string, 0, len(types))
	for _, t := range types {
		label := catalog.DisplayCategory(t)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}
