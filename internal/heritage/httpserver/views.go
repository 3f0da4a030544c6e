package httpserver

import (
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/admin"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/catalog"
)

// layout carries the fields every page template expects.
type layout struct {
	Title      string
	AssetsPath string
	HomePath   string
	AdminPath  string
}

// Option is one entry of a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// CategoryPill is one entry of the category filter bar.
type CategoryPill struct {
	Label    string
	URL      string
	Selected bool
}

// HomeData is the view model for the public list page.
type HomeData struct {
	layout
	Query            string
	SelectedCategory string
	SortOptions      []Option
	Categories       []CategoryPill
	Count            int
	Cards            []catalog.Card
	Error            string
}

// DetailData is the view model for one record's detail page.
type DetailData struct {
	layout
	Name        string
	Description string
	Address     string
	TypeLabels  []string
	Properties  []catalog.PropertyRow
}

// ErrorData renders the short failed/not-found page.
type ErrorData struct {
	layout
	Message string
}

// LoginData is the view model for the admin login form.
type LoginData struct {
	layout
	LoginPath string
	Username  string
	Error     string
	Message   string
}

// DashboardData is the view model for the admin dashboard.
type DashboardData struct {
	layout
	LogoutPath       string
	CreatePath       string
	DeletePathPrefix string
	Query            string
	Draft            admin.CreateRequest
	TypeOptions      []Option
	Page             admin.Page
	Notice           string
	Error            string
	PrevPageURL      string
	NextPageURL      string
}
