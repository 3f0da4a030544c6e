package httpserver

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/admin"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/catalog"
	custommw "github.com/albisatrio/heritage-jakarta-website/internal/heritage/httpserver/middleware"
)

// AdminPage renders either the login form or the dashboard, depending on
// the browser session and the controller's login state.
func (h *Handlers) AdminPage(w http.ResponseWriter, r *http.Request) {
	if !h.isAdmin(r) {
		h.renderLogin(w, r, LoginData{
			layout:    h.layout("Admin Access"),
			LoginPath: h.path("/admin/login"),
			Message:   loginMessageForQuery(r.URL.Query()),
		}, http.StatusOK)
		return
	}

	q := r.URL.Query()
	h.admin.SetQuery(q.Get("q"))
	if raw := strings.TrimSpace(q.Get("page")); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			h.admin.SetPage(page)
		}
	}

	errMsg := q.Get("error")
	if errMsg == "" {
		// Surface a fetch failure for the current snapshot so the page is
		// never stuck in a load state.
		if err := h.admin.Refresh(r.Context()); err != nil {
			errMsg = err.Error()
		}
	}

	page := h.admin.View()
	query := h.admin.Query()

	data := DashboardData{
		layout:           h.layout("Dashboard"),
		LogoutPath:       h.path("/admin/logout"),
		CreatePath:       h.path("/admin/events"),
		DeletePathPrefix: h.path("/admin/events"),
		Query:            query,
		Draft: admin.CreateRequest{
			Name:        q.Get("name"),
			Type:        q.Get("type"),
			Description: q.Get("description"),
			Address:     q.Get("address"),
		},
		TypeOptions: typeOptions(q.Get("type")),
		Page:        page,
		Notice:      noticeForQuery(q),
		Error:       errMsg,
		PrevPageURL: h.adminURL(query, page.Number-1),
		NextPageURL: h.adminURL(query, page.Number+1),
	}

	h.render.Render(w, "admin_dashboard", http.StatusOK, data)
}

// AdminLogin authenticates against the backend admin sub-API and marks the
// browser session on success.
func (h *Handlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, LoginData{
			layout:    h.layout("Admin Access"),
			LoginPath: h.path("/admin/login"),
			Error:     "Form submission failed. Please try again.",
		}, http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	if err := h.admin.Login(r.Context(), username, password); err != nil {
		h.renderLogin(w, r, LoginData{
			layout:    h.layout("Admin Access"),
			LoginPath: h.path("/admin/login"),
			Username:  username,
			Error:     err.Error(),
		}, http.StatusUnauthorized)
		return
	}

	if sess, ok := custommw.SessionFromContext(r.Context()); ok {
		sess.SetAdmin(true)
		if err := h.sessions.Save(w, sess); err != nil {
			h.log.Error("session save failed", zap.Error(err))
		}
	}
	http.Redirect(w, r, h.path("/admin"), http.StatusSeeOther)
}

// AdminLogout posts a best-effort backend logout and unconditionally ends
// the browser session.
func (h *Handlers) AdminLogout(w http.ResponseWriter, r *http.Request) {
	h.admin.Logout(r.Context())

	if sess, ok := custommw.SessionFromContext(r.Context()); ok {
		sess.Destroy()
		if err := h.sessions.Save(w, sess); err != nil {
			h.log.Error("session save failed", zap.Error(err))
		}
	}
	http.Redirect(w, r, h.path("/admin")+"?status=logged_out", http.StatusSeeOther)
}

// AdminCreate posts a new record and redirects back to the dashboard. On
// failure the draft fields travel along so the form is repopulated.
func (h *Handlers) AdminCreate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, h.path("/admin")+"?error="+url.QueryEscape("Form submission failed."), http.StatusSeeOther)
		return
	}

	req := admin.CreateRequest{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Type:        strings.TrimSpace(r.PostFormValue("type")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Address:     strings.TrimSpace(r.PostFormValue("address")),
	}

	if err := h.admin.Create(r.Context(), req); err != nil {
		values := url.Values{}
		values.Set("error", err.Error())
		values.Set("name", req.Name)
		values.Set("type", req.Type)
		values.Set("description", req.Description)
		values.Set("address", req.Address)
		http.Redirect(w, r, h.path("/admin")+"?"+values.Encode(), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, h.path("/admin")+"?status=created", http.StatusSeeOther)
}

// AdminDelete removes one record. Without the confirm field no backend
// call is issued.
func (h *Handlers) AdminDelete(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, h.path("/admin"), http.StatusSeeOther)
		return
	}

	id := chi.URLParam(r, "id")
	confirmed := r.PostFormValue("confirm") == "1"
	if !confirmed {
		http.Redirect(w, r, h.path("/admin"), http.StatusSeeOther)
		return
	}

	if err := h.admin.Delete(r.Context(), id, confirmed); err != nil {
		http.Redirect(w, r, h.path("/admin")+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, h.path("/admin")+"?status=deleted", http.StatusSeeOther)
}

func (h *Handlers) renderLogin(w http.ResponseWriter, r *http.Request, data LoginData, status int) {
	h.render.Render(w, "admin_login", status, data)
}

// isAdmin requires both the signed browser session flag and the
// controller's live backend session.
func (h *Handlers) isAdmin(r *http.Request) bool {
	sess, ok := custommw.SessionFromContext(r.Context())
	if !ok || !sess.Admin() {
		return false
	}
	return h.admin.LoggedIn()
}

func (h *Handlers) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if h.isAdmin(r) {
		return true
	}
	http.Redirect(w, r, h.path("/admin"), http.StatusSeeOther)
	return false
}

func (h *Handlers) adminURL(query string, page int) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	target := h.path("/admin")
	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

func typeOptions(selected string) []Option {
	options := make([]Option, 0, len(catalog.Categories)-1)
	for _, category := range catalog.Categories {
		if category == catalog.CategoryAll {
			continue
		}
		options = append(options, Option{
			Value:    category,
			Label:    catalog.DisplayCategory(category),
			Selected: category == selected,
		})
	}
	return options
}

func noticeForQuery(q url.Values) string {
	switch q.Get("status") {
	case "created":
		return "Event added successfully"
	case "deleted":
		return "Event deleted successfully"
	default:
		return ""
	}
}

func loginMessageForQuery(q url.Values) string {
	if q.Get("status") == "logged_out" {
		return "You have been logged out."
	}
	return ""
}
