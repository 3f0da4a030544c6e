package httpserver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/admin"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/catalog"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/testutil"
)

func newBrowser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func getDocument(t *testing.T, client *http.Client, url string) *goquery.Document {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return testutil.ParseHTML(t, body)
}

func TestHomeRendersAllCards(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := getDocument(t, http.DefaultClient, ts.URL+"/")

	require.Equal(t, 3, doc.Find("[data-record-id]").Length())
	require.Zero(t, doc.Find(`[data-testid="list-error"]`).Length())

	href, ok := doc.Find(`[data-record-id="Museum_Fatahillah"]`).Attr("href")
	require.True(t, ok)
	require.Equal(t, "/event/Museum_Fatahillah", href)
}

func TestHomeAppliesSearchAndCategory(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	doc := getDocument(t, http.DefaultClient, ts.URL+"/?q=museum")
	require.Equal(t, 1, doc.Find("[data-record-id]").Length())

	doc = getDocument(t, http.DefaultClient, ts.URL+"/?category=Event")
	require.Equal(t, 1, doc.Find("[data-record-id]").Length())
	require.Equal(t, 1, doc.Find(`[data-record-id="Festival_Kota_Tua"]`).Length())

	doc = getDocument(t, http.DefaultClient, ts.URL+"/?q=tidak-ada")
	require.Zero(t, doc.Find("[data-record-id]").Length())
	require.Equal(t, 1, doc.Find(".empty-state").Length())
}

func TestHomeShowsErrorBannerWhenBackendFails(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithCatalogService(failingCatalog{}))
	doc := getDocument(t, http.DefaultClient, ts.URL+"/")

	banner := doc.Find(`[data-testid="list-error"]`)
	require.Equal(t, 1, banner.Length())
	require.Contains(t, banner.Text(), "Failed to load heritage data")
}

func TestDetailPage(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := getDocument(t, http.DefaultClient, ts.URL+"/event/Museum_Fatahillah")

	require.Equal(t, "Museum Fatahillah", doc.Find("h1").First().Text())
	require.Contains(t, doc.Find(`[data-testid="detail-address"]`).Text(), "Jl. Taman Fatahillah")
	// Suppressed metadata keys stay off the properties list.
	require.NotContains(t, doc.Find("dl").Text(), "comment")
}

func TestDetailPageNotFound(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, err := http.Get(ts.URL + "/event/ghost")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, body)
	require.Contains(t, doc.Find(`[data-testid="page-error"]`).Text(), "Event not found")
}

func TestAdminPageShowsLoginFormWhenSignedOut(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	doc := getDocument(t, http.DefaultClient, ts.URL+"/admin")

	require.Equal(t, 1, doc.Find(`input[name="username"]`).Length())
	require.Equal(t, 1, doc.Find(`input[name="password"]`).Length())
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := newBrowser(t)

	resp, err := client.PostForm(ts.URL+"/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Invalid credentials", doc.Find(`[data-testid="login-error"]`).Text())
	// The username survives the round trip.
	value, _ := doc.Find(`input[name="username"]`).Attr("value")
	require.Equal(t, "admin", value)
}

func TestAdminLoginCreateDeleteFlow(t *testing.T) {
	t.Parallel()

	svc := admin.NewStaticService(admin.Event{ID: "Kota_Tua", Name: "Kota Tua", Address: "Jakarta Barat"})
	ts := testutil.NewServer(t, testutil.WithAdminController(newTestController(svc)))
	client := newBrowser(t)

	// Login lands on the dashboard with the seeded event.
	resp, err := client.PostForm(ts.URL+"/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 1, doc.Find(`[data-event-id="Kota_Tua"]`).Length())

	// Create shows a success notice and the new row.
	resp, err = client.PostForm(ts.URL+"/admin/events", url.Values{
		"name":        {"Museum Baru"},
		"type":        {"Museum"},
		"description": {"Museum baru di Jakarta"},
		"address":     {"Jakarta Selatan"},
	})
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	doc = testutil.ParseHTML(t, body)
	require.Equal(t, "Event added successfully", doc.Find(`[data-testid="admin-notice"]`).Text())
	require.Equal(t, 1, doc.Find(`[data-event-id="Museum_Baru"]`).Length())

	// Delete with confirmation removes the row.
	resp, err = client.PostForm(ts.URL+"/admin/events/Museum_Baru/delete", url.Values{
		"confirm": {"1"},
	})
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	doc = testutil.ParseHTML(t, body)
	require.Equal(t, "Event deleted successfully", doc.Find(`[data-testid="admin-notice"]`).Text())
	require.Zero(t, doc.Find(`[data-event-id="Museum_Baru"]`).Length())
}

func TestAdminCreateFailureRepopulatesDraft(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithAdminController(newTestController(admin.NewStaticService())))
	client := newBrowser(t)
	login(t, client, ts.URL)

	resp, err := client.PostForm(ts.URL+"/admin/events", url.Values{
		"name":        {""},
		"description": {"Deskripsi tanpa nama"},
	})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	doc := testutil.ParseHTML(t, body)
	// The backend's structured message surfaces verbatim.
	require.Equal(t, "Name is required", doc.Find(`[data-testid="admin-error"]`).Text())
	require.Equal(t, "Deskripsi tanpa nama", doc.Find(`textarea[name="description"]`).Text())
}

func TestAdminDeleteWithoutConfirmationIsANoop(t *testing.T) {
	t.Parallel()

	svc := admin.NewStaticService(admin.Event{ID: "Kota_Tua", Name: "Kota Tua"})
	ts := testutil.NewServer(t, testutil.WithAdminController(newTestController(svc)))
	client := newBrowser(t)
	login(t, client, ts.URL)

	resp, err := client.PostForm(ts.URL+"/admin/events/Kota_Tua/delete", url.Values{})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 1, doc.Find(`[data-event-id="Kota_Tua"]`).Length())
	require.Zero(t, doc.Find(`[data-testid="admin-notice"]`).Length())
}

func TestAdminSearchAndPagination(t *testing.T) {
	t.Parallel()

	events := make([]admin.Event, 0, 15)
	for _, name := range []string{
		"Candi Satu", "Candi Dua", "Candi Tiga", "Candi Empat", "Candi Lima",
		"Candi Enam", "Candi Tujuh", "Candi Delapan", "Candi Sembilan", "Candi Sepuluh",
		"Candi Sebelas", "Candi Dua Belas", "Museum Lain", "Gedung Tua", "Taman Kota",
	} {
		events = append(events, admin.Event{ID: strings.ReplaceAll(name, " ", "_"), Name: name})
	}
	svc := admin.NewStaticService(events...)
	ts := testutil.NewServer(t, testutil.WithAdminController(newTestController(svc)))
	client := newBrowser(t)
	login(t, client, ts.URL)

	doc := getDocument(t, client, ts.URL+"/admin")
	require.Equal(t, 10, doc.Find("[data-event-id]").Length())
	require.Equal(t, 1, doc.Find(`[data-testid="pagination"]`).Length())

	doc = getDocument(t, client, ts.URL+"/admin?page=2")
	require.Equal(t, 5, doc.Find("[data-event-id]").Length())

	// An out-of-range page clamps to the last page.
	doc = getDocument(t, client, ts.URL+"/admin?page=99")
	require.Equal(t, 5, doc.Find("[data-event-id]").Length())

	// Searching narrows the list before paginating.
	doc = getDocument(t, client, ts.URL+"/admin?q=candi&page=2")
	require.Equal(t, 2, doc.Find("[data-event-id]").Length())
}

func TestAdminLogout(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithAdminController(newTestController(admin.NewStaticService())))
	client := newBrowser(t)
	login(t, client, ts.URL)

	resp, err := client.PostForm(ts.URL+"/admin/logout", url.Values{})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "You have been logged out.", doc.Find(`[data-testid="login-message"]`).Text())
	require.Equal(t, 1, doc.Find(`input[name="password"]`).Length())

	// The old session no longer opens the dashboard.
	doc = getDocument(t, client, ts.URL+"/admin")
	require.Equal(t, 1, doc.Find(`input[name="password"]`).Length())
}

func TestAdminMutationsRequireSession(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.PostForm(ts.URL+"/admin/events", url.Values{"name": {"X"}})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestBasePathMounting(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithBasePath("/heritage"))
	doc := getDocument(t, http.DefaultClient, ts.URL+"/heritage")

	href, ok := doc.Find(`[data-record-id="Museum_Fatahillah"]`).Attr("href")
	require.True(t, ok)
	require.Equal(t, "/heritage/event/Museum_Fatahillah", href)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func login(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	resp, err := client.PostForm(baseURL+"/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func newTestController(svc admin.Service) *admin.Controller {
	return admin.NewController(svc, nil, 10)
}

// failingCatalog always errors, standing in for an unreachable backend.
type failingCatalog struct{}

func (failingCatalog) List(ctx context.Context) ([]catalog.Record, error) {
	return nil, io.ErrUnexpectedEOF
}

func (failingCatalog) Detail(ctx context.Context, id string) (*catalog.Detail, error) {
	return nil, io.ErrUnexpectedEOF
}
