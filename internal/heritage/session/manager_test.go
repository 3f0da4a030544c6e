package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/session"
)

func newManager(t *testing.T, opts ...func(*session.Config)) *session.Manager {
	t.Helper()

	cfg := session.Config{
		HashKey:  []byte("0123456789abcdef0123456789abcdef"),
		Lifetime: time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	mgr, err := session.NewManager(cfg)
	require.NoError(t, err)
	return mgr
}

func TestNewManagerRequiresHashKey(t *testing.T) {
	t.Parallel()

	_, err := session.NewManager(session.Config{})
	require.ErrorIs(t, err, session.ErrInvalidConfig)
}

func TestLoadWithoutCookieYieldsFreshSession(t *testing.T) {
	t.Parallel()

	mgr := newManager(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	sess := mgr.Load(req)

	require.NotEmpty(t, sess.ID())
	require.False(t, sess.Admin())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	mgr := newManager(t)

	sess := mgr.Load(httptest.NewRequest(http.MethodGet, "/admin", nil))
	sess.SetAdmin(true)

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookies[0])

	loaded := mgr.Load(req)
	require.True(t, loaded.Admin())
	require.Equal(t, sess.ID(), loaded.ID())
}

func TestLoadGarbledCookieYieldsFreshSession(t *testing.T) {
	t.Parallel()

	mgr := newManager(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "heritage_admin_session", Value: "not-a-session"})

	sess := mgr.Load(req)
	require.False(t, sess.Admin())
}

func TestLoadExpiredSessionYieldsFreshSession(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	clock := &now
	mgr := newManager(t, func(cfg *session.Config) {
		cfg.Lifetime = time.Minute
		cfg.Now = func() time.Time { return *clock }
	})

	sess := mgr.Load(httptest.NewRequest(http.MethodGet, "/admin", nil))
	sess.SetAdmin(true)

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))
	cookie := rec.Result().Cookies()[0]

	later := now.Add(2 * time.Minute)
	clock = &later

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)

	loaded := mgr.Load(req)
	require.False(t, loaded.Admin())
	require.NotEqual(t, sess.ID(), loaded.ID())
}

func TestSaveDestroyedSessionClearsCookie(t *testing.T) {
	t.Parallel()

	mgr := newManager(t)

	sess := mgr.Load(httptest.NewRequest(http.MethodGet, "/admin", nil))
	sess.SetAdmin(true)
	sess.Destroy()
	require.True(t, sess.Destroyed())

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.Equal(t, -1, cookies[0].MaxAge)
}
