package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/activityboard/internal/client/apitest"
	"github.com/dmitrijs2005/activityboard/internal/client/client"
	"github.com/dmitrijs2005/activityboard/internal/client/models"
	"github.com/dmitrijs2005/activityboard/internal/client/notify"
	"github.com/dmitrijs2005/activityboard/internal/client/services"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

// fakeTimers replaces afterFunc and lets a test fire expiries by hand.
type fakeTimers struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func stubTimers(t *testing.T) *fakeTimers {
	t.Helper()
	ft := &fakeTimers{}
	orig := afterFunc
	afterFunc = func(d time.Duration, f func()) {
		ft.mu.Lock()
		defer ft.mu.Unlock()
		ft.pending = append(ft.pending, f)
		ft.delays = append(ft.delays, d)
	}
	t.Cleanup(func() { afterFunc = orig })
	return ft
}

func (ft *fakeTimers) count() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return len(ft.pending)
}

func (ft *fakeTimers) fire(i int) {
	ft.mu.Lock()
	f := ft.pending[i]
	ft.mu.Unlock()
	f()
}

func newController(url string) *Controller {
	log := logging.Discard()
	c := client.NewHTTPClient(url, 2*time.Second, log)
	fx := Effects{
		Auth:       services.NewAuthService(c, log),
		Activities: services.NewActivityService(c, log),
	}
	return New(fx, 5*time.Second, log)
}

func newServer(t *testing.T) *apitest.Server {
	t.Helper()
	srv := apitest.NewServer(map[string]string{"teacher": "secret"})
	t.Cleanup(srv.Close)
	srv.Add("Chess Club", apitest.Activity{
		Description:     "d",
		Schedule:        "s",
		MaxParticipants: 2,
		Participants:    []string{"a@x.com"},
	})
	srv.Add("Art Club", apitest.Activity{Description: "paint", Schedule: "Thu", MaxParticipants: 15})
	return srv
}

func requestsSince(srv *apitest.Server, n int) []string {
	return srv.Requests()[n:]
}

func TestController_Start(t *testing.T) {
	stubTimers(t)
	srv := newServer(t)
	c := newController(srv.URL)

	c.Start(context.Background())

	st := c.State()
	assert.False(t, st.Auth.Authenticated)
	assert.True(t, st.CatalogLoaded)
	require.NoError(t, st.CatalogErr)
	assert.Equal(t, []string{"Chess Club", "Art Club"}, st.Options)
	assert.Equal(t, []string{"GET /auth/status", "GET /activities"}, srv.Requests())
}

func TestController_GateBlocksWithoutNetwork(t *testing.T) {
	timers := stubTimers(t)
	srv := newServer(t)
	c := newController(srv.URL)
	ctx := context.Background()
	c.Start(ctx)
	before := len(srv.Requests())

	err := c.Signup(ctx, "Chess Club", "b@x.com")
	require.ErrorIs(t, err, ErrLoginRequired)
	assert.Empty(t, requestsSince(srv, before))
	assert.Equal(t, 1, timers.count(), "exactly one notification")

	n, visible := c.State().Notices.Current()
	assert.True(t, visible)
	assert.Equal(t, notify.Notice{Text: "Teacher login required", Severity: notify.Error}, n)

	err = c.Unregister(ctx, "Chess Club", "a@x.com")
	require.ErrorIs(t, err, ErrLoginRequired)
	assert.Empty(t, requestsSince(srv, before))
	assert.Equal(t, 2, timers.count())
}

func TestController_LoginRefreshesEverything(t *testing.T) {
	stubTimers(t)
	srv := newServer(t)
	c := newController(srv.URL)
	ctx := context.Background()
	c.Start(ctx)

	c.OpenLogin()
	c.State().Login = LoginForm{Username: "teacher", Password: "secret"}
	before := len(srv.Requests())

	require.NoError(t, c.Login(ctx, "teacher", "secret"))

	st := c.State()
	assert.Equal(t, []string{"POST /auth/login", "GET /auth/status", "GET /activities"}, requestsSince(srv, before))
	assert.True(t, st.Auth.Authenticated)
	assert.Equal(t, "teacher", st.Auth.Username)
	assert.False(t, st.LoginOpen, "modal closes")
	assert.Equal(t, LoginForm{}, st.Login, "form resets")

	n, _ := st.Notices.Current()
	assert.Equal(t, notify.Notice{Text: "Logged in as teacher", Severity: notify.Success}, n)
}

func TestController_LoginRejectedKeepsModal(t *testing.T) {
	stubTimers(t)
	srv := newServer(t)
	c := newController(srv.URL)
	ctx := context.Background()
	c.Start(ctx)
	c.OpenLogin()
	before := len(srv.Requests())

	require.NoError(t, c.Login(ctx, "teacher", "nope"))

	assert.Equal(t, []string{"POST /auth/login"}, requestsSince(srv, before), "no refresh on failure")
	assert.True(t, c.State().LoginOpen)
	n, _ := c.State().Notices.Current()
	assert.Equal(t, notify.Notice{Text: "Invalid username or password", Severity: notify.Error}, n)
}

func TestController_LoginNeedsBothFields(t *testing.T) {
	stubTimers(t)
	srv := newServer(t)
	c := newController(srv.URL)
	before := len(srv.Requests())

	err := c.Login(context.Background(), "teacher", "")
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, requestsSince(srv, before))
}

func TestController_SignupRefreshesCatalogAndClearsForm(t *testing.T) {
	stubTimers(t)
	srv := newServer(t)
	c := newController(srv.URL)
	ctx := context.Background()
	c.Start(ctx)
	require.NoError(t, c.Login(ctx, "teacher", "secret"))

	c.State().Signup = SignupForm{Activity: "Chess Club", Email: "b@x.com"}
	before := len(srv.Requests())

	require.NoError(t, c.Signup(ctx, "Chess Club", "b@x.com"))

	assert.Equal(t, []string{"POST /activities/Chess Club/signup", "GET /activities"}, requestsSince(srv, before))
	assert.Equal(t, SignupForm{}, c.State().Signup)

	chess, ok := c.State().Catalog.Get("Chess Club")
	require.True(t, ok)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, chess.Participants)
	assert.Equal(t, 0, chess.SpotsLeft())
}

func TestController_SignupRejectedKeepsForm(t *testing.T) {
	stubTimers(t)
	srv := newServer(t)
	c := newController(srv.URL)
	ctx := context.Background()
	c.Start(ctx)
	require.NoError(t, c.Login(ctx, "teacher", "secret"))

	c.State().Signup = SignupForm{Activity: "Chess Club", Email: "a@x.com"}
	before := len(srv.Requests())

	require.NoError(t, c.Signup(ctx, "Chess Club", "a@x.com"))

	assert.Equal(t, []string{"POST /activities/Chess Club/signup"}, requestsSince(srv, before))
	assert.Equal(t, SignupForm{Activity: "Chess Club", Email: "a@x.com"}, c.State().Signup)
	n, _ := c.State().Notices.Current()
	assert.Equal(t, "Student is already signed up", n.Text)
}

func TestController_UnregisterNotFoundDoesNotRefetch(t *testing.T) {
	stubTimers(t)
	var (
		mu       sync.Mutex
		requests []string
	)
	seen := func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), requests...)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/auth/status":
			_, _ = w.Write([]byte(`{"authenticated": true, "username": "teacher"}`))
		case r.URL.Path == "/activities":
			_, _ = w.Write([]byte(`{"Chess Club": {"description":"d","schedule":"s","max_participants":2,"participants":["a@x.com"]}}`))
		case strings.HasSuffix(r.URL.Path, "/unregister"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Participant not found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	c := newController(srv.URL)
	ctx := context.Background()
	c.Start(ctx)
	before := len(seen())

	require.NoError(t, c.Unregister(ctx, "Chess Club", "a@x.com"))

	assert.Equal(t, []string{"DELETE /activities/Chess Club/unregister"}, seen()[before:])
	n, visible := c.State().Notices.Current()
	assert.True(t, visible)
	assert.Equal(t, notify.Notice{Text: "Participant not found", Severity: notify.Error}, n)
}

func TestController_LogoutClosesMenu(t *testing.T) {
	stubTimers(t)
	srv := newServer(t)
	c := newController(srv.URL)
	ctx := context.Background()
	c.Start(ctx)
	require.NoError(t, c.Login(ctx, "teacher", "secret"))
	c.ToggleMenu()
	require.True(t, c.State().MenuOpen)

	require.NoError(t, c.Logout(ctx))

	assert.False(t, c.State().MenuOpen)
	assert.False(t, c.State().Auth.Authenticated)
}

func TestController_CatalogFailureKeepsOptions(t *testing.T) {
	stubTimers(t)
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/activities" && fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/activities" {
			_, _ = w.Write([]byte(`{"Chess Club": {"description":"d","schedule":"s","max_participants":2,"participants":[]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"authenticated": false, "username": null}`))
	}))
	t.Cleanup(srv.Close)

	c := newController(srv.URL)
	ctx := context.Background()
	c.Start(ctx)
	require.Equal(t, []string{"Chess Club"}, c.State().Options)

	fail.Store(true)
	c.RefreshActivities(ctx)

	st := c.State()
	assert.ErrorIs(t, st.CatalogErr, client.ErrUnexpectedStatus)
	assert.Equal(t, []string{"Chess Club"}, st.Options)
}

func TestController_AuthFailureFallsBackToSignedOut(t *testing.T) {
	stubTimers(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newController(url)
	c.State().ApplyAuth(models.AuthState{Authenticated: true, Username: "teacher"})

	c.RefreshAuthState(context.Background())

	assert.False(t, c.State().Auth.Authenticated)
	_, visible := c.State().Notices.Current()
	assert.False(t, visible, "auth failures are not shown to the user")
}

func TestController_NotifyExpiry(t *testing.T) {
	timers := stubTimers(t)
	c := New(Effects{}, 5*time.Second, logging.Discard())

	c.Notify(notify.Notice{Text: "first", Severity: notify.Info})
	c.Notify(notify.Notice{Text: "second", Severity: notify.Success})
	require.Equal(t, 2, timers.count())
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, timers.delays)

	timers.fire(0)
	n, visible := c.State().Notices.Current()
	assert.True(t, visible, "stale timer is a no-op")
	assert.Equal(t, "second", n.Text)

	timers.fire(1)
	_, visible = c.State().Notices.Current()
	assert.False(t, visible)
}
