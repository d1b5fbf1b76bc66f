package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/activityboard/internal/client/apitest"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

func newServer(t *testing.T) *apitest.Server {
	t.Helper()
	srv := apitest.NewServer(map[string]string{"mrodriguez": "art-teacher-password"})
	t.Cleanup(srv.Close)
	srv.Add("Chess Club", apitest.Activity{
		Description:     "Learn strategies",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu"},
	})
	srv.Add("Art Club", apitest.Activity{Description: "Paint", Schedule: "Thursdays", MaxParticipants: 15})
	return srv
}

func newClient(url string) *HTTPClient {
	return NewHTTPClient(url, 2*time.Second, logging.Discard())
}

func TestHTTPClient_AuthStatus_SignedOut(t *testing.T) {
	srv := newServer(t)
	c := newClient(srv.URL)

	state, err := c.AuthStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, state.Authenticated)
	assert.Empty(t, state.Username)
}

func TestHTTPClient_LoginKeepsSessionCookie(t *testing.T) {
	srv := newServer(t)
	c := newClient(srv.URL)
	ctx := context.Background()

	reply, err := c.Login(ctx, "mrodriguez", "art-teacher-password")
	require.NoError(t, err)
	assert.True(t, reply.OK())
	assert.Equal(t, "Logged in as mrodriguez", reply.Message)

	state, err := c.AuthStatus(ctx)
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
	assert.Equal(t, "mrodriguez", state.Username)

	reply, err = c.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Logged out", reply.Message)

	state, err = c.AuthStatus(ctx)
	require.NoError(t, err)
	assert.False(t, state.Authenticated)
}

func TestHTTPClient_LoginRejected(t *testing.T) {
	srv := newServer(t)
	c := newClient(srv.URL)

	reply, err := c.Login(context.Background(), "mrodriguez", "wrong")
	require.NoError(t, err)
	assert.False(t, reply.OK())
	assert.Equal(t, http.StatusUnauthorized, reply.StatusCode)
	assert.Equal(t, "Invalid username or password", reply.Detail)
}

func TestHTTPClient_Activities_KeepsOrder(t *testing.T) {
	srv := newServer(t)
	c := newClient(srv.URL)

	catalog, err := c.Activities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Chess Club", "Art Club"}, catalog.Names())

	chess, ok := catalog.Get("Chess Club")
	require.True(t, ok)
	assert.Equal(t, "Learn strategies", chess.Description)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu"}, chess.Participants)

	art, _ := catalog.Get("Art Club")
	assert.Empty(t, art.Participants)
}

func TestHTTPClient_SignupAndUnregister_EncodeNameAndEmail(t *testing.T) {
	srv := newServer(t)
	c := newClient(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "mrodriguez", "art-teacher-password")
	require.NoError(t, err)

	reply, err := c.Signup(ctx, "Chess Club", "new+kid@mergington.edu")
	require.NoError(t, err)
	assert.True(t, reply.OK())
	assert.Equal(t, "Signed up new+kid@mergington.edu for Chess Club", reply.Message)
	assert.Contains(t, srv.Participants("Chess Club"), "new+kid@mergington.edu")

	reply, err = c.Unregister(ctx, "Chess Club", "new+kid@mergington.edu")
	require.NoError(t, err)
	assert.True(t, reply.OK())
	assert.NotContains(t, srv.Participants("Chess Club"), "new+kid@mergington.edu")
}

func TestHTTPClient_MutationWithoutSession(t *testing.T) {
	srv := newServer(t)
	c := newClient(srv.URL)

	reply, err := c.Signup(context.Background(), "Chess Club", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, reply.StatusCode)
	assert.Equal(t, "Teacher login required", reply.Detail)
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newClient(url)
	ctx := context.Background()

	_, err := c.AuthStatus(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Activities(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Signup(ctx, "Chess Club", "a@x.com")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_NonJSONBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(srv.Close)

	c := newClient(srv.URL)
	ctx := context.Background()

	_, err := c.Unregister(ctx, "Chess Club", "a@x.com")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = c.Activities(ctx)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestHTTPClient_SendsRequestID(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(RequestIDHeader))
		_, _ = w.Write([]byte(`{"authenticated": false, "username": null}`))
	}))
	t.Cleanup(srv.Close)

	c := newClient(srv.URL)
	_, _ = c.AuthStatus(context.Background())
	_, _ = c.AuthStatus(context.Background())

	require.Len(t, got, 2)
	assert.NotEmpty(t, got[0])
	assert.NotEqual(t, got[0], got[1])
}

func TestHTTPClient_ContextCanceled(t *testing.T) {
	srv := newServer(t)
	c := newClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Activities(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
