package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/activityboard/internal/client/models"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

// RequestIDHeader carries a per-call id that also tags diagnostic log lines.
const RequestIDHeader = "X-Request-ID"

const (
	pathAuthStatus = "/auth/status"
	pathLogin      = "/auth/login"
	pathLogout     = "/auth/logout"
	pathActivities = "/activities"
	pathSignup     = "/activities/{name}/signup"
	pathUnregister = "/activities/{name}/unregister"
)

type HTTPClient struct {
	rc  *resty.Client
	log logging.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewHTTPClient returns a client for the API rooted at baseURL. A zero
// timeout means no per-request deadline beyond the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: log})
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &HTTPClient{rc: rc, log: log}
}

func (c *HTTPClient) request(ctx context.Context) (*resty.Request, string) {
	id := uuid.NewString()
	return c.rc.R().SetContext(ctx).SetHeader(RequestIDHeader, id), id
}

func (c *HTTPClient) do(ctx context.Context, op string, req *resty.Request, id, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Debug(ctx, "request failed", "op", op, "request_id", id, "err", err)
		return nil, fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	c.log.Debug(ctx, "request done", "op", op, "request_id", id, "status", resp.StatusCode(), "elapsed", resp.Time())
	return resp, nil
}

func (c *HTTPClient) AuthStatus(ctx context.Context) (models.AuthState, error) {
	req, id := c.request(ctx)
	resp, err := c.do(ctx, "auth status", req, id, http.MethodGet, pathAuthStatus)
	if err != nil {
		return models.SignedOut, err
	}
	if !resp.IsSuccess() {
		return models.SignedOut, fmt.Errorf("auth status: %w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}
	state, err := decodeAuthState(resp.Body())
	if err != nil {
		return models.SignedOut, fmt.Errorf("auth status: %w", err)
	}
	return state, nil
}

func (c *HTTPClient) Activities(ctx context.Context) (models.Catalog, error) {
	req, id := c.request(ctx)
	resp, err := c.do(ctx, "activities", req, id, http.MethodGet, pathActivities)
	if err != nil {
		return models.Catalog{}, err
	}
	if !resp.IsSuccess() {
		return models.Catalog{}, fmt.Errorf("activities: %w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}
	catalog, err := decodeCatalog(resp.Body())
	if err != nil {
		return models.Catalog{}, fmt.Errorf("activities: %w", err)
	}
	return catalog, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (Reply, error) {
	req, id := c.request(ctx)
	req.SetBody(loginRequest{Username: username, Password: password})
	return c.reply(ctx, "login", req, id, http.MethodPost, pathLogin)
}

func (c *HTTPClient) Logout(ctx context.Context) (Reply, error) {
	req, id := c.request(ctx)
	return c.reply(ctx, "logout", req, id, http.MethodPost, pathLogout)
}

// Signup posts to /activities/{name}/signup?email=E. Both values are
// percent-encoded by resty.
func (c *HTTPClient) Signup(ctx context.Context, activity, email string) (Reply, error) {
	req, id := c.request(ctx)
	req.SetPathParam("name", activity).SetQueryParam("email", email)
	return c.reply(ctx, "signup", req, id, http.MethodPost, pathSignup)
}

func (c *HTTPClient) Unregister(ctx context.Context, activity, email string) (Reply, error) {
	req, id := c.request(ctx)
	req.SetPathParam("name", activity).SetQueryParam("email", email)
	return c.reply(ctx, "unregister", req, id, http.MethodDelete, pathUnregister)
}

func (c *HTTPClient) reply(ctx context.Context, op string, req *resty.Request, id, method, path string) (Reply, error) {
	resp, err := c.do(ctx, op, req, id, method, path)
	if err != nil {
		return Reply{}, err
	}
	r, err := decodeReply(resp.StatusCode(), resp.Body())
	if err != nil {
		return Reply{}, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// restyLogger routes resty's own warnings into the diagnostic log instead
// of stderr, which the full-screen UI owns.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(context.Background(), fmt.Sprintf(format, v...), "source", "resty")
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(context.Background(), fmt.Sprintf(format, v...), "source", "resty")
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(context.Background(), fmt.Sprintf(format, v...), "source", "resty")
}
