package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/activityboard/internal/client/models"
)

// Client is the API contract of the activities service.
type Client interface {
	AuthStatus(ctx context.Context) (models.AuthState, error)
	Activities(ctx context.Context) (models.Catalog, error)
	Login(ctx context.Context, username, password string) (Reply, error)
	Logout(ctx context.Context) (Reply, error)
	Signup(ctx context.Context, activity, email string) (Reply, error)
	Unregister(ctx context.Context, activity, email string) (Reply, error)
}

// Reply is the decoded body of a mutating call: {"message"} on success,
// {"detail"} on failure.
type Reply struct {
	StatusCode int
	Message    string
	Detail     string
}

// OK reports a 2xx status.
func (r Reply) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
