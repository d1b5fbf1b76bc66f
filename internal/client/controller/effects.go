package controller

import (
	"context"

	"github.com/dmitrijs2005/activityboard/internal/client/models"
	"github.com/dmitrijs2005/activityboard/internal/client/services"
)

// Effects performs the network side of the controller. It never reads or
// writes State.
type Effects struct {
	Auth       services.AuthService
	Activities services.ActivityService
}

func (e Effects) FetchAuth(ctx context.Context) models.AuthState {
	return e.Auth.Status(ctx)
}

func (e Effects) FetchCatalog(ctx context.Context) (models.Catalog, error) {
	return e.Activities.Catalog(ctx)
}

// Perform sends an intent to the server. Preconditions are the caller's job
// (see State.Check).
func (e Effects) Perform(ctx context.Context, in Intent) services.Outcome {
	switch in.Action {
	case ActionLogin:
		return e.Auth.Login(ctx, in.Username, in.Password)
	case ActionLogout:
		return e.Auth.Logout(ctx)
	case ActionSignup:
		return e.Activities.Signup(ctx, in.Activity, in.Email)
	case ActionUnregister:
		return e.Activities.Unregister(ctx, in.Activity, in.Email)
	default:
		panic("controller: unknown action " + in.Action.String())
	}
}
