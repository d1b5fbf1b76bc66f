package services

import (
	"context"

	"github.com/dmitrijs2005/activityboard/internal/client/client"
	"github.com/dmitrijs2005/activityboard/internal/client/models"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

// AuthService covers the session calls.
//
// Contract:
//   - Status never fails: any transport or decoding problem is logged and
//     reported as the signed-out state.
//   - Login/Logout always return an Outcome; see the package doc for how
//     replies map to notices.
type AuthService interface {
	Status(ctx context.Context) models.AuthState
	Login(ctx context.Context, username, password string) Outcome
	Logout(ctx context.Context) Outcome
}

type authService struct {
	client client.Client
	log    logging.Logger
}

func NewAuthService(c client.Client, log logging.Logger) AuthService {
	return &authService{client: c, log: log}
}

func (a *authService) Status(ctx context.Context) models.AuthState {
	state, err := a.client.AuthStatus(ctx)
	if err != nil {
		a.log.Error(ctx, "error checking auth status", "err", err)
		return models.SignedOut
	}
	return state
}

func (a *authService) Login(ctx context.Context, username, password string) Outcome {
	reply, err := a.client.Login(ctx, username, password)
	return interpret(ctx, a.log, actionLogin, reply, err)
}

func (a *authService) Logout(ctx context.Context) Outcome {
	reply, err := a.client.Logout(ctx)
	return interpret(ctx, a.log, actionLogout, reply, err)
}
