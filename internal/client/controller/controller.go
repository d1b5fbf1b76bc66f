package controller

import (
	"context"
	"time"

	"github.com/dmitrijs2005/activityboard/internal/client/notify"
	"github.com/dmitrijs2005/activityboard/internal/client/services"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

// afterFunc is a test seam for time.AfterFunc.
var afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }

// Controller runs intents one at a time: check, perform, apply, refresh.
// It is meant for a sequential front-end and is not safe for concurrent
// dispatch; the notice expiry timer is the only background work and only
// touches the mutex-guarded notify.Surface.
type Controller struct {
	state *State
	fx    Effects
	ttl   time.Duration
	log   logging.Logger
}

func New(fx Effects, noticeTTL time.Duration, log logging.Logger) *Controller {
	return &Controller{state: NewState(), fx: fx, ttl: noticeTTL, log: log}
}

// State exposes the application state for rendering. Callers must treat it
// as read-only.
func (c *Controller) State() *State {
	return c.state
}

// Start performs the initial sync: session first, then the catalog.
func (c *Controller) Start(ctx context.Context) {
	c.refresh(ctx, services.RefreshAll)
}

// RefreshAuthState re-reads the session. It never fails; see
// services.AuthService.Status.
func (c *Controller) RefreshAuthState(ctx context.Context) {
	c.state.ApplyAuth(c.fx.FetchAuth(ctx))
}

func (c *Controller) RefreshActivities(ctx context.Context) {
	c.state.ApplyCatalog(c.fx.FetchCatalog(ctx))
}

// Refresh re-syncs both session and catalog without mutating anything.
func (c *Controller) Refresh(ctx context.Context) {
	c.refresh(ctx, services.RefreshAll)
}

// Dispatch runs one intent to completion. The returned error is non-nil
// only when a precondition stopped the intent before any request was made;
// every outcome, including that one, is already on the notice surface.
func (c *Controller) Dispatch(ctx context.Context, in Intent) error {
	if err := c.state.Check(in); err != nil {
		c.log.Info(ctx, "intent rejected", "op", in.Action.String(), "err", err)
		c.Notify(Rejection(err))
		return err
	}

	out := c.fx.Perform(ctx, in)
	c.Notify(out.Notice)
	c.refresh(ctx, c.state.ApplyOutcome(in.Action, out))
	return nil
}

func (c *Controller) Login(ctx context.Context, username, password string) error {
	return c.Dispatch(ctx, Intent{Action: ActionLogin, Username: username, Password: password})
}

func (c *Controller) Logout(ctx context.Context) error {
	return c.Dispatch(ctx, Intent{Action: ActionLogout})
}

func (c *Controller) Signup(ctx context.Context, activity, email string) error {
	return c.Dispatch(ctx, Intent{Action: ActionSignup, Activity: activity, Email: email})
}

func (c *Controller) Unregister(ctx context.Context, activity, email string) error {
	return c.Dispatch(ctx, Intent{Action: ActionUnregister, Activity: activity, Email: email})
}

func (c *Controller) ToggleMenu()  { c.state.ToggleMenu() }
func (c *Controller) OpenLogin()   { c.state.OpenLogin() }
func (c *Controller) CancelLogin() { c.state.CancelLogin() }

// Notify shows n and arms its expiry.
func (c *Controller) Notify(n notify.Notice) {
	surface := c.state.Notices
	gen := surface.Show(n.Text, n.Severity)
	afterFunc(c.ttl, func() { surface.Expire(gen) })
}

// refresh is the single handler for refresh requests.
func (c *Controller) refresh(ctx context.Context, r services.Refresh) {
	if r.Auth() {
		c.RefreshAuthState(ctx)
	}
	if r.Activities() {
		c.RefreshActivities(ctx)
	}
}
