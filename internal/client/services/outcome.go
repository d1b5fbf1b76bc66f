// Package services turns raw API replies into user-facing outcomes.
//
// Every mutating call follows one shape: 2xx shows the server's message and
// asks for a refresh, non-2xx shows the server's detail (or a per-action
// fallback) and refreshes nothing, and a request that never got a usable
// answer is logged and reported with a generic "please try again" text.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/activityboard/internal/client/client"
	"github.com/dmitrijs2005/activityboard/internal/client/notify"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

// Refresh is the set of state a successful mutation invalidates.
type Refresh uint8

const (
	RefreshAuth Refresh = 1 << iota
	RefreshActivities

	RefreshNone Refresh = 0
	RefreshAll          = RefreshAuth | RefreshActivities
)

func (r Refresh) Auth() bool       { return r&RefreshAuth != 0 }
func (r Refresh) Activities() bool { return r&RefreshActivities != 0 }

// Outcome is the result of one mutating action.
type Outcome struct {
	Notice notify.Notice
	// OK is set only for a 2xx reply.
	OK      bool
	Refresh Refresh
	// Err is the transport-level failure, if any. It has already been logged.
	Err error
}

// action names the per-call texts and what a success invalidates.
type action struct {
	op       string
	fallback string
	failure  string
	refresh  Refresh
}

var (
	actionLogin = action{
		op:       "login",
		fallback: "Login failed",
		failure:  "Failed to login. Please try again.",
		refresh:  RefreshAll,
	}
	actionLogout = action{
		op:       "logout",
		fallback: "Logout failed",
		failure:  "Failed to logout. Please try again.",
		refresh:  RefreshAll,
	}
	actionSignup = action{
		op:       "signup",
		fallback: "An error occurred",
		failure:  "Failed to sign up. Please try again.",
		refresh:  RefreshActivities,
	}
	actionUnregister = action{
		op:       "unregister",
		fallback: "An error occurred",
		failure:  "Failed to unregister. Please try again.",
		refresh:  RefreshActivities,
	}
)

func interpret(ctx context.Context, log logging.Logger, a action, reply client.Reply, err error) Outcome {
	if err != nil {
		level := log.Error
		if errors.Is(err, context.Canceled) {
			level = log.Warn
		}
		level(ctx, "action failed", "op", a.op, "err", err)
		return Outcome{
			Notice: notify.Notice{Text: a.failure, Severity: notify.Error},
			Err:    err,
		}
	}

	if reply.OK() {
		return Outcome{
			Notice:  notify.Notice{Text: reply.Message, Severity: notify.Success},
			OK:      true,
			Refresh: a.refresh,
		}
	}

	text := reply.Detail
	if text == "" {
		text = a.fallback
	}
	log.Info(ctx, "action rejected", "op", a.op, "status", reply.StatusCode, "detail", reply.Detail)
	return Outcome{Notice: notify.Notice{Text: text, Severity: notify.Error}}
}
