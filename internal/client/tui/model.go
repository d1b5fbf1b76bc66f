// Package tui is the full-screen activities client built on bubbletea.
//
// All state lives in controller.State and is changed only inside Update.
// Requests run as commands and report back as messages, so the last
// response to arrive wins.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/activityboard/internal/client/controller"
	"github.com/dmitrijs2005/activityboard/internal/client/models"
	"github.com/dmitrijs2005/activityboard/internal/client/notify"
	"github.com/dmitrijs2005/activityboard/internal/client/services"
	"github.com/dmitrijs2005/activityboard/internal/client/view"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

type focus int

const (
	focusBoard focus = iota
	focusSignup
	focusUsername
	focusPassword
)

// refreshedMsg carries the result of one refresh request.
type refreshedMsg struct {
	refresh services.Refresh
	auth    models.AuthState
	catalog models.Catalog
	err     error
}

type outcomeMsg struct {
	action controller.Action
	out    services.Outcome
}

type expireMsg struct {
	gen uint64
}

type Model struct {
	ctx    context.Context
	state  *controller.State
	fx     controller.Effects
	ttl    time.Duration
	styles view.Styles
	log    logging.Logger

	focus focus
	// row is the highlighted participant row, 1-based; 0 means none.
	row int

	email    textinput.Model
	username textinput.Model
	password textinput.Model

	width int
}

func New(ctx context.Context, fx controller.Effects, noticeTTL time.Duration, styles view.Styles, log logging.Logger) Model {
	m := Model{
		ctx:    ctx,
		state:  controller.NewState(),
		fx:     fx,
		ttl:    noticeTTL,
		styles: styles,
		log:    log,
	}

	m.email = textinput.New()
	m.email.Placeholder = "student@mergington.edu"
	m.email.CharLimit = 254
	m.email.Width = 40

	m.username = textinput.New()
	m.username.Placeholder = "Username"
	m.username.CharLimit = 64
	m.username.Width = 30

	m.password = textinput.New()
	m.password.Placeholder = "Password"
	m.password.EchoMode = textinput.EchoPassword
	m.password.EchoCharacter = '•'
	m.password.CharLimit = 128
	m.password.Width = 30

	return m
}

// State is the state the model renders. Callers must treat it as read-only.
func (m Model) State() *controller.State {
	return m.state
}

// Init starts the initial sync: session first, then the catalog.
func (m Model) Init() tea.Cmd {
	return m.refresh(services.RefreshAll)
}

// refresh is the single handler for refresh requests. Auth is read before
// the catalog so rows are drawn against the new session.
func (m Model) refresh(r services.Refresh) tea.Cmd {
	if r == services.RefreshNone {
		return nil
	}
	ctx, fx := m.ctx, m.fx
	return func() tea.Msg {
		msg := refreshedMsg{refresh: r}
		if r.Auth() {
			msg.auth = fx.FetchAuth(ctx)
		}
		if r.Activities() {
			msg.catalog, msg.err = fx.FetchCatalog(ctx)
		}
		return msg
	}
}

func (m Model) perform(in controller.Intent) tea.Cmd {
	ctx, fx := m.ctx, m.fx
	return func() tea.Msg {
		return outcomeMsg{action: in.Action, out: fx.Perform(ctx, in)}
	}
}

// notify shows n and schedules its expiry.
func (m Model) notify(n notify.Notice) tea.Cmd {
	gen := m.state.Notices.Show(n.Text, n.Severity)
	return tea.Tick(m.ttl, func(time.Time) tea.Msg { return expireMsg{gen: gen} })
}

// dispatch checks an intent and either rejects it locally or sends it.
func (m Model) dispatch(in controller.Intent) tea.Cmd {
	if err := m.state.Check(in); err != nil {
		m.log.Info(m.ctx, "intent rejected", "op", in.Action.String(), "err", err)
		return m.notify(controller.Rejection(err))
	}
	return m.perform(in)
}

// syncInputs copies form state into the text inputs after the state changed
// underneath them.
func (m *Model) syncInputs() {
	if m.email.Value() != m.state.Signup.Email {
		m.email.SetValue(m.state.Signup.Email)
	}
	if m.username.Value() != m.state.Login.Username {
		m.username.SetValue(m.state.Login.Username)
	}
	if m.password.Value() != m.state.Login.Password {
		m.password.SetValue(m.state.Login.Password)
	}
}

// setFocus moves keyboard focus and keeps the text inputs in step.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.email.Blur()
	m.username.Blur()
	m.password.Blur()
	switch f {
	case focusSignup:
		return m.email.Focus()
	case focusUsername:
		return m.username.Focus()
	case focusPassword:
		return m.password.Focus()
	}
	return nil
}

func (m *Model) clampRow() {
	n := len(view.Render(m.state).Rows())
	if m.row > n {
		m.row = n
	}
}
