package controller

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/activityboard/internal/client/models"
	"github.com/dmitrijs2005/activityboard/internal/client/notify"
	"github.com/dmitrijs2005/activityboard/internal/client/services"
)

const (
	LoginRequiredText = "Teacher login required"
	MissingFieldsText = "Please fill out all fields"
)

var (
	ErrLoginRequired = errors.New("teacher login required")
	ErrMissingFields = errors.New("missing required fields")
)

// Action is a user intent that goes to the server.
type Action int

const (
	ActionLogin Action = iota + 1
	ActionLogout
	ActionSignup
	ActionUnregister
)

func (a Action) String() string {
	switch a {
	case ActionLogin:
		return "login"
	case ActionLogout:
		return "logout"
	case ActionSignup:
		return "signup"
	case ActionUnregister:
		return "unregister"
	default:
		return "unknown"
	}
}

// Intent carries an action and the parameters it needs.
type Intent struct {
	Action   Action
	Activity string
	Email    string
	Username string
	Password string
}

type SignupForm struct {
	Activity string
	Email    string
}

type LoginForm struct {
	Username string
	Password string
}

// State is the application state. The zero value is not usable; call
// NewState.
type State struct {
	Auth models.AuthState

	Catalog       models.Catalog
	CatalogLoaded bool
	// CatalogErr is set when the last fetch failed. The list then shows a
	// failure notice, while Options keep whatever the last good fetch put
	// there.
	CatalogErr error
	Options    []string

	Notices *notify.Surface

	MenuOpen  bool
	LoginOpen bool
	Login     LoginForm
	Signup    SignupForm
}

func NewState() *State {
	return &State{Auth: models.SignedOut, Notices: &notify.Surface{}}
}

// ApplyAuth records the latest session answer.
func (s *State) ApplyAuth(a models.AuthState) {
	s.Auth = a
}

// ApplyCatalog replaces the catalog on success. On failure only the error
// is recorded.
func (s *State) ApplyCatalog(c models.Catalog, err error) {
	s.CatalogLoaded = true
	if err != nil {
		s.CatalogErr = err
		return
	}
	s.Catalog = c
	s.CatalogErr = nil
	s.Options = c.Names()
	if _, ok := c.Get(s.Signup.Activity); !ok {
		s.Signup.Activity = ""
	}
}

// Check runs the client-side preconditions of an intent. Roster changes
// need a privileged session; this is a UX guard only, the server enforces
// the real rule. It is re-evaluated on every attempt.
func (s *State) Check(in Intent) error {
	switch in.Action {
	case ActionSignup, ActionUnregister:
		if !s.Auth.Authenticated {
			return ErrLoginRequired
		}
		if strings.TrimSpace(in.Activity) == "" || strings.TrimSpace(in.Email) == "" {
			return ErrMissingFields
		}
	case ActionLogin:
		if in.Username == "" || in.Password == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// Rejection is the notice for a failed Check.
func Rejection(err error) notify.Notice {
	if errors.Is(err, ErrLoginRequired) {
		return notify.Notice{Text: LoginRequiredText, Severity: notify.Error}
	}
	return notify.Notice{Text: MissingFieldsText, Severity: notify.Error}
}

// ApplyOutcome updates form and overlay state after an action resolved and
// returns what must be re-fetched. Nothing changes on failure.
func (s *State) ApplyOutcome(a Action, out services.Outcome) services.Refresh {
	if !out.OK {
		return services.RefreshNone
	}
	switch a {
	case ActionSignup:
		s.Signup = SignupForm{}
	case ActionLogin:
		s.LoginOpen = false
		s.Login = LoginForm{}
	case ActionLogout:
		s.MenuOpen = false
	}
	return out.Refresh
}

func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// OpenLogin shows the login modal and folds the user menu away.
func (s *State) OpenLogin() {
	s.LoginOpen = true
	s.MenuOpen = false
}

// CancelLogin hides the login modal and clears what was typed.
func (s *State) CancelLogin() {
	s.LoginOpen = false
	s.Login = LoginForm{}
}
