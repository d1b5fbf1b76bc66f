// Package view turns controller state into a Page, a plain description of
// what the screen shows, and renders a Page as terminal text.
//
// Render is pure: it reads the state and never changes it. Both front-ends
// call it after every state change and draw the result.
package view

import (
	"fmt"

	"github.com/dmitrijs2005/activityboard/internal/client/controller"
	"github.com/dmitrijs2005/activityboard/internal/client/notify"
)

const (
	StudentModeText   = "Student mode"
	LoadingText       = "Loading activities..."
	LoadFailedText    = "Failed to load activities. Please try again later."
	NoParticipants    = "No participants yet"
	SelectPlaceholder = "-- Select an activity --"
	AccessNoteText    = "Only teachers can register or remove students. Log in to manage rosters."
)

// Page describes one frame.
type Page struct {
	AuthStatus string

	ShowLogin  bool
	ShowLogout bool

	ShowSignupForm bool
	ShowAccessNote bool

	// Exactly one of Loading, LoadError and Cards describes the list.
	Loading   bool
	LoadError string
	Cards     []Card

	// Options always starts with the placeholder.
	Options []Option
	Email   string

	Notice Notice

	MenuOpen  bool
	LoginOpen bool
	Username  string
}

type Card struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []Row
}

// Availability is the "<n> spots left" line. Negative counts are shown as is.
func (c Card) Availability() string {
	return fmt.Sprintf("%d spots left", c.SpotsLeft)
}

// Row is one participant line. Index numbers rows across the whole page,
// starting at 1.
type Row struct {
	Index     int
	Activity  string
	Email     string
	Removable bool
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Notice struct {
	Visible  bool
	Text     string
	Severity notify.Severity
}

// Render projects s onto a Page.
func Render(s *controller.State) Page {
	auth := s.Auth.Authenticated

	p := Page{
		AuthStatus:     StudentModeText,
		ShowLogin:      !auth,
		ShowLogout:     auth,
		ShowSignupForm: auth,
		ShowAccessNote: !auth,
		Email:          s.Signup.Email,
		MenuOpen:       s.MenuOpen,
		LoginOpen:      s.LoginOpen,
		Username:       s.Login.Username,
	}
	if auth {
		p.AuthStatus = fmt.Sprintf("Teacher mode (%s)", s.Auth.Username)
	}

	switch {
	case !s.CatalogLoaded:
		p.Loading = true
	case s.CatalogErr != nil:
		p.LoadError = LoadFailedText
	default:
		p.Cards = cards(s, auth)
	}

	p.Options = append(p.Options, Option{Label: SelectPlaceholder, Selected: s.Signup.Activity == ""})
	for _, name := range s.Options {
		p.Options = append(p.Options, Option{Value: name, Label: name, Selected: name == s.Signup.Activity})
	}

	n, visible := s.Notices.Current()
	p.Notice = Notice{Visible: visible, Text: n.Text, Severity: n.Severity}

	return p
}

func cards(s *controller.State, removable bool) []Card {
	out := make([]Card, 0, s.Catalog.Len())
	idx := 0
	for _, a := range s.Catalog.Activities() {
		c := Card{
			Name:        a.Name,
			Description: a.Description,
			Schedule:    a.Schedule,
			SpotsLeft:   a.SpotsLeft(),
		}
		for _, email := range a.Participants {
			idx++
			c.Participants = append(c.Participants, Row{
				Index:     idx,
				Activity:  a.Name,
				Email:     email,
				Removable: removable,
			})
		}
		out = append(out, c)
	}
	return out
}

// Rows lists every participant row in display order.
func (p Page) Rows() []Row {
	var rows []Row
	for _, c := range p.Cards {
		rows = append(rows, c.Participants...)
	}
	return rows
}

// Row looks a row up by its page index.
func (p Page) Row(index int) (Row, bool) {
	for _, r := range p.Rows() {
		if r.Index == index {
			return r, true
		}
	}
	return Row{}, false
}
