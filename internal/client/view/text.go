package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/activityboard/internal/client/notify"
)

const (
	Title      = "Mergington High School Activities"
	RemoveMark = "✕"
)

// Styles holds the lipgloss styles used to draw a Page.
type Styles struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Card     lipgloss.Style
	Name     lipgloss.Style
	Label    lipgloss.Style
	Faint    lipgloss.Style
	Cursor   lipgloss.Style
	Remove   lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Modal    lipgloss.Style
	Selected lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Name:     lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Bold(true),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")),
		Remove:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Modal:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
	}
}

// PlainStyles draws without decoration.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Title: s, Status: s, Card: s, Name: s, Label: s, Faint: s, Cursor: s,
		Remove: s, Info: s, Success: s, Error: s, Modal: s, Selected: s,
	}
}

// Header is the title line followed by the auth status.
func (st Styles) Header(p Page) string {
	return st.Title.Render(Title) + "\n" + st.Status.Render(p.AuthStatus)
}

// Activities draws the activity list. cursor is the Index of the row to
// highlight, or 0 for none.
func (st Styles) Activities(p Page, cursor int) string {
	switch {
	case p.Loading:
		return st.Faint.Render(LoadingText)
	case p.LoadError != "":
		return st.Error.Render(p.LoadError)
	}

	blocks := make([]string, 0, len(p.Cards))
	for _, c := range p.Cards {
		blocks = append(blocks, st.Card.Render(st.card(c, cursor)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (st Styles) card(c Card, cursor int) string {
	var b strings.Builder
	b.WriteString(st.Name.Render(c.Name) + "\n")
	if c.Description != "" {
		b.WriteString(c.Description + "\n")
	}
	b.WriteString(st.Label.Render("Schedule:") + " " + c.Schedule + "\n")
	b.WriteString(st.Label.Render("Availability:") + " " + c.Availability())

	if len(c.Participants) == 0 {
		b.WriteString("\n" + st.Faint.Render(NoParticipants))
		return b.String()
	}

	b.WriteString("\n" + st.Label.Render("Participants:"))
	for _, r := range c.Participants {
		b.WriteString("\n" + st.row(r, r.Index == cursor))
	}
	return b.String()
}

func (st Styles) row(r Row, current bool) string {
	if !r.Removable {
		return "  • " + r.Email
	}
	line := fmt.Sprintf("%2d. %s %s", r.Index, r.Email, st.Remove.Render(RemoveMark))
	if current {
		return st.Cursor.Render(line)
	}
	return line
}

// Notice draws the notice, or "" while it is hidden.
func (st Styles) Notice(p Page) string {
	if !p.Notice.Visible {
		return ""
	}
	return st.severity(p.Notice.Severity).Render(p.Notice.Text)
}

func (st Styles) severity(s notify.Severity) lipgloss.Style {
	switch s {
	case notify.Success:
		return st.Success
	case notify.Error:
		return st.Error
	default:
		return st.Info
	}
}

// Signup draws the signup section: the form summary for teachers, the access
// note for everyone else.
func (st Styles) Signup(p Page) string {
	if p.ShowAccessNote {
		return st.Faint.Render(AccessNoteText)
	}

	var b strings.Builder
	b.WriteString(st.Label.Render("Sign up a student") + "\n")
	b.WriteString("Activity: " + st.selected(p.Options) + "\n")
	b.WriteString("Email:    " + p.Email)
	return b.String()
}

func (st Styles) selected(opts []Option) string {
	for _, o := range opts {
		if o.Selected {
			if o.Value == "" {
				return st.Faint.Render(o.Label)
			}
			return st.Selected.Render(o.Label)
		}
	}
	return st.Faint.Render(SelectPlaceholder)
}

// Text draws the whole page, for line-oriented output.
func (st Styles) Text(p Page) string {
	parts := []string{st.Header(p), st.Activities(p, 0), st.Signup(p)}
	if n := st.Notice(p); n != "" {
		parts = append(parts, n)
	}
	return strings.Join(parts, "\n\n")
}
