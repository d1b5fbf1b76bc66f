package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/activityboard/internal/client/view"
)

func (m Model) View() string {
	p := view.Render(m.state)
	st := m.styles

	sections := []string{st.Header(p)}
	if p.MenuOpen {
		sections = append(sections, m.menu(p))
	}
	if p.LoginOpen {
		sections = append(sections, m.loginModal())
	}
	sections = append(sections, st.Activities(p, m.row), m.signup(p))
	if n := st.Notice(p); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections, st.Faint.Render(m.footer(p)))

	out := strings.Join(sections, "\n\n")
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out
}

func (m Model) menu(p view.Page) string {
	var lines []string
	if p.ShowLogout {
		lines = append(lines, p.AuthStatus, "[o] Logout")
	} else {
		lines = append(lines, "[l] Login")
	}
	return m.styles.Modal.Render(strings.Join(lines, "\n"))
}

func (m Model) loginModal() string {
	body := m.styles.Label.Render("Teacher Login") + "\n" +
		m.username.View() + "\n" +
		m.password.View() + "\n" +
		m.styles.Faint.Render("enter: submit • tab: switch field • esc: cancel")
	return m.styles.Modal.Render(body)
}

func (m Model) signup(p view.Page) string {
	if !p.ShowSignupForm || m.focus != focusSignup {
		return m.styles.Signup(p)
	}

	var label string
	for _, o := range p.Options {
		if o.Selected {
			label = o.Label
		}
	}
	return m.styles.Label.Render("Sign up a student") + "\n" +
		"Activity: ‹ " + m.styles.Selected.Render(label) + " ›\n" +
		"Email:    " + m.email.View()
}

func (m Model) footer(p view.Page) string {
	switch m.focus {
	case focusSignup:
		return "↑/↓ activity • enter sign up • esc back"
	case focusUsername, focusPassword:
		return "enter submit • esc cancel"
	}
	keys := []string{"j/k move", "m menu", "r refresh"}
	if p.ShowLogout {
		keys = append(keys, "s sign up", "x remove", "o logout")
	} else {
		keys = append(keys, "l login")
	}
	return strings.Join(append(keys, "q quit"), " • ")
}
