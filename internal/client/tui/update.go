package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/activityboard/internal/client/controller"
	"github.com/dmitrijs2005/activityboard/internal/client/services"
	"github.com/dmitrijs2005/activityboard/internal/client/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case refreshedMsg:
		if msg.refresh.Auth() {
			m.state.ApplyAuth(msg.auth)
		}
		if msg.refresh.Activities() {
			m.state.ApplyCatalog(msg.catalog, msg.err)
		}
		if m.focus == focusSignup && !m.state.Auth.Authenticated {
			m.setFocus(focusBoard)
		}
		m.clampRow()
		m.syncInputs()
		return m, nil

	case outcomeMsg:
		shown := m.notify(msg.out.Notice)
		r := m.state.ApplyOutcome(msg.action, msg.out)
		if !m.state.LoginOpen && (m.focus == focusUsername || m.focus == focusPassword) {
			m.setFocus(focusBoard)
		}
		m.syncInputs()
		return m, tea.Batch(shown, m.refresh(r))

	case expireMsg:
		m.state.Notices.Expire(msg.gen)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusUsername, focusPassword:
			return m.updateLogin(msg)
		case focusSignup:
			return m.updateSignup(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "m":
		m.state.ToggleMenu()

	case "esc":
		m.state.MenuOpen = false

	case "l":
		if !m.state.Auth.Authenticated {
			m.state.OpenLogin()
			cmd := m.setFocus(focusUsername)
			return m, cmd
		}

	case "o":
		if m.state.Auth.Authenticated {
			return m, m.dispatch(controller.Intent{Action: controller.ActionLogout})
		}

	case "r":
		return m, m.refresh(services.RefreshAll)

	case "s", "tab":
		if !m.state.Auth.Authenticated {
			return m, m.dispatch(controller.Intent{Action: controller.ActionSignup})
		}
		cmd := m.setFocus(focusSignup)
		return m, cmd

	case "up", "k":
		if m.row > 1 {
			m.row--
		}

	case "down", "j":
		if m.row < len(view.Render(m.state).Rows()) {
			m.row++
		}

	case "x", "delete":
		row, ok := view.Render(m.state).Row(m.row)
		if !ok {
			return m, nil
		}
		return m, m.dispatch(controller.Intent{
			Action:   controller.ActionUnregister,
			Activity: row.Activity,
			Email:    row.Email,
		})
	}
	return m, nil
}

func (m Model) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		cmd := m.setFocus(focusBoard)
		return m, cmd

	case "up":
		m.cycleActivity(-1)
		return m, nil

	case "down":
		m.cycleActivity(1)
		return m, nil

	case "enter":
		f := m.state.Signup
		return m, m.dispatch(controller.Intent{
			Action:   controller.ActionSignup,
			Activity: f.Activity,
			Email:    f.Email,
		})
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	m.state.Signup.Email = m.email.Value()
	return m, cmd
}

// cycleActivity moves the activity selection, wrapping through the
// placeholder.
func (m *Model) cycleActivity(step int) {
	choices := append([]string{""}, m.state.Options...)
	cur := 0
	for i, c := range choices {
		if c == m.state.Signup.Activity {
			cur = i
			break
		}
	}
	next := (cur + step + len(choices)) % len(choices)
	m.state.Signup.Activity = choices[next]
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state.CancelLogin()
		m.syncInputs()
		cmd := m.setFocus(focusBoard)
		return m, cmd

	case "tab", "shift+tab", "up", "down":
		if m.focus == focusUsername {
			cmd := m.setFocus(focusPassword)
			return m, cmd
		}
		cmd := m.setFocus(focusUsername)
		return m, cmd

	case "enter":
		if m.focus == focusUsername {
			cmd := m.setFocus(focusPassword)
			return m, cmd
		}
		f := m.state.Login
		return m, m.dispatch(controller.Intent{
			Action:   controller.ActionLogin,
			Username: f.Username,
			Password: f.Password,
		})
	}

	var cmd tea.Cmd
	if m.focus == focusUsername {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	m.state.Login = controller.LoginForm{Username: m.username.Value(), Password: m.password.Value()}
	return m, cmd
}
