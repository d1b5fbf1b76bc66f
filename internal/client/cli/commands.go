package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/activityboard/internal/client/controller"
	"github.com/dmitrijs2005/activityboard/internal/client/view"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// List renders the board and remembers it for remove.
func (a *App) List(ctx context.Context) error {
	a.last = view.Render(a.board.State())
	printlnFn(a.styles.Text(a.last))
	return nil
}

// Login opens the login dialog, reads credentials and submits them. The
// dialog is closed again if the attempt did not succeed.
func (a *App) Login(ctx context.Context) error {
	a.board.OpenLogin()
	defer func() {
		if a.board.State().LoginOpen {
			a.board.CancelLogin()
		}
	}()

	username, err := getSimpleText(a.reader, "Username", a.prompt)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.prompt)
	if err != nil {
		return err
	}
	defer wipe(password)

	err = a.board.Login(ctx, username, string(password))
	a.report()
	return err
}

func (a *App) Logout(ctx context.Context) error {
	err := a.board.Logout(ctx)
	a.report()
	return err
}

// Signup registers a student. args is "activity | email"; when empty the
// activity and email are asked for. Signed-out users are not prompted, the
// attempt goes straight to the login check.
func (a *App) Signup(ctx context.Context, args string) error {
	activity, email, err := a.pair(args)
	if err != nil {
		return err
	}
	a.board.State().Signup = controller.SignupForm{Activity: activity, Email: email}

	err = a.board.Signup(ctx, activity, email)
	a.report()
	return err
}

func (a *App) Unregister(ctx context.Context, args string) error {
	activity, email, err := a.pair(args)
	if err != nil {
		return err
	}
	err = a.board.Unregister(ctx, activity, email)
	a.report()
	return err
}

// Remove unregisters participant row n of the last list.
func (a *App) Remove(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: remove <n>")
		return fmt.Errorf("remove: bad row %q: %w", arg, err)
	}
	row, ok := a.last.Row(n)
	if !ok {
		printlnFn(fmt.Sprintf("No participant row %d; run list first", n))
		return fmt.Errorf("remove: no row %d", n)
	}

	err = a.board.Unregister(ctx, row.Activity, row.Email)
	a.report()
	return err
}

// Menu toggles the user menu and prints it when open.
func (a *App) Menu(ctx context.Context) error {
	a.board.ToggleMenu()
	st := a.board.State()
	if !st.MenuOpen {
		return nil
	}
	if st.Auth.Authenticated {
		printlnFn(fmt.Sprintf("Signed in as %s. Commands: logout, menu", st.Auth.Username))
	} else {
		printlnFn("Not signed in. Commands: login, menu")
	}
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	a.board.Refresh(ctx)
	return a.List(ctx)
}

// pair takes "activity | email" from args, or asks for both. An activity
// may be given by its number in the list of options.
func (a *App) pair(args string) (string, string, error) {
	if args != "" {
		activity, email, ok := splitPair(args)
		if !ok {
			return args, "", nil
		}
		return a.resolveActivity(activity), email, nil
	}
	if !a.isLoggedIn() {
		return "", "", nil
	}

	opts := a.board.State().Options
	for i, name := range opts {
		fmt.Fprintf(a.prompt, "%2d. %s\n", i+1, name)
	}
	activity, err := getSimpleText(a.reader, "Activity (name or number)", a.prompt)
	if err != nil {
		return "", "", err
	}
	email, err := getSimpleText(a.reader, "Student email", a.prompt)
	if err != nil {
		return "", "", err
	}
	return a.resolveActivity(activity), email, nil
}

func (a *App) resolveActivity(s string) string {
	opts := a.board.State().Options
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(opts) {
		return opts[n-1]
	}
	return s
}
