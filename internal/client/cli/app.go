package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/activityboard/internal/client/controller"
	"github.com/dmitrijs2005/activityboard/internal/client/notify"
	"github.com/dmitrijs2005/activityboard/internal/client/view"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

// Board is the part of controller.Controller the REPL drives.
type Board interface {
	State() *controller.State
	Start(ctx context.Context)
	Refresh(ctx context.Context)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
	ToggleMenu()
	OpenLogin()
	CancelLogin()
}

var noticeColors = map[notify.Severity]*color.Color{
	notify.Info:    color.New(color.FgCyan),
	notify.Success: color.New(color.FgGreen),
	notify.Error:   color.New(color.FgRed, color.Bold),
}

type App struct {
	board  Board
	styles view.Styles
	reader *bufio.Reader
	prompt io.Writer
	log    logging.Logger

	// last is the page printed by the most recent list; remove <n> indexes
	// into it.
	last view.Page
}

func NewApp(b Board, in io.Reader, prompt io.Writer, log logging.Logger) *App {
	return &App{
		board:  b,
		styles: view.DefaultStyles(),
		reader: bufio.NewReader(in),
		prompt: prompt,
		log:    log,
	}
}

// Run syncs the board, prints it and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	printlnFn("Mergington High School Activities (type 'help' for commands)")
	a.board.Start(ctx)
	_ = a.List(ctx)
	runREPL(ctx, a, a.status, a.reader)
	a.log.Info(ctx, "session ended")
}

func (a *App) isLoggedIn() bool {
	return a.board.State().Auth.Authenticated
}

func (a *App) status() string {
	st := a.board.State()
	s := "student"
	if st.Auth.Authenticated {
		s = "teacher " + st.Auth.Username
	}
	if st.MenuOpen {
		s += " [menu]"
	}
	return fmt.Sprintf("(%s) ", s)
}

// report prints the visible notice, coloured by severity.
func (a *App) report() {
	n, ok := a.board.State().Notices.Current()
	if !ok {
		return
	}
	c, found := noticeColors[n.Severity]
	if !found {
		c = noticeColors[notify.Info]
	}
	printlnFn(c.Sprint(n.Text))
}
