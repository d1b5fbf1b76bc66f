// Package app wires configuration, logging, the API client and one of the
// two front-ends into a runnable activities client.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dmitrijs2005/activityboard/internal/client/cli"
	"github.com/dmitrijs2005/activityboard/internal/client/client"
	"github.com/dmitrijs2005/activityboard/internal/client/config"
	"github.com/dmitrijs2005/activityboard/internal/client/controller"
	"github.com/dmitrijs2005/activityboard/internal/client/services"
	"github.com/dmitrijs2005/activityboard/internal/client/tui"
	"github.com/dmitrijs2005/activityboard/internal/client/view"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

const logMaxSizeMB = 10

var ErrNoServerURL = errors.New("server URL is not set")

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config *config.Config
	logger logging.Logger
	closer io.Closer
	fx     controller.Effects

	in     io.Reader
	out    io.Writer
	stderr io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	if c.ServerURL == "" {
		return nil, ErrNoServerURL
	}
	app := &App{config: c, in: os.Stdin, out: os.Stdout, stderr: os.Stderr}
	app.logger, app.closer = app.newLogger()

	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, app.logger)
	app.fx = controller.Effects{
		Auth:       services.NewAuthService(api, app.logger),
		Activities: services.NewActivityService(api, app.logger),
	}
	return app, nil
}

// newLogger picks the diagnostic sink: the rotating log file when one is
// configured, stderr in plain mode, nowhere while the full-screen UI owns
// the terminal.
func (app *App) newLogger() (logging.Logger, io.Closer) {
	if app.config.LogFile != "" {
		return logging.NewFileLogger(app.config.LogFile, logMaxSizeMB, slog.LevelDebug)
	}
	if app.plain() {
		return logging.NewTextLogger(app.stderr, slog.LevelWarn), io.NopCloser(nil)
	}
	return logging.Discard(), io.NopCloser(nil)
}

func (app *App) plain() bool {
	if app.config.Plain {
		return true
	}
	return !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd()))
}

// Run blocks until the user quits.
func (app *App) Run(ctx context.Context) error {
	defer app.closer.Close()

	app.logger.Info(ctx, "starting client", "server", app.config.ServerURL, "plain", app.plain())

	if app.plain() {
		ctrl := controller.New(app.fx, app.config.NotificationTTL, app.logger)
		cli.NewApp(ctrl, app.in, app.out, app.logger).Run(ctx)
		return nil
	}

	m := tui.New(ctx, app.fx, app.config.NotificationTTL, view.DefaultStyles(), app.logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		app.logger.Error(ctx, "ui stopped", "err", err)
		return err
	}
	return nil
}
