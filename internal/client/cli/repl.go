package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Signup(ctx context.Context, args string) error
	Unregister(ctx context.Context, args string) error
	Remove(ctx context.Context, arg string) error
	Menu(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop over the activity board.
//
// It reads a line from reader, takes the first word as the command and the
// rest as its arguments, and dispatches to methods on 'a'. Unknown commands
// are reported back to the user. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// outcomes themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("activities %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		if line == "" {
			continue
		}
		cmd, args, _ := strings.Cut(line, " ")
		args = strings.TrimSpace(args)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, signup [activity | email], unregister [activity | email], remove <n>, menu, refresh, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, login, menu, refresh, exit")
			}

		case "l", "list":
			_ = a.List(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "signup":
			_ = a.Signup(ctx, args)

		case "unregister":
			_ = a.Unregister(ctx, args)

		case "remove":
			if args == "" {
				printlnFn("Usage: remove <n>")
				continue
			}
			_ = a.Remove(ctx, args)

		case "menu":
			_ = a.Menu(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
