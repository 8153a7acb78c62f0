package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/parasearch/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Goto(ctx context.Context, path string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Submit(ctx context.Context) error
	Search(ctx context.Context, word string) error
	Results(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

var helpByScreen = map[string]string{
	router.PathLogin:     "Available commands: login, register, goto <path>, exit",
	router.PathRegister:  "Available commands: register, login, goto <path>, exit",
	router.PathDashboard: "Available commands: submit, search <word>, results, whoami, logout, goto <path>, exit",
}

// runREPL reads commands line by line from reader and dispatches them to a
// according to the screen reported by screenFn. Unknown commands are reported
// back to the user. The loop exits on EOF, on "exit" or "quit", or once ctx
// is cancelled.
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, screenFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("parasearch %s>", screenFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpByScreen[screenFn()])

		case "goto":
			if len(args) == 0 {
				printlnFn("Usage: goto <path>")
				continue
			}
			_ = a.Goto(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !dispatch(ctx, a, screenFn(), cmd, args) {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

// dispatch runs a screen-specific command. It reports false when cmd means
// nothing on screen.
func dispatch(ctx context.Context, a execIface, screen, cmd string, args []string) bool {
	switch screen {
	case router.PathLogin:
		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Goto(ctx, router.PathRegister)
		default:
			return false
		}

	case router.PathRegister:
		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Goto(ctx, router.PathLogin)
		default:
			return false
		}

	case router.PathDashboard:
		switch cmd {
		case "submit":
			_ = a.Submit(ctx)
		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))
		case "results":
			_ = a.Results(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			return false
		}

	default:
		return false
	}
	return true
}
