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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Feed(ctx context.Context) error
	News(ctx context.Context, args []string) error
	Countries(ctx context.Context) error
	Country(ctx context.Context, code string) error
	Bill(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	Tags(ctx context.Context) error
	SetTags(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Orwel CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("orwel %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, news, bill <id>, countries, country <code>, profile, tags, settags, stats, logout, exit")
			} else {
				printlnFn("Available commands: register, login, news, countries, country <code>, stats, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "news":
			_ = a.News(ctx, args)

		case "bill":
			if len(args) == 0 {
				printlnFn("Usage: bill <id>")
				continue
			}
			_ = a.Bill(ctx, args[0])

		case "countries":
			_ = a.Countries(ctx)

		case "country":
			if len(args) == 0 {
				printlnFn("Usage: country <code>")
				continue
			}
			_ = a.Country(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "tags":
			_ = a.Tags(ctx)

		case "settags":
			_ = a.SetTags(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
