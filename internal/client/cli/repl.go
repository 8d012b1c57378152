package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Logout(ctx context.Context) error
	Record(ctx context.Context) error
	StopRecord(ctx context.Context) error
	RetryUpload(ctx context.Context) error
	Play(ctx context.Context, identifier string) error
	Say(ctx context.Context, text string) error
	List(ctx context.Context) error
	UserInfo(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Not logged in:
//
//	help, login, signup, resetpw, exit | quit
//
// Logged in:
//
//	help, record, stop, retry, play [identifier], say <text>, list, me,
//	passwd, delete, logout, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eartalk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: record, stop, retry, play [identifier], say <text>, list, me, passwd, delete, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, resetpw, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "delete":
			_ = a.DeleteAccount(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "record", "rec":
			_ = a.Record(ctx)

		case "stop":
			_ = a.StopRecord(ctx)

		case "retry":
			_ = a.RetryUpload(ctx)

		case "play":
			_ = a.Play(ctx, strings.TrimSpace(strings.TrimPrefix(line, cmd)))

		case "say":
			_ = a.Say(ctx, strings.TrimSpace(strings.TrimPrefix(line, cmd)))

		case "l", "list":
			_ = a.List(ctx)

		case "me":
			_ = a.UserInfo(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
