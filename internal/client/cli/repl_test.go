package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records every command the REPL dispatches.
type stubExec struct {
	loggedIn bool
	calls    []string
	lastSay  string
	lastPlay string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Login(ctx context.Context) error {
	s.calls = append(s.calls, "login")
	return nil
}

func (s *stubExec) Signup(ctx context.Context) error {
	s.calls = append(s.calls, "signup")
	return nil
}

func (s *stubExec) ResetPassword(ctx context.Context) error {
	s.calls = append(s.calls, "resetpw")
	return nil
}

func (s *stubExec) ChangePassword(ctx context.Context) error {
	s.calls = append(s.calls, "passwd")
	return nil
}

func (s *stubExec) DeleteAccount(ctx context.Context) error {
	s.calls = append(s.calls, "delete")
	return nil
}

func (s *stubExec) Logout(ctx context.Context) error {
	s.calls = append(s.calls, "logout")
	return nil
}

func (s *stubExec) Record(ctx context.Context) error {
	s.calls = append(s.calls, "record")
	return nil
}

func (s *stubExec) StopRecord(ctx context.Context) error {
	s.calls = append(s.calls, "stop")
	return nil
}

func (s *stubExec) RetryUpload(ctx context.Context) error {
	s.calls = append(s.calls, "retry")
	return nil
}

func (s *stubExec) Play(ctx context.Context, identifier string) error {
	s.calls = append(s.calls, "play")
	s.lastPlay = identifier
	return nil
}

func (s *stubExec) Say(ctx context.Context, text string) error {
	s.calls = append(s.calls, "say")
	s.lastSay = text
	return nil
}

func (s *stubExec) List(ctx context.Context) error {
	s.calls = append(s.calls, "list")
	return nil
}

func (s *stubExec) UserInfo(ctx context.Context) error {
	s.calls = append(s.calls, "me")
	return nil
}

// capturePrintln redirects printlnFn into a slice for the duration of the
// test.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runLines(t *testing.T, stub *stubExec, input string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), stub, func() string { return "test" }, scanner)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{loggedIn: true}

	runLines(t, stub, "record\nstop\nretry\nplay\nlist\nme\nlogout\nexit\n")

	require.Equal(t, []string{"record", "stop", "retry", "play", "list", "me", "logout"}, stub.calls)
}

func TestREPL_Aliases(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{loggedIn: true}

	runLines(t, stub, "rec\nl\nquit\n")

	require.Equal(t, []string{"record", "list"}, stub.calls)
}

func TestREPL_SayPassesRestOfLine(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{loggedIn: true}

	runLines(t, stub, "say hello out there\nexit\n")

	require.Equal(t, []string{"say"}, stub.calls)
	require.Equal(t, "hello out there", stub.lastSay)
}

func TestREPL_PlayPassesIdentifier(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{loggedIn: true}

	runLines(t, stub, "play abc123\nexit\n")
	require.Equal(t, []string{"play"}, stub.calls)
	require.Equal(t, "abc123", stub.lastPlay)

	stub = &stubExec{loggedIn: true}
	runLines(t, stub, "play\nexit\n")
	require.Equal(t, "", stub.lastPlay)
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := capturePrintln(t)
	stub := &stubExec{}

	runLines(t, stub, "frobnicate\nexit\n")

	require.Empty(t, stub.calls)
	require.Contains(t, *lines, "Unknown command: frobnicate")
}

func TestREPL_BlankLineIgnored(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{}

	runLines(t, stub, "\n   \nexit\n")

	require.Empty(t, stub.calls)
}

func TestREPL_HelpMatchesLoginState(t *testing.T) {
	lines := capturePrintln(t)

	runLines(t, &stubExec{loggedIn: false}, "help\nexit\n")
	require.Contains(t, strings.Join(*lines, "\n"), "login, signup, resetpw")

	*lines = (*lines)[:0]
	runLines(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, strings.Join(*lines, "\n"), "record, stop, retry")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{}

	runLines(t, stub, "") // no input: scanner hits EOF immediately

	require.Empty(t, stub.calls)
}
