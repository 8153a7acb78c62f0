package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/parasearch/internal/client/router"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	screen string
	calls  []string
}

func (f *fakeExec) Goto(_ context.Context, path string) error {
	f.calls = append(f.calls, "goto "+path)
	f.screen = router.Normalize(path)
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.screen = router.PathDashboard
	return nil
}
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	f.screen = router.PathLogin
	return nil
}
func (f *fakeExec) Submit(context.Context) error { f.calls = append(f.calls, "submit"); return nil }
func (f *fakeExec) Search(_ context.Context, word string) error {
	f.calls = append(f.calls, "search "+word)
	return nil
}
func (f *fakeExec) Results(context.Context) error { f.calls = append(f.calls, "results"); return nil }
func (f *fakeExec) WhoAmI(context.Context) error  { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.screen = router.PathLogin
	return nil
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runLines(ctx context.Context, f *fakeExec, lines ...string) {
	runREPL(ctx, f, func() string { return f.screen }, bufio.NewReader(strings.NewReader(strings.Join(lines, "\n"))))
}

func TestRunREPL_ScreenFlow(t *testing.T) {
	capturePrintln(t)

	f := &fakeExec{screen: router.PathLogin}
	runLines(context.Background(), f,
		"register",
		"register",
		"login",
		"SEARCH Big Cat",
		"submit",
		"results",
		"whoami",
		"logout",
		"exit",
		"login",
	)

	assert.Equal(t, []string{
		"goto /register",
		"register",
		"login",
		"search Big Cat",
		"submit",
		"results",
		"whoami",
		"logout",
	}, f.calls)
}

func TestRunREPL_CommandsAreScreenScoped(t *testing.T) {
	lines := capturePrintln(t)

	f := &fakeExec{screen: router.PathLogin}
	runLines(context.Background(), f, "search cat", "submit", "quit")

	assert.Empty(t, f.calls)
	assert.Contains(t, *lines, "Unknown command: search")
	assert.Contains(t, *lines, "Unknown command: submit")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_HelpGotoAndPrompt(t *testing.T) {
	lines := capturePrintln(t)

	f := &fakeExec{screen: router.PathDashboard}
	runLines(context.Background(), f, "", "help", "goto", "goto /register")

	assert.Equal(t, []string{"goto /register"}, f.calls)
	assert.Contains(t, *lines, "parasearch /dashboard>")
	assert.Contains(t, *lines, helpByScreen[router.PathDashboard])
	assert.Contains(t, *lines, "Usage: goto <path>")
	assert.Contains(t, *lines, "parasearch /register>")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeExec{screen: router.PathDashboard}
	runLines(ctx, f, "results", "results")
	assert.Empty(t, f.calls)
}
