package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/parasearch/internal/client/client"
	"github.com/dmitrijs2005/parasearch/internal/client/config"
	"github.com/dmitrijs2005/parasearch/internal/client/models"
	"github.com/dmitrijs2005/parasearch/internal/client/router"
	"github.com/dmitrijs2005/parasearch/internal/client/services"
	"github.com/dmitrijs2005/parasearch/internal/client/session"
	"github.com/dmitrijs2005/parasearch/internal/filex"
	"github.com/dmitrijs2005/parasearch/internal/logging"
)

type App struct {
	router     *router.Router
	auth       services.AuthService
	paragraphs services.ParagraphService
	logger     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	lastTerm string
	results  []models.Paragraph

	db *sql.DB
}

// NewApp opens the session store and builds the services around it.
// With cfg.Ephemeral the session lives in memory and nothing is written
// to disk.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	var (
		store session.Store
		db    *sql.DB
	)
	if cfg.Ephemeral {
		store = session.NewMemoryStore()
	} else {
		path, err := filex.EnsureParentDir(cfg.SessionDBPath)
		if err != nil {
			return nil, err
		}
		db, err = session.OpenDatabase(ctx, path)
		if err != nil {
			return nil, err
		}
		store = session.NewSQLiteStore(db)
		logger.Info(ctx, "session database opened", "path", path)
	}

	a := &App{
		router: router.New(router.NewGuard(store)),
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		db:     db,
	}

	apiClient, err := client.NewHTTPClient(client.Options{
		BaseURL:        cfg.APIBaseURL,
		Store:          store,
		OnUnauthorized: a.onUnauthorized,
		Timeout:        cfg.RequestTimeout,
		Logger:         logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Info(ctx, "api client configured", "base_url", apiClient.BaseURL())

	a.auth = services.NewAuthService(apiClient, store)
	a.paragraphs = services.NewParagraphService(apiClient)
	return a, nil
}

// Run shows the start screen and blocks in the REPL until the user exits,
// stdin ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to parasearch (type 'help' for commands)")
	_ = a.Goto(ctx, router.PathRoot)
	runREPL(ctx, a, a.router.Current, a.reader)
}

// Close releases the session database, if one was opened.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
}

func (a *App) Current() string {
	return a.router.Current()
}

// Goto navigates to path and shows the resulting screen.
func (a *App) Goto(ctx context.Context, path string) error {
	res, err := a.router.Navigate(ctx, path)
	if err != nil {
		a.logger.Error(ctx, "navigation failed", "path", path, "error", err)
		fmt.Fprintln(a.out, "Navigation failed:", err)
		return err
	}
	if res.Redirected {
		a.logger.Debug(ctx, "guard redirect", "requested", res.Requested, "path", res.Path)
		fmt.Fprintln(a.out, "Please log in first.")
	}
	a.render(res.Path)
	return nil
}

// onUnauthorized runs inside the API client after a 401 has cleared the
// session. It only moves the user; the failing command reports the error.
func (a *App) onUnauthorized(ctx context.Context) {
	a.results, a.lastTerm = nil, ""
	if a.router.Current() == router.PathLogin {
		return
	}
	if _, err := a.router.Navigate(ctx, router.PathLogin); err != nil {
		a.logger.Error(ctx, "redirect to login failed", "error", err)
		return
	}
	fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
	a.render(router.PathLogin)
}

func (a *App) render(path string) {
	switch path {
	case router.PathLogin:
		fmt.Fprintln(a.out, "== Login ==")
		fmt.Fprintln(a.out, "Type 'login' to sign in, or 'register' to create an account.")
	case router.PathRegister:
		fmt.Fprintln(a.out, "== Register ==")
		fmt.Fprintln(a.out, "Type 'register' to fill in the form, or 'login' if you already have an account.")
	case router.PathDashboard:
		fmt.Fprintln(a.out, "== Dashboard ==")
		fmt.Fprintln(a.out, "Commands: submit, search <word>, results, whoami, logout")
	}
}
