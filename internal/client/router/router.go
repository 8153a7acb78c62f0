// Package router tracks which screen the client shows and guards the
// protected ones.
//
// The guard only checks that a credential is present in the session store.
// It authenticates nothing: the backend rejects bad tokens with 401, and the
// API client then clears the session and sends the user back to PathLogin.
package router

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/parasearch/internal/client/session"
)

const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
)

type route struct {
	protected bool
	// redirect, when set, sends the navigation elsewhere before guarding.
	redirect string
}

var routes = map[string]route{
	PathRoot:      {redirect: PathDashboard},
	PathLogin:     {},
	PathRegister:  {},
	PathDashboard: {protected: true},
}

// Result describes where a navigation ended up.
type Result struct {
	// Requested is the normalised path that was asked for.
	Requested string
	// Path is the screen now shown.
	Path string
	// Redirected is true when the guard sent the user to login.
	Redirected bool
}

// Guard decides whether a protected screen may be shown.
type Guard struct {
	store session.Store
}

func NewGuard(store session.Store) *Guard {
	return &Guard{store: store}
}

// Allow reports whether a credential is present.
func (g *Guard) Allow(ctx context.Context) (bool, error) {
	_, found, err := g.store.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("guard: %w", err)
	}
	return found, nil
}

// Router is the client's navigation state. It is safe for concurrent use.
type Router struct {
	guard *Guard

	mu      sync.RWMutex
	current string
}

func New(guard *Guard) *Router {
	return &Router{guard: guard}
}

// Current returns the screen being shown, or "" before the first navigation.
func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Navigate resolves path, applies the guard and makes the result current.
// Unknown paths are treated as PathRoot. On a store error the current screen
// is left unchanged.
func (r *Router) Navigate(ctx context.Context, path string) (Result, error) {
	res := Result{Requested: Normalize(path)}

	target := res.Requested
	rt, ok := routes[target]
	if !ok {
		target, rt = PathRoot, routes[PathRoot]
	}
	if rt.redirect != "" {
		target, rt = rt.redirect, routes[rt.redirect]
	}

	if rt.protected {
		allowed, err := r.guard.Allow(ctx)
		if err != nil {
			return Result{}, err
		}
		if !allowed {
			target = PathLogin
			res.Redirected = true
		}
	}

	res.Path = target

	r.mu.Lock()
	r.current = target
	r.mu.Unlock()

	return res, nil
}

// Normalize trims whitespace, adds a leading slash and drops trailing ones.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	p = "/" + strings.Trim(p, "/")
	return strings.ToLower(p)
}
