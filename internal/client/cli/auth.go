package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/parasearch/internal/client/client"
	"github.com/dmitrijs2005/parasearch/internal/client/models"
	"github.com/dmitrijs2005/parasearch/internal/client/router"
	"github.com/dmitrijs2005/parasearch/internal/client/services"
	"github.com/dmitrijs2005/parasearch/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for email and password and exchanges them for a token.
// On success the dashboard is shown; on failure the backend's detail text,
// or a generic message, is printed and the login screen stays.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fmt.Fprintln(a.out, "Logging in...")
	if err := a.auth.Login(ctx, email, password); err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, client.MessageOr(err, "Login failed", "detail"))
		return err
	}

	a.logger.Info(ctx, "logged in")
	return a.Goto(ctx, router.PathDashboard)
}

// Register prompts for the account form. Local validation failures are
// printed without contacting the backend. Registering does not log in: on
// success the login screen is shown.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	var err error

	if reg.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if reg.DateOfBirth, err = getSimpleText(a.reader, "Enter date of birth (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if reg.Password, err = getPassword(a.reader, a.out); err != nil {
		return err
	}
	defer common.WipeByteArray(reg.Password)

	// getSimpleText already trims, so the form can be checked as typed

	if err := services.ValidateRegistration(reg); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	fmt.Fprintln(a.out, "Registering...")
	if err := a.auth.Register(ctx, reg); err != nil {
		a.logger.Warn(ctx, "registration failed", "error", err)
		if errors.Is(err, common.ErrorValidation) {
			fmt.Fprintln(a.out, err)
		} else {
			fmt.Fprintln(a.out, client.MessageOr(err, "Registration failed", "detail"))
		}
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! Please login.")
	return a.Goto(ctx, router.PathLogin)
}

// Logout drops the stored credential and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	a.results, a.lastTerm = nil, ""

	fmt.Fprintln(a.out, "Logged out.")
	return a.Goto(ctx, router.PathLogin)
}

// WhoAmI prints what the stored token says about its owner. Nothing shown
// here has been verified.
func (a *App) WhoAmI(ctx context.Context) error {
	claims, err := a.auth.WhoAmI(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNotLoggedIn) {
			fmt.Fprintln(a.out, "Not logged in.")
		} else {
			fmt.Fprintln(a.out, "Cannot read session:", err)
		}
		return err
	}

	user := claims.UserID
	if user == "" {
		user = "(unknown)"
	}
	fmt.Fprintln(a.out, "User:", user)
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintln(a.out, "Token expires:", claims.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	}
	if !claims.SavedAt.IsZero() {
		fmt.Fprintln(a.out, "Logged in at:", claims.SavedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
