// Package services contains the use cases of the parasearch client. They sit
// between the REPL screens and the API client and own the session updates
// that follow from API answers.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/parasearch/internal/client/client"
	"github.com/dmitrijs2005/parasearch/internal/client/models"
	"github.com/dmitrijs2005/parasearch/internal/client/session"
	"github.com/dmitrijs2005/parasearch/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// MinPasswordLength matches the backend's registration rule.
const MinPasswordLength = 8

const dateOfBirthLayout = "2006-01-02"

// ErrNotLoggedIn is returned when an operation needs a stored credential.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and store it in the session.
//   - Register: validate the form locally, then create the account remotely.
//     Registering does not log in.
//   - Logout: drop the stored credential.
//   - WhoAmI: decode the stored token for display. Nothing is verified.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, reg models.Registration) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*models.TokenClaims, error)
}

type authService struct {
	client client.Client
	store  session.Store
}

func NewAuthService(c client.Client, store session.Store) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.ObtainToken(ctx, models.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("obtain token: %w", err)
	}

	if err := a.store.Set(ctx, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.DateOfBirth = strings.TrimSpace(reg.DateOfBirth)

	if err := ValidateRegistration(reg); err != nil {
		return err
	}
	return a.client.Register(ctx, reg)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) WhoAmI(ctx context.Context) (*models.TokenClaims, error) {
	cred, found, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotLoggedIn
	}

	out := &models.TokenClaims{SavedAt: cred.SavedAt}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(cred.Token, claims); err != nil {
		// opaque tokens are fine, there is just nothing to show
		return out, nil
	}

	out.UserID = claimString(claims["user_id"])
	if out.UserID == "" {
		out.UserID, _ = claims.GetSubject()
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

func claimString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

// ValidateRegistration applies the form rules of the registration screen.
// Every failure wraps common.ErrorValidation.
func ValidateRegistration(reg models.Registration) error {
	switch {
	case reg.Name == "":
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	case reg.Email == "":
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	case reg.DateOfBirth == "":
		return fmt.Errorf("%w: date of birth is required", common.ErrorValidation)
	}

	addr, err := mail.ParseAddress(reg.Email)
	if err != nil || addr.Address != reg.Email {
		return fmt.Errorf("%w: %q is not a valid email address", common.ErrorValidation, reg.Email)
	}

	if _, err := time.Parse(dateOfBirthLayout, reg.DateOfBirth); err != nil {
		return fmt.Errorf("%w: date of birth must look like YYYY-MM-DD", common.ErrorValidation)
	}

	if utf8.RuneCount(reg.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, MinPasswordLength)
	}
	return nil
}
