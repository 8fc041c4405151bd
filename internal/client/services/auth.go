// Package services holds the CLI's use cases. Forms are checked with the
// validation pipeline before anything is sent to the server, and the
// session token lives in the secure store between runs.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/client/client"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	"github.com/dmitrijs2005/fitkeeper/internal/validation"
)

// TokenKey is the secure store key holding the session token.
const TokenKey = "auth_token"

const (
	minUsernameLength = 3
	maxUsernameLength = 50

	msgPasswordMismatch = "Passwords do not match"
)

// ErrInvalidForm is returned together with a FormResult listing the failures.
var ErrInvalidForm = errors.New("form is invalid")

type SecureStore interface {
	Set(ctx context.Context, key, value string) bool
	Get(ctx context.Context, key string) *string
	Delete(ctx context.Context, key string) bool
}

type RegisterForm struct {
	Username        string
	Password        string
	ConfirmPassword string
	// Role is optional; the server assigns the default role when empty.
	Role string
}

type LoginForm struct {
	Username string
	Password string
}

type AuthService struct {
	client client.Client
	store  SecureStore
	logger logging.Logger
	now    func() time.Time
}

func NewAuthService(c client.Client, store SecureStore, logger logging.Logger) *AuthService {
	return &AuthService{client: c, store: store, logger: logger, now: time.Now}
}

func (f RegisterForm) fields() []validation.Field {
	return []validation.Field{
		{Key: "username", Label: "Username", Value: f.Username, Required: true, MinLength: minUsernameLength, MaxLength: maxUsernameLength},
		{Key: "password", Label: "Password", Value: f.Password, Required: true, Type: validation.TypePassword},
		{Key: "confirmPassword", Label: "Confirm password", Value: f.ConfirmPassword, Required: true},
	}
}

func (f LoginForm) fields() []validation.Field {
	return []validation.Field{
		{Key: "username", Label: "Username", Value: f.Username, Required: true},
		{Key: "password", Label: "Password", Value: f.Password, Required: true},
	}
}

func (a *AuthService) validateRegister(form RegisterForm) validation.FormResult {
	res := validation.ValidateForm(form.fields(), a.now())
	if _, failed := res.Errors["confirmPassword"]; !failed && form.Password != form.ConfirmPassword {
		res.Errors["confirmPassword"] = msgPasswordMismatch
		res.IsValid = false
	}
	return res
}

// Register validates form and creates the account. When the form fails
// validation the server is not contacted and ErrInvalidForm is returned.
func (a *AuthService) Register(ctx context.Context, form RegisterForm) (validation.FormResult, error) {
	res := a.validateRegister(form)
	if !res.IsValid {
		return res, ErrInvalidForm
	}

	if err := a.client.Register(ctx, form.Username, form.Password, form.Role); err != nil {
		return res, err
	}
	return res, nil
}

// Login validates form, authenticates and persists the token. A token that
// cannot be persisted is still used for the current session.
func (a *AuthService) Login(ctx context.Context, form LoginForm) (validation.FormResult, error) {
	res := validation.ValidateForm(form.fields(), a.now())
	if !res.IsValid {
		return res, ErrInvalidForm
	}

	token, err := a.client.Login(ctx, form.Username, form.Password)
	if err != nil {
		return res, err
	}

	if !a.store.Set(ctx, TokenKey, token) {
		a.logger.Warn(ctx, "token not persisted, session will not survive restart")
	}
	return res, nil
}

// Restore loads a persisted token into the client. It reports whether one
// was found.
func (a *AuthService) Restore(ctx context.Context) bool {
	token := a.store.Get(ctx, TokenKey)
	if token == nil || *token == "" {
		return false
	}
	a.client.SetToken(*token)
	return true
}

func (a *AuthService) Logout(ctx context.Context) bool {
	a.client.SetToken("")
	return a.store.Delete(ctx, TokenKey)
}

func (a *AuthService) Token(ctx context.Context) *string {
	return a.store.Get(ctx, TokenKey)
}

func (a *AuthService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
