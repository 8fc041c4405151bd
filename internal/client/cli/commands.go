package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/fitkeeper/internal/client/client"
	"github.com/dmitrijs2005/fitkeeper/internal/client/services"
	"github.com/dmitrijs2005/fitkeeper/internal/validation"
)

// Prompt seams, replaced in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) printForm(res validation.FormResult) {
	keys := make([]string, 0, len(res.Errors))
	for k := range res.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "  %s: %s\n", k, res.Errors[k])
	}
}

func (a *App) Register(ctx context.Context) error {
	var form services.RegisterForm
	var err error

	if form.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	res, err := a.auth.Register(ctx, form)
	if errors.Is(err, services.ErrInvalidForm) {
		fmt.Fprintln(a.out, "Please fix the following:")
		a.printForm(res)
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", describe(err))
		return err
	}

	fmt.Fprintln(a.out, "User registered successfully")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	var form services.LoginForm
	var err error

	if form.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	res, err := a.auth.Login(ctx, form)
	if errors.Is(err, services.ErrInvalidForm) {
		fmt.Fprintln(a.out, "Please fix the following:")
		a.printForm(res)
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", describe(err))
		return err
	}

	a.loggedIn = true
	a.userName = strings.TrimSpace(form.Username)
	fmt.Fprintln(a.out, "Logged in")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.auth.Logout(ctx) {
		fmt.Fprintln(a.out, "Could not clear the saved session")
	}
	a.loggedIn = false
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Status(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.auth.Ping(ctx); err != nil {
		fmt.Fprintln(a.out, "Server: offline")
	} else {
		fmt.Fprintln(a.out, "Server: online")
	}

	if !a.loggedIn {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	p, err := a.profile.Profile(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		a.loggedIn = false
		fmt.Fprintln(a.out, "Session expired, please log in again")
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Profile unavailable:", describe(err))
		return err
	}

	a.userName = p.Username
	fmt.Fprintf(a.out, "User: %s (%s)\n", p.Username, p.Role)
	if p.DisplayName != "" {
		fmt.Fprintf(a.out, "Name: %s\n", p.DisplayName)
	}
	if p.Bmi != nil && p.BmiCategory != nil {
		fmt.Fprintf(a.out, "BMI: %.1f (%s)\n", p.GetBmi(), p.GetBmiCategory())
	}
	if p.PhotoKey != "" {
		fmt.Fprintf(a.out, "Photo: %s\n", p.PhotoKey)
	}
	return nil
}

func (a *App) Photo(ctx context.Context, path string) error {
	if !a.loggedIn {
		fmt.Fprintln(a.out, "Please log in first")
		return client.ErrUnauthorized
	}
	if path == "" {
		fmt.Fprintln(a.out, "Usage: photo <path>")
		return errors.New("photo path required")
	}

	data, err := a.readFile(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read file:", err)
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	key, err := a.profile.UploadPhoto(ctx, data)
	if err != nil {
		a.logger.Warn(ctx, "photo upload failed", "error", err)
		fmt.Fprintln(a.out, "Upload failed:", describe(err))
		return err
	}

	fmt.Fprintln(a.out, "Photo uploaded:", key)
	return nil
}
