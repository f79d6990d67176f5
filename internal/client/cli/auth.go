package cli

import (
	"context"
	"errors"
	"os"

	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/shared"
)

// Login prompts for credentials and authenticates through the tiered chain.
// When every remote source is down but the cached account matches, the
// session continues in offline mode.
func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer shared.WipeByteArray(password)

	user, err := a.auth.Login(ctx, identifier, string(password))
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrUnauthorized):
			printlnFn("Login unsuccessful: invalid credentials")
		case errors.Is(err, shared.ErrUnavailable):
			printlnFn("Login unsuccessful: no source reachable and no cached account")
		default:
			printlnFn("Login unsuccessful:", err.Error())
		}
		return err
	}

	if a.auth.Session().Offline() {
		printlnFn("Logged in from local cache (offline mode)")
		a.setMode(ModeOffline)
	} else {
		printlnFn("Login successful, welcome", user.Username)
		a.setMode(ModeOnline)
	}
	return nil
}

// Register prompts for the new account fields and registers through the
// backend, falling back to a cache-only account when it is unreachable.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	tags, err := GetCommaSeparated(a.reader, "Enter interest tags (comma-separated, e.g. oil, gold)", os.Stdout)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:      username,
		Email:         email,
		Password:      string(password),
		CommodityTags: tags,
	}
	if _, err := a.auth.Register(ctx, user); err != nil {
		printlnFn("Registration unsuccessful:", err.Error())
		return err
	}

	if a.auth.Session().Offline() {
		printlnFn("Registered locally; the account will exist remotely after an online registration")
		a.setMode(ModeOffline)
	} else {
		printlnFn("Registration successful, welcome", username)
	}
	return nil
}

// Logout drops the session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
