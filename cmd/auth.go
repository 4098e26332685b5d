package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
	"github.com/desertthunder/beatly/internal/forms"
	"github.com/desertthunder/beatly/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthSignup registers a new account and stores the returned session.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	form := forms.SignupForm{
		Name:            cmd.String("name"),
		Email:           cmd.String("email"),
		Password:        cmd.String("password"),
		ConfirmPassword: cmd.String("password"),
	}
	if errs := form.Validate(); !errs.Ok() {
		return fmt.Errorf("%w: %s", shared.ErrInvalidInput, errs.First())
	}

	r.logger.Info("creating account", "email", form.Email)

	resp, err := r.client.Register(ctx, api.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, api.ErrorMessage(err))
	}

	return r.saveSession(resp)
}

// AuthLogin authenticates with email and password and stores the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	r.logger.Info("logging in", "email", email)

	resp, err := r.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, api.ErrorMessage(err))
	}

	return r.saveSession(resp)
}

// saveSession validates the returned role and persists the session atomically.
func (r *Runner) saveSession(resp *api.AuthResponse) error {
	role, err := auth.ParseRole(resp.User.Role)
	if err != nil {
		return fmt.Errorf("%w: cannot establish a session", err)
	}

	if r.store == nil {
		return fmt.Errorf("%w: session store not initialized, run 'beatly setup' first", shared.ErrNotAuthenticated)
	}

	session := auth.Session{
		UserID:      resp.User.ID,
		DisplayName: resp.User.Name,
		Role:        role,
		Token:       resp.Token,
	}
	if err := r.store.Save(session); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	r.logger.Info("session stored", "user", session.DisplayName, "role", session.Role)

	r.writePlain("✓ Logged in as %s (%s)\n", session.DisplayName, session.Role)
	r.writePlain("Home: %s\n", auth.HomeRoute(session.Role))
	return nil
}

// AuthLogout clears the stored session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if r.store == nil {
		return fmt.Errorf("%w: session store not initialized", shared.ErrNotAuthenticated)
	}

	if r.store.Current() == nil {
		return r.writePlain("No active session\n")
	}

	if err := r.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	r.logger.Info("session cleared")
	return r.writePlain("✓ Logged out\n")
}

// AuthStatus shows the stored session and the features it unlocks.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	session, err := r.session()
	if err != nil {
		return err
	}

	r.writePlain("✓ Logged in as %s (%s)\n", session.DisplayName, session.Role)
	r.writePlain("User ID: %s\n", session.UserID)
	r.writePlain("Home: %s\n", auth.HomeRoute(session.Role))

	features := []auth.Feature{auth.FeatureBrowse, auth.FeatureManage, auth.FeatureAnalytics}
	r.writePlainln("Features:")
	for _, f := range features {
		if auth.FeatureAllowed(f, session.Role) {
			r.writePlain("  ✓ %s\n", f)
		} else {
			r.writePlain("  ✗ %s\n", f)
		}
	}
	return nil
}
