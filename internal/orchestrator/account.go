package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/appkey-demo/appkey-go/internal/apierror"
	"github.com/appkey-demo/appkey-go/internal/session"
	"github.com/appkey-demo/appkey-go/internal/social"
	"golang.org/x/text/language"
)

// UserNameAvailable reports whether userName is free to claim.
// Read-only and idempotent.
func (o *Orchestrator) UserNameAvailable(ctx context.Context, userName string) (bool, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return false, err
	}
	defer done()

	token := o.sess.Token()
	if token == "" {
		return false, ErrNotLoggedIn
	}

	available, err := o.backend.UserNameAvailable(ctx, token, userName)
	if err != nil {
		return false, fmt.Errorf("checking username: %w", err)
	}

	return available, nil
}

// SetUsername claims a username. From the username-pending state this
// completes the login; from logged-in it just updates the account.
func (o *Orchestrator) SetUsername(ctx context.Context, userName string) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	state := o.sess.State()
	if state != session.StateUsernamePending && state != session.StateLoggedIn {
		return ErrNotLoggedIn
	}

	if err := o.backend.SetUserName(ctx, o.sess.Token(), userName); err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("setting username: %w", err)
	}

	if state == session.StateUsernamePending {
		if err := o.sess.ClaimUsername(userName); err != nil {
			return err
		}

		if err := o.store.SetUser(o.sess.User()); err != nil {
			return fmt.Errorf("persisting user: %w", err)
		}
	} else {
		user := o.sess.User()
		user.UserName = userName

		if err := o.applyUser(user); err != nil {
			return err
		}
	}

	o.logger.Info("username set", "userName", userName)

	return nil
}

// SetLocale updates the account locale. The tag must parse as a BCP 47
// language tag and, when the tenant restricts locales, be one of the
// allowed set.
func (o *Orchestrator) SetLocale(ctx context.Context, locale string) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	if o.sess.State() != session.StateLoggedIn {
		return ErrNotLoggedIn
	}

	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("%w: %q", apierror.ErrInvalidLocale, locale)
	}

	if app := o.sess.App(); app != nil && len(app.Locales) > 0 && !containsFold(app.Locales, locale) {
		return fmt.Errorf("%w: %q not offered by this app", apierror.ErrInvalidLocale, locale)
	}

	if err := o.backend.SetLocale(ctx, o.sess.Token(), locale); err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("setting locale: %w", err)
	}

	user := o.sess.User()
	user.Locale = locale

	return o.applyUser(user)
}

// UpdateProfile updates the account's first and last name.
func (o *Orchestrator) UpdateProfile(ctx context.Context, firstName, lastName string) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	if o.sess.State() != session.StateLoggedIn {
		return ErrNotLoggedIn
	}

	user, err := o.backend.UpdateProfile(ctx, o.sess.Token(), firstName, lastName)
	if err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("updating profile: %w", err)
	}

	return o.applyUser(user)
}

// RefreshUser refetches the account, including the passkey list, and
// updates the session snapshot.
func (o *Orchestrator) RefreshUser(ctx context.Context) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	token := o.sess.Token()
	if token == "" {
		return ErrNotLoggedIn
	}

	user, err := o.backend.GetUser(ctx, token)
	if err != nil {
		return fmt.Errorf("refreshing user: %w", err)
	}

	return o.applyUser(user)
}

// SocialLogin authenticates with a third-party identity. When no
// account is bound to the identity yet, it falls back to social signup
// with the same token. No platform ceremony is involved.
func (o *Orchestrator) SocialLogin(ctx context.Context, provider social.Provider) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	if s := o.sess.State(); s != session.StateLoggedOut {
		return fmt.Errorf("%w: cannot log in from %s", session.ErrInvalidTransition, s)
	}

	identity, err := provider.IdentityToken(ctx)
	if err != nil {
		return fmt.Errorf("getting %s identity: %w", provider.Name(), err)
	}

	user, err := o.backend.SocialLogin(ctx, identity.Token, provider.Name())
	if errors.Is(err, apierror.ErrAccountDoesNotExist) {
		o.logger.Info("no account for identity, signing up", "provider", provider.Name())

		user, err = o.backend.SocialSignup(ctx, identity.Token, identity.Email, provider.Name(), identity.DisplayName, o.locale)
	}

	if err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("social login with %s: %w", provider.Name(), err)
	}

	if err := o.finishLogin(user); err != nil {
		return err
	}

	o.logger.Info("social login complete",
		"provider", provider.Name(),
		"appUserId", user.AppUserID)

	return nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}

	return false
}
