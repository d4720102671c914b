package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/appkey-demo/appkey-go/internal/authenticator"
	"github.com/appkey-demo/appkey-go/internal/session"
	"github.com/google/uuid"
)

// StartSignup requests a registration challenge for a new account and
// returns the ceremony to complete. Only valid while logged out.
func (o *Orchestrator) StartSignup(ctx context.Context, handle, displayName string) (*Ceremony, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if s := o.sess.State(); s != session.StateLoggedOut {
		return nil, fmt.Errorf("%w: cannot sign up from %s", session.ErrInvalidTransition, s)
	}

	handleType := ""
	if app := o.sess.App(); app != nil {
		handleType = app.HandleType
	}

	if err := validateHandle(handleType, handle); err != nil {
		return nil, err
	}

	if err := validateDisplayName(displayName); err != nil {
		return nil, err
	}

	ch, err := o.backend.Signup(ctx, handle, displayName, o.locale)
	if err != nil {
		return nil, fmt.Errorf("starting signup: %w", err)
	}

	return o.newCeremony(&Ceremony{
		kind:     KindSignup,
		handle:   handle,
		creation: o.creationRequest(ch),
	}), nil
}

// CompleteSignup runs the registration ceremony and submits the
// attestation. On success the session awaits the one-time code sent to
// the handle. A superseded ceremony is dropped without effect, and a
// cancelled ceremony aborts quietly.
func (o *Orchestrator) CompleteSignup(ctx context.Context, c *Ceremony) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	if !o.takePending(c) {
		return nil
	}

	att, err := o.auth.CreateCredential(ctx, *c.creation)
	if err != nil {
		if errors.Is(err, authenticator.ErrCancelled) {
			o.logger.Debug("signup ceremony cancelled")
			return nil
		}

		return fmt.Errorf("signup ceremony: %w", err)
	}

	data, err := o.backend.SignupConfirm(ctx, c.handle, att)
	if err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("confirming signup: %w", err)
	}

	o.signupToken = data.SignupToken

	if err := o.sess.AwaitCode(); err != nil {
		return err
	}

	o.logger.Info("signup confirmed, code pending", "handle", c.handle)

	return nil
}

// ConfirmSignupCode exchanges the one-time code for the new account
// and logs it in.
func (o *Orchestrator) ConfirmSignupCode(ctx context.Context, code string) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	if err := validateSignupCode(code); err != nil {
		return err
	}

	if o.signupToken == "" || o.sess.State() != session.StateSignupPendingCode {
		return ErrNoPendingSignup
	}

	user, err := o.backend.SignupComplete(ctx, o.signupToken, code)
	if err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("completing signup: %w", err)
	}

	o.signupToken = ""

	if err := o.finishLogin(user); err != nil {
		return err
	}

	o.logger.Info("signup complete", "appUserId", user.AppUserID)

	return nil
}

// StartLoginAnonymous requests a registration challenge for an
// ephemeral ANON_<uuid> account. Only valid while logged out and when
// the tenant enables anonymous login.
func (o *Orchestrator) StartLoginAnonymous(ctx context.Context) (*Ceremony, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if s := o.sess.State(); s != session.StateLoggedOut {
		return nil, fmt.Errorf("%w: cannot log in from %s", session.ErrInvalidTransition, s)
	}

	if app := o.sess.App(); app != nil && !app.AnonymousLoginEnabled {
		return nil, errors.New("anonymous login is not enabled for this app")
	}

	handle := "ANON_" + uuid.NewString()

	ch, err := o.backend.LoginAnonymous(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("starting anonymous login: %w", err)
	}

	if ch.User.Handle != "" {
		handle = ch.User.Handle
	}

	return o.newCeremony(&Ceremony{
		kind:     KindLoginAnonymous,
		handle:   handle,
		creation: o.creationRequest(ch),
	}), nil
}

// CompleteLoginAnonymous runs the registration ceremony for an
// anonymous account and logs it in.
func (o *Orchestrator) CompleteLoginAnonymous(ctx context.Context, c *Ceremony) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	if !o.takePending(c) {
		return nil
	}

	att, err := o.auth.CreateCredential(ctx, *c.creation)
	if err != nil {
		if errors.Is(err, authenticator.ErrCancelled) {
			o.logger.Debug("anonymous login ceremony cancelled")
			return nil
		}

		return fmt.Errorf("anonymous login ceremony: %w", err)
	}

	user, err := o.backend.LoginAnonymousComplete(ctx, c.handle, att)
	if err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("completing anonymous login: %w", err)
	}

	if err := o.finishLogin(user); err != nil {
		return err
	}

	o.logger.Info("anonymous login complete", "appUserId", user.AppUserID)

	return nil
}
