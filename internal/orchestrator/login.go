package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/appkey-demo/appkey-go/internal/apierror"
	"github.com/appkey-demo/appkey-go/internal/authenticator"
	"github.com/appkey-demo/appkey-go/internal/session"
)

// ActionKind names the sensitive follow-up a verify ceremony gates.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDeleteAccount
	ActionAddPasskey
	ActionRenamePasskey
	ActionRemovePasskey
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionDeleteAccount:
		return "delete-account"
	case ActionAddPasskey:
		return "add-passkey"
	case ActionRenamePasskey:
		return "rename-passkey"
	case ActionRemovePasskey:
		return "remove-passkey"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is the follow-up performed when a verify ceremony succeeds.
// The key fields apply to the passkey actions only.
type Action struct {
	Kind    ActionKind
	KeyID   string
	KeyName string
}

// VerifyOutcome is the result of a completed verify ceremony. Next is
// non-nil when the follow-up is add-passkey, which needs a ceremony of
// its own.
type VerifyOutcome struct {
	Valid bool
	Next  *Ceremony
}

// ErrPasskeySignupRequired is recorded when the server knows the handle
// but holds no passkey for it. The account cannot log in; the user has
// to sign up again.
var ErrPasskeySignupRequired = errors.New("your account does not have a passkey, please sign up again")

// StartLogin requests an assertion challenge for the handle. When the
// account has no usable passkey the session moves to the reset state
// and the returned ceremony registers a replacement credential instead
// of asserting.
func (o *Orchestrator) StartLogin(ctx context.Context, handle string) (*Ceremony, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if s := o.sess.State(); s != session.StateLoggedOut {
		return nil, fmt.Errorf("%w: cannot log in from %s", session.ErrInvalidTransition, s)
	}

	ch, err := o.backend.Login(ctx, handle)
	if err != nil {
		if apierror.IsKind(err, apierror.KindPasskeyNotFound) {
			err = fmt.Errorf("%w: %w", ErrPasskeySignupRequired, err)
			o.sess.Fail(err)
			return nil, err
		}

		return nil, fmt.Errorf("starting login: %w", err)
	}

	if ch.RequireAddPasskey {
		if err := o.sess.RequirePasskeyReset(); err != nil {
			return nil, err
		}

		o.logger.Info("account has no usable passkey, starting reset", "handle", handle)

		return o.newCeremony(&Ceremony{
			kind:   KindResetPasskey,
			handle: handle,
			creation: &authenticator.CreationRequest{
				UserID:         handle,
				UserName:       handle,
				Challenge:      ch.Challenge,
				RelyingPartyID: o.rpID,
			},
		}), nil
	}

	return o.newCeremony(&Ceremony{
		kind:      KindLogin,
		handle:    handle,
		assertion: o.assertionRequest(ch),
	}), nil
}

// CompleteLogin finishes a login or reset ceremony and authenticates
// the session. Superseded results are dropped; cancellation aborts
// quietly.
func (o *Orchestrator) CompleteLogin(ctx context.Context, c *Ceremony) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	if !o.takePending(c) {
		return nil
	}

	switch c.kind {
	case KindLogin:
		return o.completeLoginAssertion(ctx, c)
	case KindResetPasskey:
		return o.completeLoginReset(ctx, c)
	default:
		return fmt.Errorf("ceremony %s cannot complete a login", c.kind)
	}
}

func (o *Orchestrator) completeLoginAssertion(ctx context.Context, c *Ceremony) error {
	assert, err := o.auth.GetAssertion(ctx, *c.assertion)
	if err != nil {
		if errors.Is(err, authenticator.ErrCancelled) {
			o.logger.Debug("login ceremony cancelled")
			return nil
		}

		return fmt.Errorf("login ceremony: %w", err)
	}

	user, err := o.backend.LoginComplete(ctx, c.handle, assert)
	if err != nil {
		if apierror.IsKind(err, apierror.KindPasskeyNotFound) {
			err = fmt.Errorf("%w: %w", ErrPasskeySignupRequired, err)
			o.sess.Fail(err)
			return err
		}

		o.sess.Fail(err)
		return fmt.Errorf("completing login: %w", err)
	}

	if err := o.finishLogin(user); err != nil {
		return err
	}

	o.logger.Info("login complete", "appUserId", user.AppUserID)

	return nil
}

func (o *Orchestrator) completeLoginReset(ctx context.Context, c *Ceremony) error {
	att, err := o.auth.CreateCredential(ctx, *c.creation)
	if err != nil {
		if errors.Is(err, authenticator.ErrCancelled) {
			o.logger.Debug("reset ceremony cancelled")
			return nil
		}

		return fmt.Errorf("reset ceremony: %w", err)
	}

	user, err := o.backend.LoginResetComplete(ctx, c.handle, att)
	if err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("completing passkey reset: %w", err)
	}

	if err := o.finishLogin(user); err != nil {
		return err
	}

	o.logger.Info("passkey reset complete", "appUserId", user.AppUserID)

	return nil
}

// StartVerify requests a re-authentication challenge ahead of a
// sensitive action. The follow-up is decided here, before the
// ceremony, and performed only if the server rules the assertion
// valid.
func (o *Orchestrator) StartVerify(ctx context.Context, action Action) (*Ceremony, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	user := o.sess.User()
	if o.sess.State() != session.StateLoggedIn || user == nil {
		return nil, ErrNotLoggedIn
	}

	ch, err := o.backend.Verify(ctx, user.Handle)
	if err != nil {
		return nil, fmt.Errorf("starting verify: %w", err)
	}

	o.logger.Debug("verify started", "action", action.Kind.String())

	return o.newCeremony(&Ceremony{
		kind:      KindVerify,
		handle:    user.Handle,
		assertion: o.assertionRequest(ch),
		action:    action,
	}), nil
}

// CompleteVerify finishes a verify ceremony. When the server rules it
// valid, the follow-up action runs; for add-passkey the outcome
// carries the registration ceremony to complete next. An invalid
// verdict skips the follow-up without error.
func (o *Orchestrator) CompleteVerify(ctx context.Context, c *Ceremony) (*VerifyOutcome, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if !o.takePending(c) {
		return nil, nil
	}

	if c.kind != KindVerify {
		return nil, fmt.Errorf("ceremony %s cannot complete a verify", c.kind)
	}

	assert, err := o.auth.GetAssertion(ctx, *c.assertion)
	if err != nil {
		if errors.Is(err, authenticator.ErrCancelled) {
			o.logger.Debug("verify ceremony cancelled")
			return nil, nil
		}

		return nil, fmt.Errorf("verify ceremony: %w", err)
	}

	valid, err := o.backend.VerifyComplete(ctx, c.handle, assert)
	if err != nil {
		o.sess.Fail(err)
		return nil, fmt.Errorf("completing verify: %w", err)
	}

	if !valid {
		o.logger.Info("verify rejected", "action", c.action.Kind.String())
		return &VerifyOutcome{Valid: false}, nil
	}

	next, err := o.performVerifiedAction(ctx, c.action)
	if err != nil {
		return nil, err
	}

	return &VerifyOutcome{Valid: true, Next: next}, nil
}

// VerifySocial is the verify ceremony for social-bound accounts, which
// have no passkey to assert with: a fresh provider identity token
// stands in for the assertion. The follow-up action behaves exactly as
// in CompleteVerify.
func (o *Orchestrator) VerifySocial(ctx context.Context, idToken string, action Action) (*VerifyOutcome, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	user := o.sess.User()
	if o.sess.State() != session.StateLoggedIn || user == nil {
		return nil, ErrNotLoggedIn
	}

	valid, err := o.backend.VerifySocialAccount(ctx, idToken, user.LoginProvider)
	if err != nil {
		o.sess.Fail(err)
		return nil, fmt.Errorf("verifying social account: %w", err)
	}

	if !valid {
		o.logger.Info("social verify rejected", "action", action.Kind.String())
		return &VerifyOutcome{Valid: false}, nil
	}

	next, err := o.performVerifiedAction(ctx, action)
	if err != nil {
		return nil, err
	}

	return &VerifyOutcome{Valid: true, Next: next}, nil
}

// performVerifiedAction runs the follow-up of a valid verify. Called
// with the busy flag held.
func (o *Orchestrator) performVerifiedAction(ctx context.Context, action Action) (*Ceremony, error) {
	switch action.Kind {
	case ActionNone:
		return nil, nil

	case ActionDeleteAccount:
		if err := o.backend.DeleteAccount(ctx, o.sess.Token()); err != nil {
			o.sess.Fail(err)
			return nil, fmt.Errorf("deleting account: %w", err)
		}

		o.logger.Info("account deleted")
		o.sess.Logout()

		if err := o.store.Clear(); err != nil {
			return nil, fmt.Errorf("clearing persisted session: %w", err)
		}

		return nil, nil

	case ActionAddPasskey:
		return o.startAddPasskey(ctx)

	case ActionRenamePasskey:
		user, err := o.backend.UpdatePasskey(ctx, o.sess.Token(), action.KeyID, action.KeyName)
		if err != nil {
			o.sess.Fail(err)
			return nil, fmt.Errorf("renaming passkey: %w", err)
		}

		return nil, o.applyUser(user)

	case ActionRemovePasskey:
		user, err := o.backend.RemovePasskey(ctx, o.sess.Token(), action.KeyID)
		if err != nil {
			o.sess.Fail(err)
			return nil, fmt.Errorf("removing passkey: %w", err)
		}

		return nil, o.applyUser(user)

	default:
		return nil, fmt.Errorf("unknown verified action %s", action.Kind)
	}
}
