package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/appkey-demo/appkey-go/internal/authenticator"
	"github.com/appkey-demo/appkey-go/internal/models"
)

// Passkeys returns the registered credentials of the current account.
func (o *Orchestrator) Passkeys() []models.Passkey {
	user := o.sess.User()
	if user == nil {
		return nil
	}

	return user.Authenticators
}

// startAddPasskey requests a registration challenge for an additional
// credential. Reached through a valid verify ceremony; called with the
// busy flag held.
func (o *Orchestrator) startAddPasskey(ctx context.Context) (*Ceremony, error) {
	user := o.sess.User()
	if user == nil {
		return nil, ErrNotLoggedIn
	}

	ch, err := o.backend.AddPasskey(ctx, o.sess.Token())
	if err != nil {
		o.sess.Fail(err)
		return nil, fmt.Errorf("starting add-passkey: %w", err)
	}

	return o.newCeremony(&Ceremony{
		kind:     KindAddPasskey,
		handle:   user.Handle,
		creation: o.creationRequest(ch),
	}), nil
}

// CompleteAddPasskey runs the registration ceremony for an additional
// credential and applies the updated passkey list. Superseded results
// are dropped; cancellation aborts quietly.
func (o *Orchestrator) CompleteAddPasskey(ctx context.Context, c *Ceremony) error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	if !o.takePending(c) {
		return nil
	}

	if c.kind != KindAddPasskey {
		return fmt.Errorf("ceremony %s cannot complete an add-passkey", c.kind)
	}

	att, err := o.auth.CreateCredential(ctx, *c.creation)
	if err != nil {
		if errors.Is(err, authenticator.ErrCancelled) {
			o.logger.Debug("add-passkey ceremony cancelled")
			return nil
		}

		return fmt.Errorf("add-passkey ceremony: %w", err)
	}

	user, err := o.backend.AddPasskeyComplete(ctx, o.sess.Token(), att)
	if err != nil {
		o.sess.Fail(err)
		return fmt.Errorf("completing add-passkey: %w", err)
	}

	if err := o.applyUser(user); err != nil {
		return err
	}

	o.logger.Info("passkey added", "count", len(user.Authenticators))

	return nil
}
