// Package social abstracts third-party identity providers used for
// social login and signup.
package social

import (
	"context"
	"errors"
)

// ErrNoIdentity is returned when a provider cannot produce an identity
// token, for example when the user aborts the provider's sign-in.
var ErrNoIdentity = errors.New("no identity token available")

// Identity is a provider-issued identity used to log in or sign up.
type Identity struct {
	Token       string
	Email       string
	DisplayName string
}

// Provider yields identity tokens for one login provider. The Name
// result is sent to the backend as the provider field.
type Provider interface {
	Name() string
	IdentityToken(ctx context.Context) (Identity, error)
}

// StaticProvider serves a fixed identity, standing in for a native
// provider SDK.
type StaticProvider struct {
	ProviderName string
	Identity     Identity
}

func (p *StaticProvider) Name() string { return p.ProviderName }

// IdentityToken returns the configured identity, or ErrNoIdentity when
// no token is set.
func (p *StaticProvider) IdentityToken(ctx context.Context) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, err
	}

	if p.Identity.Token == "" {
		return Identity{}, ErrNoIdentity
	}

	return p.Identity, nil
}
