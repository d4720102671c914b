// Package authenticator abstracts the platform credential manager that
// mints WebAuthn attestations and assertions for ceremony challenges.
package authenticator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/appkey-demo/appkey-go/internal/models"
)

// ErrCancelled is returned when the user dismisses the credential
// prompt. Callers treat it as a quiet abort, not a failure.
var ErrCancelled = errors.New("ceremony cancelled")

// ErrNoCredential is returned when no stored credential satisfies an
// assertion request's allow list.
var ErrNoCredential = errors.New("no matching credential")

// CreationRequest describes a registration ceremony: who to register
// and the server's one-time challenge.
type CreationRequest struct {
	UserID         string
	UserName       string
	DisplayName    string
	Challenge      string // base64url
	RelyingPartyID string
}

// AssertionRequest describes an authentication ceremony. An empty
// allow list permits any credential registered for the relying party.
type AssertionRequest struct {
	Challenge            string // base64url
	RelyingPartyID       string
	AllowedCredentialIDs []string // base64url
	UserVerification     string
}

// Authenticator mints credentials and assertions for ceremony
// challenges. Implementations must honor ctx cancellation and return
// ErrCancelled when the user declines.
type Authenticator interface {
	CreateCredential(ctx context.Context, req CreationRequest) (*models.Attestation, error)
	GetAssertion(ctx context.Context, req AssertionRequest) (*models.Assertion, error)
}

// decodeBase64URL accepts both padded and unpadded base64url, since the
// backend is not consistent about padding.
func decodeBase64URL(s string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return b, nil
	}

	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding base64url value: %w", err)
	}

	return b, nil
}
