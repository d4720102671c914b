package authenticator

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/appkey-demo/appkey-go/internal/models"
	"github.com/descope/virtualwebauthn"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/protocol/webauthncose"
)

// Virtual is a software authenticator backed by virtualwebauthn. It
// stands in for the platform credential manager: credentials live in
// memory for the lifetime of the process, scoped to one relying party.
type Virtual struct {
	rp virtualwebauthn.RelyingParty

	mu    sync.Mutex
	creds []*storedCredential

	// approve, when set, is consulted before each ceremony. Returning
	// false simulates the user dismissing the prompt.
	approve func() bool
}

type storedCredential struct {
	cred   virtualwebauthn.Credential
	id     string // base64url credential ID
	userID string
}

// NewVirtual creates a virtual authenticator for the given relying
// party.
func NewVirtual(rpName, rpID, origin string) *Virtual {
	return &Virtual{
		rp: virtualwebauthn.RelyingParty{Name: rpName, ID: rpID, Origin: origin},
	}
}

// SetApprovalFunc installs a hook consulted before each ceremony.
// Returning false cancels the ceremony with ErrCancelled.
func (v *Virtual) SetApprovalFunc(f func() bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.approve = f
}

func (v *Virtual) approved() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.approve == nil || v.approve()
}

// CreateCredential mints a new EC2 credential for the challenge and
// returns its attestation. The credential is retained for later
// assertions.
func (v *Virtual) CreateCredential(ctx context.Context, req CreationRequest) (*models.Attestation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("creating credential: %w", err)
	}

	if !v.approved() {
		return nil, ErrCancelled
	}

	challenge, err := decodeBase64URL(req.Challenge)
	if err != nil {
		return nil, fmt.Errorf("creating credential: %w", err)
	}

	optionsJSON, err := json.Marshal(protocol.PublicKeyCredentialCreationOptions{
		Challenge: protocol.URLEncodedBase64(challenge),
		RelyingParty: protocol.RelyingPartyEntity{
			CredentialEntity: protocol.CredentialEntity{Name: v.rp.Name},
			ID:               req.RelyingPartyID,
		},
		User: protocol.UserEntity{
			CredentialEntity: protocol.CredentialEntity{Name: req.UserName},
			DisplayName:      req.DisplayName,
			ID:               protocol.URLEncodedBase64(req.UserID),
		},
		Parameters: []protocol.CredentialParameter{
			{Type: protocol.PublicKeyCredentialType, Algorithm: webauthncose.AlgES256},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding creation options: %w", err)
	}

	parsed, err := virtualwebauthn.ParseAttestationOptions(string(optionsJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing creation options: %w", err)
	}

	cred := virtualwebauthn.NewCredential(virtualwebauthn.KeyTypeEC2)
	auth := virtualwebauthn.NewAuthenticatorWithOptions(virtualwebauthn.AuthenticatorOptions{
		UserHandle: []byte(req.UserID),
	})

	responseJSON := virtualwebauthn.CreateAttestationResponse(v.rp, auth, cred, *parsed)

	att := &models.Attestation{}
	if err := json.Unmarshal([]byte(responseJSON), att); err != nil {
		return nil, fmt.Errorf("decoding attestation response: %w", err)
	}

	v.mu.Lock()
	v.creds = append(v.creds, &storedCredential{
		cred:   cred,
		id:     base64.RawURLEncoding.EncodeToString(cred.ID),
		userID: req.UserID,
	})
	v.mu.Unlock()

	return att, nil
}

// GetAssertion signs the challenge with a stored credential. With an
// allow list the credential IDs must match; without one the most
// recently registered credential is used.
func (v *Virtual) GetAssertion(ctx context.Context, req AssertionRequest) (*models.Assertion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("getting assertion: %w", err)
	}

	if !v.approved() {
		return nil, ErrCancelled
	}

	sc, err := v.selectCredential(req.AllowedCredentialIDs)
	if err != nil {
		return nil, err
	}

	challenge, err := decodeBase64URL(req.Challenge)
	if err != nil {
		return nil, fmt.Errorf("getting assertion: %w", err)
	}

	allowed := make([]protocol.CredentialDescriptor, 0, len(req.AllowedCredentialIDs))

	for _, id := range req.AllowedCredentialIDs {
		raw, err := decodeBase64URL(id)
		if err != nil {
			return nil, fmt.Errorf("decoding allowed credential ID: %w", err)
		}

		allowed = append(allowed, protocol.CredentialDescriptor{
			Type:         protocol.PublicKeyCredentialType,
			CredentialID: protocol.URLEncodedBase64(raw),
		})
	}

	userVerification := protocol.UserVerificationRequirement(req.UserVerification)
	if userVerification == "" {
		userVerification = protocol.VerificationPreferred
	}

	optionsJSON, err := json.Marshal(protocol.PublicKeyCredentialRequestOptions{
		Challenge:          protocol.URLEncodedBase64(challenge),
		RelyingPartyID:     req.RelyingPartyID,
		AllowedCredentials: allowed,
		UserVerification:   userVerification,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding assertion options: %w", err)
	}

	parsed, err := virtualwebauthn.ParseAssertionOptions(string(optionsJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing assertion options: %w", err)
	}

	auth := virtualwebauthn.NewAuthenticatorWithOptions(virtualwebauthn.AuthenticatorOptions{
		UserHandle: []byte(sc.userID),
	})
	auth.AddCredential(sc.cred)

	responseJSON := virtualwebauthn.CreateAssertionResponse(v.rp, auth, sc.cred, *parsed)

	assert := &models.Assertion{}
	if err := json.Unmarshal([]byte(responseJSON), assert); err != nil {
		return nil, fmt.Errorf("decoding assertion response: %w", err)
	}

	return assert, nil
}

// HasCredential reports whether a credential with the given base64url
// ID is stored.
func (v *Virtual) HasCredential(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, sc := range v.creds {
		if sc.id == id {
			return true
		}
	}

	return false
}

func (v *Virtual) selectCredential(allowedIDs []string) (*storedCredential, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.creds) == 0 {
		return nil, ErrNoCredential
	}

	if len(allowedIDs) == 0 {
		return v.creds[len(v.creds)-1], nil
	}

	for _, id := range allowedIDs {
		for _, sc := range v.creds {
			if sc.id == id {
				return sc, nil
			}
		}
	}

	return nil, ErrNoCredential
}
