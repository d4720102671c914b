// Package models defines the wire types shared across internal packages.
package models

import "time"

// Login providers an account can be bound to.
const (
	ProviderHandle = "handle"
	ProviderApple  = "apple"
	ProviderGoogle = "google"
)

// Handle types a tenant can require for account handles.
const (
	HandleTypeEmail = "email"
	HandleTypePhone = "phone"
)

// User is the minimal identity embedded in a ceremony challenge.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
}

// Application is the tenant configuration, fetched once per app token.
// Its feature flags decide which optional flows the client offers.
type Application struct {
	AppID                 string   `json:"appId"`
	DisplayAppID          string   `json:"displayAppId"`
	Name                  string   `json:"name"`
	Status                string   `json:"status"`
	HandleType            string   `json:"handleType"` // "email" or "phone"
	EmailExtension        bool     `json:"emailExtension"`
	AppToken              string   `json:"appToken"`
	Signup                string   `json:"signup"`
	AnonymousLoginEnabled bool     `json:"anonymousLoginEnabled"`
	UserNamesEnabled      bool     `json:"userNamesEnabled"`
	AppleLoginEnabled     bool     `json:"appleLoginEnabled"`
	GoogleLoginEnabled    bool     `json:"googleLoginEnabled"`
	UserJWTExpiration     int      `json:"userJWTExpiration"`
	Locales               []string `json:"locales"`
}

// AppUser is the authenticated account. AccessToken is populated from the
// companion field of login/signup responses, not the JSON struct itself.
type AppUser struct {
	AppUserID      string    `json:"appUserId"`
	DisplayName    string    `json:"displayName"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Handle         string    `json:"handle"`
	Status         string    `json:"status"`
	AppID          string    `json:"appId"`
	UserName       string    `json:"userName"`
	Locale         string    `json:"locale"`
	LoginProvider  string    `json:"loginProvider"`
	LastLogin      string    `json:"lastLogin"`
	AccessToken    string    `json:"-"`
	Authenticators []Passkey `json:"authenticators"`
}

// Passkey describes one registered credential on the account.
type Passkey struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PublicKey  string    `json:"publicKey"`
	Counter    int       `json:"counter"`
	DeviceType string    `json:"deviceType"`
	Platform   string    `json:"platform"`
	LastUsed   time.Time `json:"lastUsed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SignupChallenge starts a registration ceremony: a base64url challenge
// plus the server-assigned user identity to register under.
type SignupChallenge struct {
	Challenge string `json:"challenge"`
	User      User   `json:"user"`
}

// CredentialDescriptor references an existing credential in a login
// challenge's allow list.
type CredentialDescriptor struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// LoginChallenge starts an assertion ceremony. RequireAddPasskey signals
// the reset flow: the account has no usable passkey and must register a
// new one instead of asserting.
type LoginChallenge struct {
	RPID              string                 `json:"rpId"`
	Challenge         string                 `json:"challenge"`
	AllowCredentials  []CredentialDescriptor `json:"allowCredentials"`
	Timeout           int                    `json:"timeout"`
	UserVerification  string                 `json:"userVerification"`
	RequireAddPasskey bool                   `json:"requireAddPasskey"`
}

// AttestationResponse carries the raw platform blobs of a registration
// ceremony, base64url-encoded.
type AttestationResponse struct {
	AttestationObject string `json:"attestationObject"`
	ClientDataJSON    string `json:"clientDataJSON"`
}

// Attestation is the credential manager's result for a registration
// ceremony. Consumed exactly once by the matching server round-trip.
type Attestation struct {
	ID       string              `json:"id"`
	RawID    string              `json:"rawId,omitempty"`
	Type     string              `json:"type,omitempty"`
	Response AttestationResponse `json:"response"`
}

// AssertionResponse carries the raw platform blobs of an authentication
// ceremony, base64url-encoded.
type AssertionResponse struct {
	AuthenticatorData string `json:"authenticatorData"`
	ClientDataJSON    string `json:"clientDataJSON"`
	Signature         string `json:"signature"`
	UserHandle        string `json:"userHandle"`
}

// Assertion is the credential manager's result for an authentication
// ceremony.
type Assertion struct {
	ID       string            `json:"id"`
	RawID    string            `json:"rawId,omitempty"`
	Type     string            `json:"type,omitempty"`
	Response AssertionResponse `json:"response"`
}

// SignupData is the signupConfirm result. SignupToken is populated from
// the response's companion field and authorizes the one-time-code step.
type SignupData struct {
	Handle      string `json:"handle"`
	Message     string `json:"message"`
	SignupToken string `json:"-"`
}
