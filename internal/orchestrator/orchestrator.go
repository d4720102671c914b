// Package orchestrator drives the authentication flows: it sequences
// backend round-trips and credential ceremonies, applies results to the
// session state machine, and persists session remnants. Each ceremony
// carries a correlation token; results from superseded ceremonies are
// ignored without touching state.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/appkey-demo/appkey-go/internal/authenticator"
	"github.com/appkey-demo/appkey-go/internal/models"
	"github.com/appkey-demo/appkey-go/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNoPendingSignup is returned by ConfirmSignupCode when no signup
// awaits its one-time code.
var ErrNoPendingSignup = errors.New("no signup awaiting code")

// ErrNotLoggedIn is returned by operations that require an
// authenticated session.
var ErrNotLoggedIn = errors.New("not logged in")

// Backend is the slice of the AppKey REST client the orchestrator
// drives. Implemented by *api.Client.
type Backend interface {
	GetApp(ctx context.Context) (*models.Application, error)
	GetUser(ctx context.Context, accessToken string) (*models.AppUser, error)
	Signup(ctx context.Context, handle, displayName, locale string) (*models.SignupChallenge, error)
	SignupConfirm(ctx context.Context, handle string, att *models.Attestation) (*models.SignupData, error)
	SignupComplete(ctx context.Context, signupToken, code string) (*models.AppUser, error)
	Login(ctx context.Context, handle string) (*models.LoginChallenge, error)
	LoginComplete(ctx context.Context, handle string, assert *models.Assertion) (*models.AppUser, error)
	LoginResetComplete(ctx context.Context, handle string, att *models.Attestation) (*models.AppUser, error)
	LoginAnonymous(ctx context.Context, handle string) (*models.SignupChallenge, error)
	LoginAnonymousComplete(ctx context.Context, handle string, att *models.Attestation) (*models.AppUser, error)
	Verify(ctx context.Context, handle string) (*models.LoginChallenge, error)
	VerifyComplete(ctx context.Context, handle string, assert *models.Assertion) (bool, error)
	UserNameAvailable(ctx context.Context, accessToken, userName string) (bool, error)
	SetUserName(ctx context.Context, accessToken, userName string) error
	SetLocale(ctx context.Context, accessToken, locale string) error
	UpdateProfile(ctx context.Context, accessToken, firstName, lastName string) (*models.AppUser, error)
	SocialLogin(ctx context.Context, idToken, provider string) (*models.AppUser, error)
	SocialSignup(ctx context.Context, idToken, email, provider, displayName, locale string) (*models.AppUser, error)
	VerifySocialAccount(ctx context.Context, idToken, provider string) (bool, error)
	AddPasskey(ctx context.Context, accessToken string) (*models.SignupChallenge, error)
	AddPasskeyComplete(ctx context.Context, accessToken string, att *models.Attestation) (*models.AppUser, error)
	UpdatePasskey(ctx context.Context, accessToken, keyID, name string) (*models.AppUser, error)
	RemovePasskey(ctx context.Context, accessToken, keyID string) (*models.AppUser, error)
	DeleteAccount(ctx context.Context, accessToken string) error
}

// Store persists session remnants between runs. Implemented by
// *state.Store.
type Store interface {
	Token() string
	SetToken(token string) error
	User() (*models.AppUser, error)
	SetUser(u *models.AppUser) error
	Clear() error
}

// Kind identifies what a ceremony proves.
type Kind int

const (
	KindSignup Kind = iota
	KindLogin
	KindLoginAnonymous
	KindResetPasskey
	KindVerify
	KindAddPasskey
)

func (k Kind) String() string {
	switch k {
	case KindSignup:
		return "signup"
	case KindLogin:
		return "login"
	case KindLoginAnonymous:
		return "login-anonymous"
	case KindResetPasskey:
		return "reset-passkey"
	case KindVerify:
		return "verify"
	case KindAddPasskey:
		return "add-passkey"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Ceremony is a one-time credential exchange in flight. The token ties
// a Complete call back to the Start that issued it; starting another
// ceremony supersedes this one and its result is dropped.
type Ceremony struct {
	token     uuid.UUID
	kind      Kind
	handle    string
	creation  *authenticator.CreationRequest
	assertion *authenticator.AssertionRequest
	action    Action
}

// Kind reports what this ceremony proves.
func (c *Ceremony) Kind() Kind { return c.kind }

// Handle returns the account handle the ceremony is for.
func (c *Ceremony) Handle() string { return c.handle }

// Orchestrator sequences authentication flows for one session.
type Orchestrator struct {
	backend Backend
	auth    authenticator.Authenticator
	sess    *session.Session
	store   Store
	logger  *slog.Logger

	rpID   string
	locale string

	pending     *Ceremony
	signupToken string
}

// New creates an orchestrator. rpID is the relying-party ID ceremonies
// are scoped to; locale, when set, is sent with signup requests.
func New(backend Backend, auth authenticator.Authenticator, sess *session.Session, store Store, logger *slog.Logger, rpID, locale string) *Orchestrator {
	return &Orchestrator{
		backend: backend,
		auth:    auth,
		sess:    sess,
		store:   store,
		logger:  logger,
		rpID:    rpID,
		locale:  locale,
	}
}

// Session exposes the state machine for read access.
func (o *Orchestrator) Session() *session.Session { return o.sess }

// newCeremony issues a fresh correlation token and installs the
// ceremony as the only pending one. Called with the busy flag held.
func (o *Orchestrator) newCeremony(c *Ceremony) *Ceremony {
	c.token = uuid.New()
	o.pending = c

	o.logger.Debug("ceremony started",
		"kind", c.kind.String(),
		"token", shortToken(c.token.String()))

	return c
}

// takePending consumes the pending ceremony if c is it. A mismatch
// means c was superseded or never issued; its result must be dropped.
func (o *Orchestrator) takePending(c *Ceremony) bool {
	if c == nil || o.pending == nil || o.pending.token != c.token {
		o.logger.Debug("ignoring stale ceremony result",
			"kind", staleKind(c))

		return false
	}

	o.pending = nil

	return true
}

// clearPending drops the pending ceremony, used when a ceremony is
// cancelled or its flow fails terminally.
func (o *Orchestrator) clearPending() {
	o.pending = nil
}

// LoadApp fetches the tenant configuration and installs it on the
// session. Must run before any flow; feature flags gate what the
// client offers.
func (o *Orchestrator) LoadApp(ctx context.Context) (*models.Application, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	app, err := o.backend.GetApp(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading app: %w", err)
	}

	o.sess.SetApp(app)
	o.logger.Info("app loaded", "appId", app.AppID, "name", app.Name)

	return app, nil
}

// Restore resumes the previous session from the persisted access
// token, if it is still present and unexpired. Returns the restored
// user, or nil when there is nothing to restore.
func (o *Orchestrator) Restore(ctx context.Context) (*models.AppUser, error) {
	done, err := o.sess.Begin()
	if err != nil {
		return nil, err
	}
	defer done()

	token := o.store.Token()
	if token == "" {
		return nil, nil
	}

	if exp, err := TokenExpiry(token); err == nil && time.Now().After(exp) {
		o.logger.Info("cached token expired, discarding")

		if err := o.store.Clear(); err != nil {
			return nil, fmt.Errorf("clearing expired session: %w", err)
		}

		return nil, nil
	}

	user, err := o.backend.GetUser(ctx, token)
	if err != nil {
		// The token is stale or revoked. Start clean.
		o.logger.Info("cached token rejected, discarding", "error", err)

		if clearErr := o.store.Clear(); clearErr != nil {
			return nil, fmt.Errorf("clearing rejected session: %w", clearErr)
		}

		return nil, nil
	}

	if err := o.sess.Authenticate(user); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	return user, nil
}

// Logout resets the session and clears the persisted remnants. Local
// only; passkeys on the account are untouched.
func (o *Orchestrator) Logout() error {
	done, err := o.sess.Begin()
	if err != nil {
		return err
	}
	defer done()

	o.clearPending()
	o.signupToken = ""
	o.sess.Logout()

	if err := o.store.Clear(); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}

	return nil
}

// finishLogin applies a successful authentication: session transition
// plus persistence. Called with the busy flag held.
func (o *Orchestrator) finishLogin(user *models.AppUser) error {
	if err := o.sess.Authenticate(user); err != nil {
		return err
	}

	if err := o.store.SetToken(user.AccessToken); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	if err := o.store.SetUser(user); err != nil {
		return fmt.Errorf("persisting user: %w", err)
	}

	return nil
}

// applyUser replaces the session user snapshot and persists it. Called
// with the busy flag held.
func (o *Orchestrator) applyUser(user *models.AppUser) error {
	if err := o.sess.UpdateUser(user); err != nil {
		return err
	}

	if err := o.store.SetUser(user); err != nil {
		return fmt.Errorf("persisting user: %w", err)
	}

	return nil
}

// TokenExpiry reads the exp claim of an access token without verifying
// the signature. Verification is the server's job; the client only
// schedules around expiry.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parsing access token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("access token has no exp claim")
	}

	return exp.Time, nil
}

// assertionRequest builds the authenticator request for an assertion
// challenge, defaulting the relying party to the configured one.
func (o *Orchestrator) assertionRequest(ch *models.LoginChallenge) *authenticator.AssertionRequest {
	rpID := ch.RPID
	if rpID == "" {
		rpID = o.rpID
	}

	allowed := make([]string, 0, len(ch.AllowCredentials))
	for _, c := range ch.AllowCredentials {
		allowed = append(allowed, c.ID)
	}

	return &authenticator.AssertionRequest{
		Challenge:            ch.Challenge,
		RelyingPartyID:       rpID,
		AllowedCredentialIDs: allowed,
		UserVerification:     ch.UserVerification,
	}
}

// creationRequest builds the authenticator request for a registration
// challenge.
func (o *Orchestrator) creationRequest(ch *models.SignupChallenge) *authenticator.CreationRequest {
	return &authenticator.CreationRequest{
		UserID:         ch.User.ID,
		UserName:       ch.User.Name,
		DisplayName:    ch.User.DisplayName,
		Challenge:      ch.Challenge,
		RelyingPartyID: o.rpID,
	}
}

func shortToken(s string) string {
	if len(s) > 8 {
		return s[:8]
	}

	return s
}

func staleKind(c *Ceremony) string {
	if c == nil {
		return "none"
	}

	return c.kind.String()
}
