// Package session holds the client's authentication state machine.
// Exactly one Session exists per running client; every state change
// goes through its transition methods so invalid jumps are impossible.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/appkey-demo/appkey-go/internal/models"
)

// State is the client's position in the authentication lifecycle.
type State int

const (
	// StateLoggedOut is the initial state. No user, no access token.
	StateLoggedOut State = iota

	// StateSignupPendingCode means the signup attestation was accepted
	// and the account awaits its one-time verification code.
	StateSignupPendingCode

	// StateResetPasskeyPending means login found an account with no
	// usable passkey. The next ceremony registers a replacement.
	StateResetPasskeyPending

	// StateUsernamePending means authentication succeeded but the
	// tenant requires a username and the account has none yet.
	StateUsernamePending

	// StateLoggedIn is the fully authenticated state.
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged-out"
	case StateSignupPendingCode:
		return "signup-pending-code"
	case StateResetPasskeyPending:
		return "reset-passkey-pending"
	case StateUsernamePending:
		return "username-pending"
	case StateLoggedIn:
		return "logged-in"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrBusy is returned by Begin while another operation holds the
// session.
var ErrBusy = errors.New("session busy")

// ErrInvalidTransition is returned when a transition is requested from
// a state that does not permit it.
var ErrInvalidTransition = errors.New("invalid session transition")

// Session is the single mutable authentication state of the client.
// All methods are safe for concurrent use.
type Session struct {
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	app     *models.Application
	user    *models.AppUser
	busy    bool
	lastErr error
}

// New creates a logged-out session.
func New(logger *slog.Logger) *Session {
	return &Session{logger: logger, state: StateLoggedOut}
}

// Begin marks the session busy for the duration of one operation and
// returns the release func. A second Begin before release fails with
// ErrBusy; operations never overlap.
func (s *Session) Begin() (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return nil, ErrBusy
	}

	s.busy = true

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.busy = false
	}, nil
}

// Busy reports whether an operation is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.busy
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// SetApp installs the tenant configuration. The app's feature flags
// decide whether authentication lands in the username-pending state.
func (s *Session) SetApp(app *models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app = app
}

// App returns the tenant configuration, or nil before SetApp.
func (s *Session) App() *models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.app
}

// User returns the current account, or nil outside the authenticated
// states.
func (s *Session) User() *models.AppUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user
}

// Token returns the current access token, or "" when not
// authenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ""
	}

	return s.user.AccessToken
}

// AwaitCode records that the signup attestation was accepted and the
// one-time code is outstanding. Only valid from logged-out.
func (s *Session) AwaitCode() error {
	return s.transition(StateSignupPendingCode, StateLoggedOut)
}

// RequirePasskeyReset records that login found no usable passkey on the
// account. Only valid from logged-out.
func (s *Session) RequirePasskeyReset() error {
	return s.transition(StateResetPasskeyPending, StateLoggedOut)
}

// Authenticate installs the user after any successful authentication
// ceremony. Lands in username-pending when the tenant requires
// usernames and the account has none, otherwise logged-in. Valid from
// every state except logged-in.
func (s *Session) Authenticate(user *models.AppUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateLoggedIn {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, StateLoggedIn)
	}

	next := StateLoggedIn
	if s.app != nil && s.app.UserNamesEnabled && user.UserName == "" && user.LoginProvider != models.ProviderApple && user.LoginProvider != models.ProviderGoogle {
		next = StateUsernamePending
	}

	s.logger.Info("session authenticated",
		"from", s.state.String(),
		"to", next.String(),
		"appUserId", user.AppUserID)

	s.state = next
	s.user = user

	return nil
}

// UpdateUser replaces the account snapshot without changing state,
// used after profile, locale, and passkey mutations. The existing
// access token is kept when the fresh snapshot omits one.
func (s *Session) UpdateUser(user *models.AppUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return fmt.Errorf("%w: no user in %s", ErrInvalidTransition, s.state)
	}

	if user.AccessToken == "" {
		user.AccessToken = s.user.AccessToken
	}

	s.user = user

	return nil
}

// ClaimUsername records that the required username was set and
// completes the login. Only valid from username-pending.
func (s *Session) ClaimUsername(userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUsernamePending {
		return fmt.Errorf("%w: cannot claim username from %s", ErrInvalidTransition, s.state)
	}

	s.user.UserName = userName
	s.state = StateLoggedIn

	s.logger.Info("username claimed", "appUserId", s.user.AppUserID)

	return nil
}

// Logout clears the user and returns to logged-out. Valid from every
// state, including partial flows being abandoned.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("session logged out", "from", s.state.String())

	s.state = StateLoggedOut
	s.user = nil
	s.lastErr = nil
}

// Fail records an operation error for later display. The state is
// unchanged; errors never advance the machine.
func (s *Session) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

// TakeError returns the recorded error and clears it.
func (s *Session) TakeError() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.lastErr
	s.lastErr = nil

	return err
}

func (s *Session) transition(to State, from ...State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range from {
		if s.state == f {
			s.logger.Debug("session transition", "from", s.state.String(), "to", to.String())
			s.state = to

			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
}
