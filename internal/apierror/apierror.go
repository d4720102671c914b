// Package apierror defines the closed set of error kinds returned by the
// AppKey backend and the mapping from its HTTP 400 error envelope.
package apierror

import (
	"errors"
	"fmt"
)

// Kind identifies one of the backend's named error conditions.
type Kind int

// Error kinds, numbered with the backend's envelope codes where one exists.
const (
	KindInternal                Kind = 0 // HTTP 500, unparseable body, unknown code
	KindInvalidAppToken         Kind = 400
	KindAppNoLongerExists       Kind = 401
	KindAppSuspended            Kind = 402
	KindMissingParameter        Kind = 403
	KindAccountSuspended        Kind = 404
	KindInvalidAccessToken      Kind = 405
	KindInviteNotSupported      Kind = 406
	KindSignupNotSupported      Kind = 407
	KindGoogle2FANotSupported   Kind = 408
	KindPhone2FANotSupported    Kind = 409
	KindPhoneNotVerified        Kind = 410
	KindExpiredSignupCode       Kind = 411
	KindPhoneNumberInUse        Kind = 412
	KindAppMigrated             Kind = 413
	KindAnonymousNotSupported   Kind = 414
	KindAppleLoginNotSupported  Kind = 415
	KindGoogleLoginNotSupported Kind = 416
	KindInvalidCredentials      Kind = 600
	KindHandleRegistered        Kind = 601
	KindInvalidData             Kind = 602
	KindAccountDoesNotExist     Kind = 603
	KindInvalidMetadata         Kind = 604
	KindUserNameInUse           Kind = 605
	KindUserNameNotSupported    Kind = 606
	KindUserNameDoesNotExist    Kind = 607
	KindAccountNotVerified      Kind = 608
	KindInvalidLocale           Kind = 609
	KindEmailAccountExists      Kind = 610
	KindAppleAccountExists      Kind = 611
	KindGoogleAccountExists     Kind = 612
	KindInvalidToken            Kind = 613
	KindPasskeyNotFound         Kind = 614
	KindInvalidPasskey          Kind = 615
)

// Error is a typed backend error. Two Errors match under errors.Is when
// their kinds are equal, so callers can branch on the package-level
// sentinels below.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is reports kind equality, making sentinel comparison work through
// wrapped chains.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.Kind == t.Kind
}

// messages is the fixed human-readable text for each kind, displayed to
// the user as-is by the demo client.
var messages = map[Kind]string{
	KindInternal:                "internal server error",
	KindInvalidAppToken:         "invalid app token",
	KindAppNoLongerExists:       "app no longer exists",
	KindAppSuspended:            "app is suspended",
	KindMissingParameter:        "missing parameter",
	KindAccountSuspended:        "user account is suspended",
	KindInvalidAccessToken:      "invalid access token",
	KindInviteNotSupported:      "app does not support invite",
	KindSignupNotSupported:      "app does not support signup",
	KindGoogle2FANotSupported:   "app does not support google two-factor verification",
	KindPhone2FANotSupported:    "app does not support phone two-factor verification",
	KindPhoneNotVerified:        "user does not have verified phone number",
	KindExpiredSignupCode:       "expired signup code",
	KindPhoneNumberInUse:        "phone number already in use",
	KindAppMigrated:             "app is migrated to other server",
	KindAnonymousNotSupported:   "app does not support anonymous login",
	KindAppleLoginNotSupported:  "app does not support Apple authentication",
	KindGoogleLoginNotSupported: "app does not support Google authentication",
	KindInvalidCredentials:      "invalid login credentials",
	KindHandleRegistered:        "handle already registered",
	KindInvalidData:             "invalid data",
	KindAccountDoesNotExist:     "account does not exist",
	KindInvalidMetadata:         "invalid metadata",
	KindUserNameInUse:           "user name already assigned",
	KindUserNameNotSupported:    "app does not support username login",
	KindUserNameDoesNotExist:    "user name does not exist",
	KindAccountNotVerified:      "account has not been verified",
	KindInvalidLocale:           "invalid locale",
	KindEmailAccountExists:      "email account already exists",
	KindAppleAccountExists:      "apple account already exists",
	KindGoogleAccountExists:     "google account already exists",
	KindInvalidToken:            "token is invalid",
	KindPasskeyNotFound:         "passkey does not exist",
	KindInvalidPasskey:          "invalid passkey",
}

// Sentinels for the kinds client code branches on. Compare with errors.Is.
var (
	ErrInternal             = New(KindInternal)
	ErrInvalidAppToken      = New(KindInvalidAppToken)
	ErrInvalidAccessToken   = New(KindInvalidAccessToken)
	ErrExpiredSignupCode    = New(KindExpiredSignupCode)
	ErrHandleRegistered     = New(KindHandleRegistered)
	ErrAccountDoesNotExist  = New(KindAccountDoesNotExist)
	ErrUserNameInUse        = New(KindUserNameInUse)
	ErrAccountNotVerified   = New(KindAccountNotVerified)
	ErrInvalidLocale        = New(KindInvalidLocale)
	ErrPasskeyNotFound      = New(KindPasskeyNotFound)
	ErrInvalidPasskey       = New(KindInvalidPasskey)
	ErrInvalidToken         = New(KindInvalidToken)
	ErrInvalidCredentials   = New(KindInvalidCredentials)
	ErrAnonymousUnsupported = New(KindAnonymousNotSupported)
)

// New returns the Error for a kind, with the canonical message. Unknown
// kinds get the internal-error message.
func New(kind Kind) *Error {
	msg, ok := messages[kind]
	if !ok {
		kind = KindInternal
		msg = messages[KindInternal]
	}

	return &Error{Kind: kind, Message: msg}
}

// FromCode maps an envelope code from a 400 response body to its Error.
// Codes outside the closed set collapse to the internal error, matching
// the backend contract.
func FromCode(code int) *Error {
	if _, ok := messages[Kind(code)]; !ok {
		return New(KindInternal)
	}

	return New(Kind(code))
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == kind
}

// Wrap annotates err with the operation name, preserving the typed error
// for errors.Is/As.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
