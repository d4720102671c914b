package orchestrator

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/appkey-demo/appkey-go/internal/models"
)

// ErrValidation marks input rejected locally, before any network call.
var ErrValidation = errors.New("invalid input")

// phonePattern accepts an optional leading + followed by digits with
// common separators. The server applies the authoritative rules; this
// only catches obvious typos before a round-trip.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,19}$`)

// validateHandle rejects empty handles and, when the tenant declares a
// handle type, format-invalid ones.
func validateHandle(handleType, handle string) error {
	if strings.TrimSpace(handle) == "" {
		return fmt.Errorf("%w: handle is required", ErrValidation)
	}

	switch handleType {
	case models.HandleTypeEmail:
		if _, err := mail.ParseAddress(handle); err != nil {
			return fmt.Errorf("%w: %q is not a valid email address", ErrValidation, handle)
		}
	case models.HandleTypePhone:
		if !phonePattern.MatchString(handle) {
			return fmt.Errorf("%w: %q is not a valid phone number", ErrValidation, handle)
		}
	}

	return nil
}

func validateDisplayName(displayName string) error {
	if strings.TrimSpace(displayName) == "" {
		return fmt.Errorf("%w: display name is required", ErrValidation)
	}

	return nil
}

func validateSignupCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: signup code is required", ErrValidation)
	}

	return nil
}
