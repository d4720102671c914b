package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/appkey-demo/appkey-go/internal/models"
	"github.com/tidwall/gjson"
)

// GetApp fetches the tenant configuration for the client's app token.
func (c *Client) GetApp(ctx context.Context) (*models.Application, error) {
	app := &models.Application{}
	if _, err := c.get(ctx, "/app", c.appAuth(), app); err != nil {
		return nil, fmt.Errorf("fetching app: %w", err)
	}

	return app, nil
}

// GetUser fetches the authenticated user, including the passkey list.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*models.AppUser, error) {
	user := &models.AppUser{}
	if _, err := c.get(ctx, "/user", accessAuth(accessToken), user); err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	user.AccessToken = accessToken

	return user, nil
}

// Signup requests a registration challenge for a new account.
func (c *Client) Signup(ctx context.Context, handle, displayName, locale string) (*models.SignupChallenge, error) {
	form := url.Values{}
	form.Set("handle", handle)
	form.Set("displayName", displayName)

	if locale != "" {
		form.Set("locale", locale)
	}

	challenge := &models.SignupChallenge{}
	if _, err := c.postForm(ctx, "/signup", form, c.appAuth(), challenge); err != nil {
		return nil, fmt.Errorf("requesting signup challenge: %w", err)
	}

	return challenge, nil
}

// SignupConfirm submits the attestation minted for the signup challenge.
// The returned SignupData carries the signup token authorizing the
// one-time-code step.
func (c *Client) SignupConfirm(ctx context.Context, handle string, att *models.Attestation) (*models.SignupData, error) {
	form, err := attestationForm(handle, att)
	if err != nil {
		return nil, err
	}

	data := &models.SignupData{}

	body, err := c.postForm(ctx, "/signupConfirm", form, c.appAuth(), data)
	if err != nil {
		return nil, fmt.Errorf("confirming signup: %w", err)
	}

	data.SignupToken = gjson.GetBytes(body, "signup-token").String()

	return data, nil
}

// SignupComplete exchanges the one-time code for the new account.
func (c *Client) SignupComplete(ctx context.Context, signupToken, code string) (*models.AppUser, error) {
	form := url.Values{}
	form.Set("code", code)

	user := &models.AppUser{}

	body, err := c.postForm(ctx, "/signupComplete", form, signupAuth(signupToken), user)
	if err != nil {
		return nil, fmt.Errorf("completing signup: %w", err)
	}

	user.AccessToken = gjson.GetBytes(body, "access-token").String()

	return user, nil
}

// Login requests an assertion challenge for an existing account. When
// the response carries requireAddPasskey, the account has no usable
// passkey and the caller must run the reset flow instead of asserting.
func (c *Client) Login(ctx context.Context, handle string) (*models.LoginChallenge, error) {
	form := url.Values{}
	form.Set("handle", handle)

	challenge := &models.LoginChallenge{}
	if _, err := c.postForm(ctx, "/login", form, c.appAuth(), challenge); err != nil {
		return nil, fmt.Errorf("requesting login challenge: %w", err)
	}

	return challenge, nil
}

// LoginComplete submits the assertion minted for the login challenge.
func (c *Client) LoginComplete(ctx context.Context, handle string, assert *models.Assertion) (*models.AppUser, error) {
	form, err := assertionForm(handle, assert)
	if err != nil {
		return nil, err
	}

	user := &models.AppUser{}

	body, err := c.postForm(ctx, "/loginComplete", form, c.appAuth(), user)
	if err != nil {
		return nil, fmt.Errorf("completing login: %w", err)
	}

	user.AccessToken = gjson.GetBytes(body, "access-token").String()

	return user, nil
}

// LoginResetComplete submits the attestation for a passkey reset. The
// login challenge doubles as the registration challenge when the
// account has no usable passkey.
func (c *Client) LoginResetComplete(ctx context.Context, handle string, att *models.Attestation) (*models.AppUser, error) {
	form, err := attestationForm(handle, att)
	if err != nil {
		return nil, err
	}

	user := &models.AppUser{}

	body, err := c.postForm(ctx, "/loginComplete", form, c.appAuth(), user)
	if err != nil {
		return nil, fmt.Errorf("completing passkey reset: %w", err)
	}

	user.AccessToken = gjson.GetBytes(body, "access-token").String()

	return user, nil
}

// LoginAnonymous requests a registration challenge for an ephemeral
// ANON_<uuid> account.
func (c *Client) LoginAnonymous(ctx context.Context, handle string) (*models.SignupChallenge, error) {
	form := url.Values{}
	form.Set("handle", handle)

	challenge := &models.SignupChallenge{}
	if _, err := c.postForm(ctx, "/loginAnonymous", form, c.appAuth(), challenge); err != nil {
		return nil, fmt.Errorf("requesting anonymous login challenge: %w", err)
	}

	return challenge, nil
}

// LoginAnonymousComplete submits the attestation for an anonymous login.
func (c *Client) LoginAnonymousComplete(ctx context.Context, handle string, att *models.Attestation) (*models.AppUser, error) {
	form, err := attestationForm(handle, att)
	if err != nil {
		return nil, err
	}

	user := &models.AppUser{}

	body, err := c.postForm(ctx, "/loginAnonymousComplete", form, c.appAuth(), user)
	if err != nil {
		return nil, fmt.Errorf("completing anonymous login: %w", err)
	}

	user.AccessToken = gjson.GetBytes(body, "access-token").String()

	return user, nil
}

// Verify requests a re-authentication challenge for the current account,
// used as a gate before sensitive actions.
func (c *Client) Verify(ctx context.Context, handle string) (*models.LoginChallenge, error) {
	form := url.Values{}
	form.Set("handle", handle)

	challenge := &models.LoginChallenge{}
	if _, err := c.postForm(ctx, "/verify", form, c.appAuth(), challenge); err != nil {
		return nil, fmt.Errorf("requesting verify challenge: %w", err)
	}

	return challenge, nil
}

// VerifyComplete submits the assertion for a verify challenge and
// returns the server's validity verdict.
func (c *Client) VerifyComplete(ctx context.Context, handle string, assert *models.Assertion) (bool, error) {
	form, err := assertionForm(handle, assert)
	if err != nil {
		return false, err
	}

	body, err := c.postForm(ctx, "/verifyComplete", form, c.appAuth(), nil)
	if err != nil {
		return false, fmt.Errorf("completing verify: %w", err)
	}

	return gjson.GetBytes(body, "valid").Bool(), nil
}

// UserNameAvailable reports whether userName is free to claim. Read-only.
func (c *Client) UserNameAvailable(ctx context.Context, accessToken, userName string) (bool, error) {
	endpoint := "/userNameAvailable?userName=" + url.QueryEscape(userName)

	body, err := c.get(ctx, endpoint, accessAuth(accessToken), nil)
	if err != nil {
		return false, fmt.Errorf("checking username: %w", err)
	}

	return gjson.GetBytes(body, "available").Bool(), nil
}

// SetUserName claims a username for the account.
func (c *Client) SetUserName(ctx context.Context, accessToken, userName string) error {
	form := url.Values{}
	form.Set("userName", userName)

	if _, err := c.postForm(ctx, "/setUsername", form, accessAuth(accessToken), nil); err != nil {
		return fmt.Errorf("setting username: %w", err)
	}

	return nil
}

// SetLocale updates the account locale.
func (c *Client) SetLocale(ctx context.Context, accessToken, locale string) error {
	form := url.Values{}
	form.Set("locale", locale)

	if _, err := c.postForm(ctx, "/setLocale", form, accessAuth(accessToken), nil); err != nil {
		return fmt.Errorf("setting locale: %w", err)
	}

	return nil
}

// UpdateProfile updates the account's display names.
func (c *Client) UpdateProfile(ctx context.Context, accessToken, firstName, lastName string) (*models.AppUser, error) {
	form := url.Values{}
	form.Set("firstName", firstName)
	form.Set("lastName", lastName)

	user := &models.AppUser{}
	if _, err := c.postForm(ctx, "/updateProfile", form, accessAuth(accessToken), user); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	user.AccessToken = accessToken

	return user, nil
}

// DeleteAccount permanently removes the account. Irreversible; the
// caller must have re-verified the session and must log out locally on
// success.
func (c *Client) DeleteAccount(ctx context.Context, accessToken string) error {
	if _, err := c.postForm(ctx, "/deleteAccount", url.Values{}, accessAuth(accessToken), nil); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

// attestationForm builds the shared form shape for attestation legs:
// handle, credential id, and the raw response blobs as a JSON field.
func attestationForm(handle string, att *models.Attestation) (url.Values, error) {
	response, err := json.Marshal(att.Response)
	if err != nil {
		return nil, fmt.Errorf("encoding attestation response: %w", err)
	}

	form := url.Values{}
	form.Set("handle", handle)
	form.Set("id", att.ID)
	form.Set("response", string(response))

	return form, nil
}

// assertionForm builds the shared form shape for assertion legs.
func assertionForm(handle string, assert *models.Assertion) (url.Values, error) {
	response, err := json.Marshal(assert.Response)
	if err != nil {
		return nil, fmt.Errorf("encoding assertion response: %w", err)
	}

	form := url.Values{}
	form.Set("handle", handle)
	form.Set("id", assert.ID)
	form.Set("response", string(response))

	return form, nil
}
