package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/appkey-demo/appkey-go/internal/models"
)

// AddPasskey requests a registration challenge for an additional
// credential on the current account. Requires a freshly verified
// session; the backend rejects stale verification with a typed error.
func (c *Client) AddPasskey(ctx context.Context, accessToken string) (*models.SignupChallenge, error) {
	challenge := &models.SignupChallenge{}
	if _, err := c.postForm(ctx, "/addPasskey", url.Values{}, accessAuth(accessToken), challenge); err != nil {
		return nil, fmt.Errorf("requesting add-passkey challenge: %w", err)
	}

	return challenge, nil
}

// AddPasskeyComplete submits the attestation for an add-passkey
// challenge and returns the user with the updated passkey list.
func (c *Client) AddPasskeyComplete(ctx context.Context, accessToken string, att *models.Attestation) (*models.AppUser, error) {
	form, err := attestationForm("", att)
	if err != nil {
		return nil, err
	}

	form.Del("handle")

	user := &models.AppUser{}
	if _, err := c.postForm(ctx, "/addPasskeyComplete", form, accessAuth(accessToken), user); err != nil {
		return nil, fmt.Errorf("completing add-passkey: %w", err)
	}

	user.AccessToken = accessToken

	return user, nil
}

// UpdatePasskey renames a credential and returns the user with the
// updated passkey list.
func (c *Client) UpdatePasskey(ctx context.Context, accessToken, keyID, name string) (*models.AppUser, error) {
	form := url.Values{}
	form.Set("keyId", keyID)
	form.Set("keyName", name)

	user := &models.AppUser{}
	if _, err := c.postForm(ctx, "/updatePasskey", form, accessAuth(accessToken), user); err != nil {
		return nil, fmt.Errorf("updating passkey: %w", err)
	}

	user.AccessToken = accessToken

	return user, nil
}

// RemovePasskey removes a credential and returns the user with the
// updated passkey list. The backend refuses to remove the last one.
func (c *Client) RemovePasskey(ctx context.Context, accessToken, keyID string) (*models.AppUser, error) {
	form := url.Values{}
	form.Set("keyId", keyID)

	user := &models.AppUser{}
	if _, err := c.postForm(ctx, "/removePasskey", form, accessAuth(accessToken), user); err != nil {
		return nil, fmt.Errorf("removing passkey: %w", err)
	}

	user.AccessToken = accessToken

	return user, nil
}
