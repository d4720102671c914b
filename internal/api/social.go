package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/appkey-demo/appkey-go/internal/models"
	"github.com/tidwall/gjson"
)

// SocialLogin exchanges a third-party identity token for a session.
// Fails with the account-does-not-exist kind when no account is bound
// to the identity; the caller falls back to SocialSignup with the same
// token.
func (c *Client) SocialLogin(ctx context.Context, idToken, provider string) (*models.AppUser, error) {
	form := url.Values{}
	form.Set("token", idToken)
	form.Set("provider", provider)

	user := &models.AppUser{}

	body, err := c.postForm(ctx, "/socialLogin", form, c.appAuth(), user)
	if err != nil {
		return nil, fmt.Errorf("social login: %w", err)
	}

	user.AccessToken = gjson.GetBytes(body, "access-token").String()

	return user, nil
}

// SocialSignup creates an account bound to a third-party identity and
// logs it in.
func (c *Client) SocialSignup(ctx context.Context, idToken, email, provider, displayName, locale string) (*models.AppUser, error) {
	form := url.Values{}
	form.Set("token", idToken)
	form.Set("handle", email)
	form.Set("provider", provider)
	form.Set("displayName", displayName)

	if locale != "" {
		form.Set("locale", locale)
	}

	user := &models.AppUser{}

	body, err := c.postForm(ctx, "/socialSignup", form, c.appAuth(), user)
	if err != nil {
		return nil, fmt.Errorf("social signup: %w", err)
	}

	user.AccessToken = gjson.GetBytes(body, "access-token").String()

	return user, nil
}

// VerifySocialAccount re-verifies a social-bound account with a fresh
// identity token, the social equivalent of the verify ceremony.
func (c *Client) VerifySocialAccount(ctx context.Context, idToken, provider string) (bool, error) {
	form := url.Values{}
	form.Set("token", idToken)
	form.Set("provider", provider)

	body, err := c.postForm(ctx, "/verifySocialAccount", form, c.appAuth(), nil)
	if err != nil {
		return false, fmt.Errorf("verifying social account: %w", err)
	}

	return gjson.GetBytes(body, "valid").Bool(), nil
}
