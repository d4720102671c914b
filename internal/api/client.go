// Package api implements the AppKey REST client. Requests are
// form-encoded, responses are JSON, and every call carries exactly one
// auth header: app-token before login, access-token after, signup-token
// during the one-time-code step.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/appkey-demo/appkey-go/internal/apierror"
	"github.com/tidwall/gjson"
)

const (
	// httpClientTimeout is the timeout for the default HTTP client used
	// when no custom client is provided. Challenges are one-time, so a
	// timed-out request is surfaced to the user rather than retried.
	httpClientTimeout = 30 * time.Second

	// maxResponseBytes caps response body reads. API responses are
	// small JSON payloads.
	maxResponseBytes = 1024 * 1024

	basePath = "/api/appuser"
)

// Auth header names, one per phase.
const (
	headerAppToken    = "app-token"
	headerAccessToken = "access-token"
	headerSignupToken = "signup-token"
)

// credential is the single auth header attached to a request.
type credential struct {
	header string
	value  string
}

// Client talks to the AppKey backend for one tenant.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appToken   string
}

// NewClient creates an API client for the tenant identified by appToken.
// If httpClient is nil, a client with a 30-second timeout is created.
func NewClient(baseURL, appToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpClientTimeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		appToken:   appToken,
	}
}

// appAuth returns the tenant credential used before login.
func (c *Client) appAuth() credential {
	return credential{header: headerAppToken, value: c.appToken}
}

func accessAuth(token string) credential {
	return credential{header: headerAccessToken, value: token}
}

func signupAuth(token string) credential {
	return credential{header: headerSignupToken, value: token}
}

// do sends a request and returns the raw response body after the
// envelope check. result, when non-nil, receives the decoded JSON.
func (c *Client) do(ctx context.Context, method, endpoint string, form url.Values, auth credential, result any) ([]byte, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+basePath+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(auth.header, auth.value)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", endpoint, err)
	}

	if err := checkResponse(resp.StatusCode, respBody); err != nil {
		return nil, apierror.Wrap("API "+endpoint, err)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return nil, fmt.Errorf("decoding response from %s: %w", endpoint, apierror.ErrInternal)
		}
	}

	return respBody, nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values, auth credential, result any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, endpoint, form, auth, result)
}

func (c *Client) get(ctx context.Context, endpoint string, auth credential, result any) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, auth, result)
}

// checkResponse maps the backend's error envelope onto typed errors:
// HTTP 400 with a {code:int} body yields the named kind, HTTP 500 or
// anything unparseable yields the generic internal error.
func checkResponse(status int, body []byte) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusBadRequest:
		code := gjson.GetBytes(body, "code")
		if !code.Exists() || code.Type != gjson.Number {
			return apierror.ErrInternal
		}

		return apierror.FromCode(int(code.Int()))
	default:
		return fmt.Errorf("status %d: %w", status, apierror.ErrInternal)
	}
}

// IsAPIError reports whether err came from the backend's typed envelope
// rather than transport or decoding.
func IsAPIError(err error) bool {
	var e *apierror.Error
	return errors.As(err, &e)
}
