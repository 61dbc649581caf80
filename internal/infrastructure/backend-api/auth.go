package backendapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/httpclient"
)

// Login exchanges email and password for tokens. The refresh token arrives
// as a cookie and is returned with the access token.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	resp, err := c.send(ctx, request{method: http.MethodPost, path: loginPath, form: form}, "")
	if err != nil {
		return Credentials{}, err
	}

	var token dto.TokenResponse
	if err := decode(resp, &token); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return Credentials{}, errs.ErrInvalidCredentials
		}
		return Credentials{}, err
	}

	return credentialsFrom(resp, token, ""), nil
}

// refresh is never retried and never triggers another refresh.
func (c *Client) refresh(ctx context.Context, current Credentials) (Credentials, error) {
	if current.RefreshToken == "" {
		return Credentials{}, errs.ErrSessionExpired
	}

	resp, err := c.send(ctx, request{
		method:  http.MethodPost,
		path:    c.refreshPath,
		cookies: []*http.Cookie{{Name: RefreshTokenCookie, Value: current.RefreshToken}},
	}, "")
	if err != nil {
		return Credentials{}, err
	}

	var token dto.TokenResponse
	if err := decode(resp, &token); err != nil {
		return Credentials{}, err
	}
	if token.AccessToken == "" {
		return Credentials{}, errs.ErrSessionExpired
	}

	creds := credentialsFrom(resp, token, current.RefreshToken)
	if creds.Role == "" {
		creds.Role = current.Role
	}
	return creds, nil
}

// Logout asks the backend to drop the refresh cookie.
func (c *Client) Logout(ctx context.Context, current Credentials) error {
	req := request{method: http.MethodPost, path: "/logout"}
	if current.RefreshToken != "" {
		req.cookies = []*http.Cookie{{Name: RefreshTokenCookie, Value: current.RefreshToken}}
	}

	resp, err := c.send(ctx, req, current.AccessToken)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

func (c *Client) Me(ctx context.Context) (dto.UserResponse, error) {
	var user dto.UserResponse
	err := c.do(ctx, request{method: http.MethodGet, path: "/users/me"}, &user)
	return user, err
}

func credentialsFrom(resp httpclient.HttpResponse, token dto.TokenResponse, fallbackRefresh string) Credentials {
	creds := Credentials{AccessToken: token.AccessToken, RefreshToken: fallbackRefresh, Role: token.Role}
	if cookie := resp.Cookie(RefreshTokenCookie); cookie != nil && cookie.Value != "" {
		creds.RefreshToken = cookie.Value
	}
	return creds
}
