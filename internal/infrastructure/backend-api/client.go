package backendapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/khangviet/storefront/config"
	circuitbreaker "github.com/khangviet/storefront/internal/infrastructure/circuit-breaker"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	loginPath          = "/token"
	RefreshTokenCookie = "refresh_token"
)

var errServerStatus = errors.New("backend answered with a server error")

type Client struct {
	baseURL     string
	refreshPath string
	http        *http.Client
	cb          *gobreaker.CircuitBreaker[httpclient.HttpResponse]
}

func CreateNewClient(conf config.BackendConfig) *Client {
	return CreateNewClientWithHTTP(conf, httpclient.NewClient(conf.Timeout))
}

func CreateNewClientWithHTTP(conf config.BackendConfig, httpClient *http.Client) *Client {
	refreshPath := conf.RefreshPath
	if refreshPath == "" {
		refreshPath = "/auth/refresh"
	}

	return &Client{
		baseURL:     strings.TrimRight(conf.BaseURL, "/"),
		refreshPath: refreshPath,
		http:        httpClient,
		cb: circuitbreaker.CreateCircuitBreaker[httpclient.HttpResponse]("backend-api", func(err error) bool {
			return err == nil
		}),
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	body   interface{}
	form   url.Values

	// set on the refresh and logout calls only
	cookies []*http.Cookie
}

// do sends req with the session's bearer token. A 401 triggers a single
// refresh and one retry, except on the login and refresh endpoints.
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	store, hasStore := TokenStoreFromContext(ctx)

	var creds Credentials
	if hasStore {
		loaded, err := store.Load(ctx)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "BackendDo").Msg("could not load session tokens")
		}
		creds = loaded
	}

	resp, err := c.send(ctx, req, creds.AccessToken)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && hasStore && c.refreshable(req.path) {
		refreshed, err := c.refresh(ctx, creds)
		if err != nil {
			log.Ctx(ctx).Info().Err(err).Str("component", "BackendDo").Msg("refresh failed, clearing session tokens")
			if clearErr := store.Clear(ctx); clearErr != nil {
				log.Ctx(ctx).Error().Err(clearErr).Str("component", "BackendDo").Msg("")
			}
			return errs.ErrSessionExpired
		}

		if err := store.Save(ctx, refreshed); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "BackendDo").Msg("")
		}

		resp, err = c.send(ctx, req, refreshed.AccessToken)
		if err != nil {
			return err
		}
	}

	return decode(resp, out)
}

func (c *Client) refreshable(path string) bool {
	return path != loginPath && path != c.refreshPath
}

func (c *Client) send(ctx context.Context, req request, accessToken string) (httpclient.HttpResponse, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	headers := map[string]string{"Accept": "application/json"}
	var body []byte
	switch {
	case req.form != nil:
		headers["Content-Type"] = "application/x-www-form-urlencoded"
		body = []byte(req.form.Encode())
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return httpclient.HttpResponse{}, fmt.Errorf("encoding request body: %w", err)
		}
		headers["Content-Type"] = "application/json"
		body = encoded
	}
	if accessToken != "" {
		headers["Authorization"] = "Bearer " + accessToken
	}

	httpReq := httpclient.HttpRequest{
		URL:     target,
		Method:  req.method,
		Body:    body,
		Headers: headers,
		Cookies: req.cookies,
	}

	resp, err := c.cb.Execute(func() (httpclient.HttpResponse, error) {
		resp, err := httpclient.SendRequest(ctx, c.http, httpReq)
		if err != nil {
			return resp, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})

	if err == nil || errors.Is(err, errServerStatus) {
		return resp, nil
	}

	// transport failure, or the breaker is open
	log.Ctx(ctx).Error().Err(err).Str("component", "BackendSend").Str("path", req.path).Msg("")
	return resp, fmt.Errorf("%w: %v", errs.ErrBadGateway, err)
}

func decode(resp httpclient.HttpResponse, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, resp.Body)
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: decoding backend response: %v", errs.ErrBadGateway, err)
	}
	return nil
}
