package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HttpRequest is a struct to hold request parameters
type HttpRequest struct {
	URL     string
	Method  string
	Body    []byte
	Headers map[string]string
	Cookies []*http.Cookie
}

// HttpResponse holds what callers need from a completed exchange.
type HttpResponse struct {
	StatusCode int
	Body       []byte
	Header     http.Header
	Cookies    []*http.Cookie
}

// Cookie returns the named response cookie, or nil.
func (r HttpResponse) Cookie(name string) *http.Cookie {
	for _, c := range r.Cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// NewClient returns an HTTP client whose transport emits otel spans.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// SendRequest sends an HTTP request based on the given HttpRequest struct
func SendRequest(ctx context.Context, client *http.Client, req HttpRequest) (HttpResponse, error) {
	request, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return HttpResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range req.Headers {
		request.Header.Set(key, value)
	}
	for _, cookie := range req.Cookies {
		request.AddCookie(cookie)
	}

	response, err := client.Do(request)
	if err != nil {
		return HttpResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return HttpResponse{StatusCode: response.StatusCode}, fmt.Errorf("failed to read response body: %w", err)
	}

	return HttpResponse{
		StatusCode: response.StatusCode,
		Body:       body,
		Header:     response.Header,
		Cookies:    response.Cookies(),
	}, nil
}
