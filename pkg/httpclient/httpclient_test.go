package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		c, err := r.Cookie("refresh_token")
		require.NoError(t, err)
		assert.Equal(t, "old", c.Value)

		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "new"})
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	}))
	defer srv.Close()

	resp, err := SendRequest(context.Background(), NewClient(0), HttpRequest{
		URL:     srv.URL,
		Method:  http.MethodPost,
		Body:    []byte(`{"a":1}`),
		Headers: map[string]string{"Content-Type": "application/json"},
		Cookies: []*http.Cookie{{Name: "refresh_token", Value: "old"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"a":1}`, string(resp.Body))
	require.NotNil(t, resp.Cookie("refresh_token"))
	assert.Equal(t, "new", resp.Cookie("refresh_token").Value)
	assert.Nil(t, resp.Cookie("missing"))
}

func TestSendRequestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := SendRequest(context.Background(), NewClient(0), HttpRequest{URL: url, Method: http.MethodGet})
	assert.Error(t, err)
}
