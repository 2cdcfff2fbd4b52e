package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHttpClient_BearerToken - сохраненный токен уходит со всеми запросами,
// после ClearToken заголовок не выставляется
func TestHttpClient_BearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewHttpClient(server.URL)
	ctx := context.Background()

	_, err := c.GET(ctx, "/lounges")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	c.SetToken("token-123")
	_, err = c.GET(ctx, "/lounges")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)

	c.ClearToken()
	_, err = c.GET(ctx, "/lounges")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

// TestHttpClient_PostJSON - тело запроса уходит как JSON
func TestHttpClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"lounge-1"}`))
	}))
	defer server.Close()

	c := NewHttpClient(server.URL)

	resp, err := c.POST(context.Background(), "/lounges", map[string]string{"name": "Teranga Lounge"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, "lounge-1", body.ID)
}

// TestGetErrorMessage - разбор стандартного конверта ошибки API
func TestGetErrorMessage(t *testing.T) {
	resp := &Response{Body: []byte(`{"error":{"code":"NOT_FOUND","message":"Lounge not found"}}`)}
	assert.Equal(t, "Lounge not found", GetErrorMessage(resp))

	resp = &Response{Body: []byte(`{"error":{"code":"NOT_FOUND"}}`)}
	assert.Equal(t, "NOT_FOUND", GetErrorMessage(resp))
}
