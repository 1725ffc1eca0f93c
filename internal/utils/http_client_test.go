package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:5000", time.Second)
	client2 := NewHTTPClient("http://localhost:5000", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_UsesBaseURLAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("1.0.0"))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/version")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", resp.String())
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	assert.Equal(t, 2*time.Second, NewHTTPClient("http://x", 2*time.Second).GetClient().Timeout)
	assert.Zero(t, NewHTTPClient("http://x", 0).GetClient().Timeout)
}
