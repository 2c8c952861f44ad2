package aecdm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"category-audit-backend/internal/errors"
)

func TestStaticTokenSource(t *testing.T) {
	src := NewStaticTokenSource("abc")
	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestStaticTokenSourceEmpty(t *testing.T) {
	src := NewStaticTokenSource("")
	_, err := src.Token(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTokenRequired)
}

func TestClientCredentialsSource(t *testing.T) {
	var grantType, scope string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		grantType = r.Form.Get("grant_type")
		scope = r.Form.Get("scope")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"Bearer","expires_in":3599}`))
	}))
	t.Cleanup(server.Close)

	src := NewClientCredentialsSource("client-id", "client-secret", server.URL)
	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, "client_credentials", grantType)
	assert.Equal(t, "data:read", scope)

	// cached until expiry, no second round trip needed
	token, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestClientCredentialsSourceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_client", http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	src := NewClientCredentialsSource("client-id", "wrong", server.URL)
	_, err := src.Token(context.Background())
	require.Error(t, err)

	var authErr *errors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "client_credentials", authErr.Method)

	// the failing token endpoint is named in the message
	assert.Contains(t, err.Error(), server.URL)
}

func TestNewTokenSource(t *testing.T) {
	t.Run("static token wins", func(t *testing.T) {
		src, err := NewTokenSource("abc", "id", "secret", "http://example.invalid")
		require.NoError(t, err)
		assert.IsType(t, &StaticTokenSource{}, src)
	})

	t.Run("client credentials", func(t *testing.T) {
		src, err := NewTokenSource("", "id", "secret", "http://example.invalid")
		require.NoError(t, err)
		assert.IsType(t, &ClientCredentialsSource{}, src)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := NewTokenSource("", "", "", "http://example.invalid")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrTokenRequired)
	})
}
