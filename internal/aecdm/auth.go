package aecdm

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"category-audit-backend/internal/errors"
)

// Scope required for reading design data through the AEC Data Model API.
const dataReadScope = "data:read"

// TokenSource supplies OAuth2 access tokens for the AEC Data Model API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed, pre-issued access token.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource creates a TokenSource around a pre-issued token.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token implements TokenSource.
func (s *StaticTokenSource) Token(_ context.Context) (string, error) {
	if s.token == "" {
		return "", errors.NewAuthError("static", "no access token configured", errors.ErrTokenRequired)
	}
	return s.token, nil
}

// ClientCredentialsSource fetches two-legged tokens from the APS
// authentication service and refreshes them as they expire.
type ClientCredentialsSource struct {
	source   oauth2.TokenSource
	tokenURL string
}

// NewClientCredentialsSource creates a TokenSource that performs the OAuth2
// client credentials flow against tokenURL.
func NewClientCredentialsSource(clientID, clientSecret, tokenURL string) *ClientCredentialsSource {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{dataReadScope},
	}
	return &ClientCredentialsSource{
		source:   cfg.TokenSource(context.Background()),
		tokenURL: tokenURL,
	}
}

// Token implements TokenSource. Tokens are cached by the underlying oauth2
// source until shortly before expiry.
func (s *ClientCredentialsSource) Token(_ context.Context) (string, error) {
	tok, err := s.source.Token()
	if err != nil {
		return "", errors.NewAuthError("client_credentials", "token request to "+s.tokenURL+" failed", err)
	}
	return tok.AccessToken, nil
}

// NewTokenSource picks the token source matching the supplied credentials:
// a static token when one is given, client credentials otherwise.
func NewTokenSource(accessToken, clientID, clientSecret, tokenURL string) (TokenSource, error) {
	if accessToken != "" {
		return NewStaticTokenSource(accessToken), nil
	}
	if clientID != "" && clientSecret != "" {
		return NewClientCredentialsSource(clientID, clientSecret, tokenURL), nil
	}
	return nil, errors.NewAuthError("", "no credentials configured", errors.ErrTokenRequired)
}
