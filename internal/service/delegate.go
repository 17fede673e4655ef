// File: internal/service/delegate.go
package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"storefront/internal/config"
)

// ErrInvalidCredentials means the identity provider rejected the submitted
// credentials (any 4xx). The provider's own error detail is deliberately not
// exposed to clients.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenPayload is the token response relayed back to the client on a
// successful login.
type TokenPayload struct {
	AccessToken  string `json:"access_token" example:"..."`
	TokenType    string `json:"token_type" example:"Bearer"`
	ExpiresIn    int64  `json:"expires_in" example:"86400"`
	RefreshToken string `json:"refresh_token,omitempty" example:"..."`
}

// delegateTimeout bounds the token request; the provider call is
// single-attempt with no retry.
const delegateTimeout = 10 * time.Second

// DelegateLogin exchanges email/password for a token at the configured
// provider using the OAuth2 password grant.
func DelegateLogin(ctx context.Context, cfg config.OAuthConfig, email, password string) (*TokenPayload, error) {
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: delegateTimeout})

	tok, err := conf.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response.StatusCode >= 400 && rerr.Response.StatusCode < 500 {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	payload := &TokenPayload{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
	}
	if !tok.Expiry.IsZero() {
		payload.ExpiresIn = int64(time.Until(tok.Expiry).Seconds())
	}
	return payload, nil
}
