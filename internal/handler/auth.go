// This file defines the OAuth callback completing the external auth
// provider's authorization-code flow.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"

	"github.com/eduflow/eduflow-api/internal/config"
)

// AuthHandler completes sign-in flows delegated to the external auth
// provider. The provider owns user records and credentials; this service
// only exchanges the authorization code and stores the resulting token in
// the auth_token cookie the request gate reads.
type AuthHandler struct {
	oauth oauth2.Config
}

// NewAuthHandler constructs an AuthHandler from the provider settings in
// cfg.
func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{
		oauth: oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
	}
}

// Callback handles GET /auth/callback?code=... It exchanges the
// authorization code for a session token and then redirects to /dashboard
// unconditionally: a failed exchange just means the user lands on the
// dashboard unauthenticated and the gate bounces them back to login.
func (h *AuthHandler) Callback(c echo.Context) error {
	if code := c.QueryParam("code"); code != "" && h.oauth.Endpoint.TokenURL != "" {
		tok, err := h.oauth.Exchange(c.Request().Context(), code)
		if err != nil {
			c.Logger().Warnf("auth: code exchange failed: %v", err)
		} else {
			c.SetCookie(&http.Cookie{
				Name:     "auth_token",
				Value:    tok.AccessToken,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Expires:  tok.Expiry,
			})
		}
	}
	return c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
}
