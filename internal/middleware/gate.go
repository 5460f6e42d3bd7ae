package middleware // middleware provides shared request processing for handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eduflow/eduflow-api/internal/model"
	"github.com/eduflow/eduflow-api/internal/utils"
)

// Identity headers attached to forwarded requests after successful
// verification. They overwrite any client-supplied values of the same names
// so downstream services cannot be fed spoofed claims.
const (
	HeaderUserName = "X-User-Name"
	HeaderLabID    = "X-Lab-Id"
	HeaderUserRole = "X-User-Role"
)

// ContextClaimsKey is the Echo context key under which the gate stores the
// decoded model.Claims of an authenticated request.
const ContextClaimsKey = "claims"

// Path prefixes requiring a valid token before the request is forwarded.
const (
	coursePlayerPrefix = "/course-player"
	adminPrefix        = "/admin"
)

// GateConfig carries the process-wide immutable state the gate needs: the
// verification secret and the login redirect target. Both are read once at
// startup and never mutated.
type GateConfig struct {
	Secret   string // shared HS256 secret; empty means degraded mode
	LoginURL string // login redirect target; absolute URLs are used as-is
}

// Gate returns the authentication/authorization middleware applied to every
// request except static assets. Per request it resolves to exactly one of
// three terminal outcomes:
//
//	Forward        – request continues, identity headers attached when a
//	                 valid token was presented
//	RedirectLogin  – authentication failure (missing/invalid token on a
//	                 protected path, or any presented-but-invalid token)
//	RedirectRoot   – authorization failure (valid token, admin area,
//	                 non-management role)
//
// Verification errors never propagate as a server error; the user-visible
// failure mode is always a redirect.
func Gate(cfg GateConfig) echo.MiddlewareFunc {
	loginURL := cfg.LoginURL
	if loginURL == "" {
		loginURL = "/auth/login"
	}
	if cfg.Secret == "" {
		// Deliberately degraded rather than fatal: public pages stay
		// available, protected paths bounce to login.
		log.Printf("CRITICAL: EXTERNAL_JWT_SECRET is not set; token verification is disabled")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if isStaticAsset(path) {
				return next(c)
			}

			token := extractToken(c)
			protected := isProtected(path)

			if token == "" {
				if protected {
					return redirectToLogin(c, loginURL)
				}
				return next(c)
			}

			if cfg.Secret == "" {
				c.Logger().Error("gate: no verification secret configured")
				if protected {
					return redirectToLogin(c, loginURL)
				}
				return next(c)
			}

			claims, err := utils.ParseIdentity(cfg.Secret, token)
			if err != nil {
				// A presented-but-invalid token forces re-authentication
				// even on public pages.
				c.Logger().Warnf("gate: token verification failed: %v", err)
				return redirectToLogin(c, loginURL)
			}

			// Only management roles may enter the admin area. This is an
			// authorization failure, so the target is the site root rather
			// than the login page.
			if strings.HasPrefix(path, adminPrefix) && !claims.CanManage() {
				return c.Redirect(http.StatusTemporaryRedirect, "/")
			}

			h := c.Request().Header
			h.Set(HeaderUserName, claims.Username)
			h.Set(HeaderLabID, claims.LabID)
			h.Set(HeaderUserRole, claims.Role)
			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// extractToken pulls the bearer token from the Authorization header,
// falling back to the auth_token cookie.
func extractToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		if t := strings.TrimPrefix(auth, "Bearer "); t != "" {
			return t
		}
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// isProtected reports whether the path belongs to an area requiring a
// valid token (course player or admin).
func isProtected(path string) bool {
	return strings.HasPrefix(path, coursePlayerPrefix) || strings.HasPrefix(path, adminPrefix)
}

// imageExts are asset suffixes the gate never inspects.
var imageExts = []string{".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".ico"}

// isStaticAsset reports whether the path is a static asset the gate skips
// entirely (asset prefixes and common image extensions).
func isStaticAsset(path string) bool {
	if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/assets/") || path == "/favicon.ico" {
		return true
	}
	for _, ext := range imageExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// redirectToLogin issues the authentication-failure redirect. An absolute
// login URL is used verbatim; a relative one resolves against the current
// host through the Location header.
func redirectToLogin(c echo.Context, loginURL string) error {
	return c.Redirect(http.StatusTemporaryRedirect, loginURL)
}

// GateClaims returns the claims the gate stored for the current request,
// or the zero Claims when the request was forwarded unauthenticated.
func GateClaims(c echo.Context) model.Claims {
	if v, ok := c.Get(ContextClaimsKey).(model.Claims); ok {
		return v
	}
	return model.Claims{}
}
