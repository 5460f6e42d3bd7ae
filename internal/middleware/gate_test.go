package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduflow/eduflow-api/internal/model"
	"github.com/eduflow/eduflow-api/internal/utils"
)

const gateSecret = "gate-test-secret"

// newGateApp builds an Echo app with the gate installed and a few routes
// covering public, course-player and admin areas. Handlers echo back the
// X-User-Name request header so header injection can be asserted.
func newGateApp(cfg GateConfig) *echo.Echo {
	e := echo.New()
	e.Use(Gate(cfg))
	echoUserName := func(c echo.Context) error {
		return c.String(http.StatusOK, c.Request().Header.Get(HeaderUserName))
	}
	e.GET("/", echoUserName)
	e.GET("/courses", echoUserName)
	e.GET("/admin", echoUserName)
	e.GET("/admin/courses", echoUserName)
	e.GET("/course-player/lesson", echoUserName)
	return e
}

func mintToken(t *testing.T, role string) string {
	t.Helper()
	raw, err := utils.NewIdentityToken(gateSecret, model.Claims{
		Username: "jane", LabID: "lab-1", Role: role,
	}, time.Minute)
	require.NoError(t, err)
	return raw
}

func doGet(e *echo.Echo, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGateNoToken(t *testing.T) {
	e := newGateApp(GateConfig{Secret: gateSecret, LoginURL: "/auth/login"})

	t.Run("public path forwards", func(t *testing.T) {
		rec := doGet(e, "/courses", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin path redirects to login", func(t *testing.T) {
		rec := doGet(e, "/admin/courses", nil)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("course player redirects to login", func(t *testing.T) {
		rec := doGet(e, "/course-player/lesson", nil)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestGateInvalidToken(t *testing.T) {
	e := newGateApp(GateConfig{Secret: gateSecret, LoginURL: "/auth/login"})

	t.Run("invalid token on public page still redirects to login", func(t *testing.T) {
		rec := doGet(e, "/courses", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer garbage")
		})
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("expired token redirects to login", func(t *testing.T) {
		expired, err := utils.NewIdentityToken(gateSecret, model.Claims{Role: "admin"}, -time.Minute)
		require.NoError(t, err)
		rec := doGet(e, "/admin", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+expired)
		})
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("token signed with another secret redirects to login", func(t *testing.T) {
		other, err := utils.NewIdentityToken("other-secret", model.Claims{Role: "admin"}, time.Minute)
		require.NoError(t, err)
		rec := doGet(e, "/", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+other)
		})
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	})
}

func TestGateRoleCheck(t *testing.T) {
	e := newGateApp(GateConfig{Secret: gateSecret, LoginURL: "/auth/login"})

	t.Run("student on admin path redirects to root, not login", func(t *testing.T) {
		rec := doGet(e, "/admin/courses", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+mintToken(t, "student"))
		})
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("student may enter the course player", func(t *testing.T) {
		rec := doGet(e, "/course-player/lesson", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+mintToken(t, "student"))
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("instructor enters the admin area", func(t *testing.T) {
		rec := doGet(e, "/admin", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+mintToken(t, "instructor"))
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin enters the admin area", func(t *testing.T) {
		rec := doGet(e, "/admin", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+mintToken(t, "admin"))
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGateHeaderInjection(t *testing.T) {
	e := newGateApp(GateConfig{Secret: gateSecret, LoginURL: "/auth/login"})

	t.Run("identity headers attached from claims", func(t *testing.T) {
		rec := doGet(e, "/courses", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+mintToken(t, "student"))
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jane", rec.Body.String())
	})

	t.Run("client-supplied identity headers are overwritten", func(t *testing.T) {
		rec := doGet(e, "/courses", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+mintToken(t, "student"))
			r.Header.Set(HeaderUserName, "spoofed")
			r.Header.Set(HeaderUserRole, "admin")
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jane", rec.Body.String())
	})
}

func TestGateCookieToken(t *testing.T) {
	e := newGateApp(GateConfig{Secret: gateSecret, LoginURL: "/auth/login"})

	rec := doGet(e, "/admin", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: mintToken(t, "instructor")})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane", rec.Body.String())
}

func TestGateMissingSecret(t *testing.T) {
	e := newGateApp(GateConfig{Secret: "", LoginURL: "/auth/login"})

	t.Run("public path stays reachable", func(t *testing.T) {
		rec := doGet(e, "/courses", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("public path with a token stays reachable", func(t *testing.T) {
		rec := doGet(e, "/courses", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer some-token")
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("protected path redirects to login", func(t *testing.T) {
		rec := doGet(e, "/admin", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer some-token")
		})
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestGateAbsoluteLoginURL(t *testing.T) {
	e := newGateApp(GateConfig{Secret: gateSecret, LoginURL: "https://auth.example.com/login"})

	rec := doGet(e, "/admin", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://auth.example.com/login", rec.Header().Get(echo.HeaderLocation))
}

func TestGateSkipsStaticAssets(t *testing.T) {
	e := newGateApp(GateConfig{Secret: gateSecret, LoginURL: "/auth/login"})

	// No route is registered for the asset, so a skipped request falls
	// through to 404 rather than being bounced to login.
	for _, path := range []string{"/logo.png", "/static/app.js", "/favicon.ico", "/img/banner.webp"} {
		rec := doGet(e, path, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer garbage")
		})
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s should bypass the gate", path)
	}
}
