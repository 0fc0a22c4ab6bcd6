package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, role string, ttl time.Duration) string {
	claims := jwt.MapClaims{
		"sub":  uint(42),
		"role": role,
		"name": "ครูสมศรี",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func newContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestRequireAuthValidToken(t *testing.T) {
	c, _ := newContext(signTestToken(t, "teacher", time.Hour))

	err := RequireAuth(testSecret)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), UserID(c))
	assert.Equal(t, "teacher", Role(c))
	assert.Equal(t, "ครูสมศรี", c.Get(CtxName))
}

func TestRequireAuthNormalizesRole(t *testing.T) {
	c, _ := newContext(signTestToken(t, "Teacher", time.Hour))

	err := RequireAuth(testSecret)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, "teacher", Role(c))
}

func TestRequireAuthMissingHeader(t *testing.T) {
	c, _ := newContext("")

	err := RequireAuth(testSecret)(okHandler)(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
	assert.Equal(t, uint(0), UserID(c))
}

func TestRequireAuthExpiredToken(t *testing.T) {
	c, _ := newContext(signTestToken(t, "teacher", -time.Hour))

	err := RequireAuth(testSecret)(okHandler)(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		}
	}
}

func TestRequireAuthWrongSecret(t *testing.T) {
	c, _ := newContext(signTestToken(t, "admin", time.Hour))

	err := RequireAuth("another-secret")(okHandler)(c)
	assert.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	c, _ := newContext("")
	c.Set(CtxRole, "teacher")

	assert.NoError(t, RequireRole("teacher", "admin")(okHandler)(c))

	err := RequireRole("admin")(okHandler)(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusForbidden, he.Code)
		}
	}
}
