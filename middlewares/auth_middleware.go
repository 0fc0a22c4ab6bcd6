package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// context keys ที่ middleware แนบให้ handler ชั้นใน
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxName   = "name"
)

// AuthClaims payload ของ token ที่ /auth/login ออกให้
// sub = users.id, role = admin|teacher|student
type AuthClaims struct {
	Sub  uint   `json:"sub"`
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// token จาก Authorization header ("" = ไม่มี/รูปแบบผิด)
func bearerToken(c echo.Context) string {
	h := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	parts := strings.Fields(h)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func parseToken(raw, secret string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &AuthClaims{}, func(t *jwt.Token) (any, error) {
		// ป้องกัน alg โดนสลับ
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	// ตรวจ expiry (กัน lib ถูก config ปิด)
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}

// RequireAuth ตรวจ JWT (HS256) แล้วแนบ user id / role / ชื่อ ไว้ใน context
// role ถูก normalize เป็นตัวพิมพ์เล็กตั้งแต่ตรงนี้ ให้ RequireRole เทียบตรง ๆ ได้
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "MISSING_AUTH_HEADER"})
			}
			claims, err := parseToken(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_TOKEN"})
			}
			c.Set(CtxUserID, claims.Sub)
			c.Set(CtxRole, strings.ToLower(claims.Role))
			c.Set(CtxName, claims.Name)
			return next(c)
		}
	}
}

// UserID ของผู้ใช้ที่ล็อกอิน (0 = ยังไม่ผ่าน RequireAuth)
func UserID(c echo.Context) uint {
	id, _ := c.Get(CtxUserID).(uint)
	return id
}

// Role ของผู้ใช้ที่ล็อกอิน ตัวพิมพ์เล็กเสมอ
func Role(c echo.Context) string {
	role, _ := c.Get(CtxRole).(string)
	return role
}

// จำกัดบทบาทที่อนุญาต เช่น RequireRole("admin") หรือ RequireRole("teacher","admin")
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[Role(c)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
			}
			return next(c)
		}
	}
}
