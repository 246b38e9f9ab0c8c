package echoapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/session"
)

const claimsContextKey = "identityClaims"

var (
	errMissingToken     = echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token")
	errInvalidToken     = echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	errPermissionDenied = echo.NewHTTPError(http.StatusForbidden, "permission denied")
)

// Claims carries the identity inside the signed token so requests need no
// store lookup.
type Claims struct {
	jwt.StandardClaims
	Username  string `json:"username"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	StudentID string `json:"studentId,omitempty"`
}

func (c Claims) Identity() session.Identity {
	return session.Identity{
		Username:  c.Username,
		Role:      c.Role,
		Name:      c.Name,
		StudentID: c.StudentID,
	}
}

func GetIdentityClaims(ident session.Identity) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   ident.Username,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(core.Conf.GetDuration("jwtExpirationDelta")).Unix(),
		},
		Username:  ident.Username,
		Role:      ident.Role,
		Name:      ident.Name,
		StudentID: ident.StudentID,
	}
}

func GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(core.Conf.GetString("secretKey")))
}

func parseToken(raw string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(core.Conf.GetString("secretKey")), nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

// authMiddleware requires a valid `Authorization: Bearer <token>` header and
// stores the parsed claims in the request context.
func authMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return errMissingToken
			}
			claims, err := parseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return err
			}
			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// roleMiddleware allows only the given roles through. Must run after
// authMiddleware.
func roleMiddleware(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims := getContextClaims(ctx)
			if claims == nil {
				return errMissingToken
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(ctx)
				}
			}
			return errPermissionDenied
		}
	}
}

func getContextClaims(ctx echo.Context) *Claims {
	claims, _ := ctx.Get(claimsContextKey).(*Claims)
	return claims
}
