package http

import (
	"fmt"
	"net/http"
	"time"

	"rental/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const tokenContextKey = "user"

// Claims is the bearer token payload issued by the identity service.
// Subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the given user.
func IssueToken(secret []byte, userID kernel.UUID, role kernel.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// bearerAuth verifies the Authorization header when one is sent. Requests without it
// continue as the anonymous actor; the core decides whether that is enough.
func bearerAuth(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: secret,
		ContextKey: tokenContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(Claims)
		},
		Skipper: func(ctx echo.Context) bool {
			return ctx.Request().Header.Get(echo.HeaderAuthorization) == ""
		},
		ErrorHandler: func(_ echo.Context, _ error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		},
	})
}

// actor resolves the caller from the verified token. Claims that do not name a
// valid user and role yield the anonymous actor.
func actor(ctx echo.Context) kernel.Actor {
	token, ok := ctx.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return kernel.Anonymous()
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return kernel.Anonymous()
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Anonymous()
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Anonymous()
	}
	a, err := kernel.NewActor(id, role)
	if err != nil {
		return kernel.Anonymous()
	}
	return a
}
