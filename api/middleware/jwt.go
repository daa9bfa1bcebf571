package middleware

import (
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/dainonaka/vsstats/internal/apperrors"
	"github.com/dainonaka/vsstats/internal/session"
	"github.com/dainonaka/vsstats/internal/user"
)

const (
	tokenContextKey = "token"
	userContextKey  = "currentUser"
)

// SetupJWTMiddleware parses the session token from the session cookie or
// the Authorization header. A missing or invalid token is an
// authentication failure and redirects to /login; it is never surfaced as
// the 403 used for ownership failures.
func SetupJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(os.Getenv("JWT_SECRET")),
		ContextKey:  tokenContextKey,
		TokenLookup: "cookie:session,header:Authorization:Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, "/login")
		},
	})
}

// ResolveUser admits a request only when its token is not revoked and its
// claims resolve to an existing user. The user is placed in the request
// context for handlers.
func ResolveUser(users user.Repository, sessions session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			claims, ok := token.Claims.(*user.SessionClaims)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}

			revoked, err := sessions.Revoked(c.Request().Context(), claims.RegisteredClaims.ID)
			if err != nil {
				return apperrors.Internal("error checking session", err)
			}
			if revoked {
				return c.Redirect(http.StatusFound, "/login")
			}

			u, err := users.FindByID(claims.ID)
			if err != nil {
				return apperrors.Internal("error looking up user", err)
			}
			if u == nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// CurrentUser returns the user placed in the context by ResolveUser.
func CurrentUser(c echo.Context) *user.User {
	u, _ := c.Get(userContextKey).(*user.User)
	return u
}

// SessionClaims returns the verified claims of the current request.
func SessionClaims(c echo.Context) *user.SessionClaims {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return nil
	}
	claims, _ := token.Claims.(*user.SessionClaims)
	return claims
}
