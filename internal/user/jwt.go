package user

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenLifetime = 72 * time.Hour

type SessionClaims struct {
	ID uint `json:"id"`
	jwt.RegisteredClaims
}

// GenerateJWT mints a session token for a user id. The jti lets logout
// revoke the token before it expires. Variable so tests can stub it.
var GenerateJWT = func(id uint) (string, error) {
	claims := SessionClaims{
		ID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
