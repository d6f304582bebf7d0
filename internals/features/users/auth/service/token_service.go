// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"readquest_backend/internals/configs"
	userModel "readquest_backend/internals/features/users/users/model"
)

const accessTTL = 12 * time.Hour

// IssueAccessToken signs an HS256 access token carrying the user identity
// and role claim consumed by the auth middleware.
func IssueAccessToken(u *userModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("missing JWT secret")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
