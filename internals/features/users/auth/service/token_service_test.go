package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"readquest_backend/internals/configs"
	"readquest_backend/internals/constants"
	userModel "readquest_backend/internals/features/users/users/model"
)

func TestIssueAccessToken(t *testing.T) {
	orig := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = orig })

	user := &userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "Jamie Reyes",
		UserRole: constants.RoleEducator,
	}

	signed, err := IssueAccessToken(user)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse signed token: %v", err)
	}

	if got := claims["sub"]; got != user.UserID.String() {
		t.Errorf("sub = %v, want %v", got, user.UserID)
	}
	if got := claims["role"]; got != constants.RoleEducator {
		t.Errorf("role = %v, want %v", got, constants.RoleEducator)
	}
	if got := claims["user_name"]; got != "Jamie Reyes" {
		t.Errorf("user_name = %v, want Jamie Reyes", got)
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Errorf("exp claim missing or wrong type: %v", claims["exp"])
	}
}

func TestIssueAccessTokenWithoutSecret(t *testing.T) {
	orig := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = orig })

	if _, err := IssueAccessToken(&userModel.UserModel{UserID: uuid.New()}); err == nil {
		t.Fatal("expected an error with no secret configured")
	}
}
