package helpers

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"gopkg.in/go-playground/assert.v1"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SECRET_KEY = "unit-test-secret"

	token, refreshToken, err := GenerateAllTokens("guest@example.com", "Guest", "uid-1", "CUSTOMER")
	assert.Equal(t, err, nil)
	if token == "" || refreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}

	claims, err := ValidateToken(token)
	assert.Equal(t, err, nil)
	assert.Equal(t, claims.Email, "guest@example.com")
	assert.Equal(t, claims.Name, "Guest")
	assert.Equal(t, claims.Uid, "uid-1")
	assert.Equal(t, claims.User_role, "CUSTOMER")
}

func TestValidateTokenFailsClosed(t *testing.T) {
	SECRET_KEY = "unit-test-secret"

	_, err := ValidateToken("not-a-token")
	if err == nil {
		t.Fatal("expected a malformed token to be rejected")
	}

	_, err = ValidateToken("")
	if err == nil {
		t.Fatal("expected an empty token to be rejected")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	SECRET_KEY = "unit-test-secret"
	token, _, err := GenerateAllTokens("guest@example.com", "Guest", "uid-1", "CUSTOMER")
	assert.Equal(t, err, nil)

	SECRET_KEY = "rotated-secret"
	_, err = ValidateToken(token)
	if err == nil {
		t.Fatal("expected a token signed with another secret to be rejected")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	SECRET_KEY = "unit-test-secret"

	claim := SignedDetails{
		Email:     "guest@example.com",
		Uid:       "uid-1",
		User_role: "CUSTOMER",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(SECRET_KEY))
	assert.Equal(t, err, nil)

	_, err = ValidateToken(expired)
	if err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}
