package auth

import (
	"testing"
	"time"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	first, err := jwtService.GenerateJWT(domain.Caller{UserID: 1, Role: domain.RoleCustomer}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	second, err := jwtService.GenerateJWT(domain.Caller{UserID: 1, Role: domain.RoleCustomer}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second, "every token carries its own id")
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	caller := domain.Caller{UserID: 123, Role: domain.RoleBusiness, IsGuest: true}

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(caller, time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Garbage token",
			setup:       func() string { return "invalid.token.string" },
			expectError: true,
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(caller, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				token, _ := NewJWTService("other").GenerateJWT(caller, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing user id",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signed, _ := token.SignedString([]byte(testSecret))
				return signed
			},
			expectError: true,
		},
		{
			name: "Unknown role",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(domain.Caller{UserID: 5, Role: "admin"}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, caller, claims.Caller())
			assert.NotEmpty(t, claims.Id)
		})
	}
}
