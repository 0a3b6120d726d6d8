package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const issuer = "coderr"

var ErrInvalidToken = errors.New("invalid token")

type JWTServiceInterface interface {
	GenerateJWT(caller domain.Caller, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID  int    `json:"user_id"`
	Role    string `json:"role"`
	IsStaff bool   `json:"is_staff,omitempty"`
	IsGuest bool   `json:"guest,omitempty"`
	jwt.StandardClaims
}

func (c *Claims) Caller() domain.Caller {
	return domain.Caller{
		UserID:  c.UserID,
		Role:    domain.Role(c.Role),
		IsStaff: c.IsStaff,
		IsGuest: c.IsGuest,
	}
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(caller domain.Caller, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID:  caller.UserID,
		Role:    string(caller.Role),
		IsStaff: caller.IsStaff,
		IsGuest: caller.IsGuest,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer || !domain.Role(claims.Role).Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
