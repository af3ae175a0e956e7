package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/domain/admin"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

type Claims struct {
	AdminID uint                    `json:"admin_id"`
	Email   string                  `json:"email"`
	Name    string                  `json:"name"`
	Role    authorization.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 session tokens for the dashboard.
type JWTService struct {
	secret        []byte
	expiryMinutes int
}

func NewJWTService(secret string, expiryMinutes int) *JWTService {
	if expiryMinutes <= 0 {
		expiryMinutes = 60
	}
	return &JWTService{
		secret:        []byte(secret),
		expiryMinutes: expiryMinutes,
	}
}

// GenerateToken signs a session token for the admin. Tokens expire after the
// configured lifetime (one hour by default) and are not refreshable; the
// dashboard redirects to login on expiry.
func (s *JWTService) GenerateToken(a *admin.Admin) (string, time.Time, error) {
	now := biztime.NowUTC()
	expiresAt := now.Add(time.Duration(s.expiryMinutes) * time.Minute)

	claims := &Claims{
		AdminID: a.ID(),
		Email:   a.Email(),
		Name:    a.Name(),
		Role:    a.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
