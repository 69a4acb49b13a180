package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mass_oss/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingToken = errors.New("missing token")
)

// Principal is the caller behind a request.
type Principal struct {
	Subject     string
	Role        entities.Role
	OrgID       string
	Permissions []string
}

// Operator is the principal used when authentication is switched off.
var Operator = Principal{Subject: "operator", Role: entities.RoleAdmin}

func (p Principal) Can(perm entities.Permission) bool {
	return entities.HasPermission(p.Role, p.Permissions, perm)
}

// CanAccessOrg reports whether p may act on orgID. Only an admin without a
// home org crosses tenants.
func (p Principal) CanAccessOrg(orgID string) bool {
	if p.OrgID == "" {
		return p.Role == entities.RoleAdmin
	}
	return p.OrgID == orgID
}

type claims struct {
	Role        string   `json:"role"`
	OrgID       string   `json:"org_id,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Service validates and issues HS256 bearer tokens.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// GenerateToken signs a token for p, mostly for tests and local tooling.
func (s *Service) GenerateToken(p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Role:        string(p.Role),
		OrgID:       p.OrgID,
		Permissions: p.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// ValidateToken parses a token, with or without the "Bearer " prefix.
func (s *Service) ValidateToken(tokenString string) (Principal, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return Principal{}, ErrMissingToken
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrExpiredToken
		}
		return Principal{}, ErrInvalidToken
	}
	if !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	role, ok := entities.ParseRole(c.Role)
	if !ok || c.Subject == "" {
		return Principal{}, ErrInvalidToken
	}
	return Principal{
		Subject:     c.Subject,
		Role:        role,
		OrgID:       c.OrgID,
		Permissions: c.Permissions,
	}, nil
}
