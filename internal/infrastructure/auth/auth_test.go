package auth

import (
	"testing"
	"time"

	"mass_oss/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	s := NewService("secret")
	token, err := s.GenerateToken(Principal{
		Subject:     "u-1",
		Role:        entities.RoleTechnician,
		OrgID:       "org-1",
		Permissions: []string{"work_orders.create"},
	}, time.Hour)
	require.NoError(t, err)

	p, err := s.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.Subject)
	assert.Equal(t, entities.RoleTechnician, p.Role)
	assert.Equal(t, "org-1", p.OrgID)
	assert.True(t, p.Can(entities.PermWorkOrdersCreate))
	assert.False(t, p.Can(entities.PermWorkOrdersDelete))
}

func TestService_ValidateToken_Errors(t *testing.T) {
	s := NewService("secret")

	_, err := s.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = s.ValidateToken("Bearer not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := s.GenerateToken(Principal{Subject: "u-1", Role: entities.RoleStaff}, -time.Minute)
	require.NoError(t, err)
	_, err = s.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	other, err := NewService("other").GenerateToken(Principal{Subject: "u-1", Role: entities.RoleStaff}, time.Hour)
	require.NoError(t, err)
	_, err = s.ValidateToken(other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u-1",
		"role": "owner",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = s.ValidateToken(badRole)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPrincipal_CanAccessOrg(t *testing.T) {
	assert.True(t, Operator.CanAccessOrg("org-1"))
	assert.True(t, Principal{Role: entities.RoleStaff, OrgID: "org-1"}.CanAccessOrg("org-1"))
	assert.False(t, Principal{Role: entities.RoleStaff, OrgID: "org-1"}.CanAccessOrg("org-2"))
	assert.False(t, Principal{Role: entities.RoleAdmin, OrgID: "org-1"}.CanAccessOrg("org-2"))
	assert.False(t, Principal{Role: entities.RoleStaff}.CanAccessOrg("org-1"))
}
