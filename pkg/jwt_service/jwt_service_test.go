package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dustin-Locke/HealthAndwellness/internal/api"
	errorvalues "github.com/Dustin-Locke/HealthAndwellness/internal/error_values"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	jwtservice "github.com/Dustin-Locke/HealthAndwellness/pkg/jwt_service"
)

const secret = "test_secret"

func TestTokenRoundTrip(t *testing.T) {
	s := jwtservice.New(secret)
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}

	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(jwtservice.DefaultTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseRejectsForeignTokens(t *testing.T) {
	s := jwtservice.New(secret)
	user := &entity.User{ID: uuid.New()}
	sign := func(method jwt.SigningMethod, key string, exp time.Time) string {
		token, err := jwt.NewWithClaims(method, &api.JWTClaims{
			UserID: user.ID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		}).SignedString([]byte(key))
		require.NoError(t, err)
		return token
	}
	testCases := []struct {
		Desc  string
		Token string
	}{
		{"other secret", sign(jwt.SigningMethodHS256, "other_secret", time.Now().Add(time.Hour))},
		{"other method", sign(jwt.SigningMethodHS512, secret, time.Now().Add(time.Hour))},
		{"expired", sign(jwt.SigningMethodHS256, secret, time.Now().Add(-time.Minute))},
		{"garbage", "not.a.token"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
