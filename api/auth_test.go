package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_parseSupabaseToken(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	signToken := func(claims jwt.MapClaims, key string) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(key))
		require.NoError(t, err)
		return signed
	}

	t.Run("valid token yields the subject user id", func(t *testing.T) {
		tokenStr := signToken(jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(time.Hour).Unix(),
		}, secret)

		parsed, err := parseSupabaseToken(tokenStr, secret)
		require.NoError(t, err)
		require.Equal(t, userID, parsed)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		tokenStr := signToken(jwt.MapClaims{"sub": userID.String()}, "other-secret")

		_, err := parseSupabaseToken(tokenStr, secret)
		require.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		tokenStr := signToken(jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		}, secret)

		_, err := parseSupabaseToken(tokenStr, secret)
		require.Error(t, err)
	})

	t.Run("missing subject is rejected", func(t *testing.T) {
		tokenStr := signToken(jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}, secret)

		_, err := parseSupabaseToken(tokenStr, secret)
		require.Error(t, err)
	})

	t.Run("non-uuid subject is rejected", func(t *testing.T) {
		tokenStr := signToken(jwt.MapClaims{
			"sub": "not-a-uuid",
			"exp": time.Now().Add(time.Hour).Unix(),
		}, secret)

		_, err := parseSupabaseToken(tokenStr, secret)
		require.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := parseSupabaseToken("not.a.token", secret)
		require.Error(t, err)
	})
}
