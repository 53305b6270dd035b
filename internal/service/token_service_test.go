package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-wagering"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "wagering-engine")
	playerID := uuid.New()
	walletID := uuid.New()

	token, expiresAt, err := svc.Generate(playerID, walletID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, playerID, claims.PlayerID)
	assert.Equal(t, walletID, claims.WalletID)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "wagering-engine")
	other := NewJWTTokenService("a-different-secret", time.Hour, "wagering-engine")

	token, _, err := svc.Generate(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, -time.Minute, "wagering-engine")

	token, _, err := svc.Generate(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "wagering-engine")

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_MissingWalletClaim(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "wagering-engine")

	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing wallet claim")
}

func TestJWTTokenService_Validate_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, time.Hour, "wagering-engine")

	claims := jwt.MapClaims{
		"sub":       uuid.New().String(),
		"wallet_id": uuid.New().String(),
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}
