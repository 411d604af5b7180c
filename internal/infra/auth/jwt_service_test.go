package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrcore/config"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.JWT = secret
	cfg.Session.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.TTL = time.Hour

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_SignAndVerify(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	token, err := svc.Sign(42, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_SignMintsDistinctTokens(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	// Back-to-back signs land in the same second, so iat/exp alone would
	// reproduce the same bytes. The token id must keep them apart.
	first, err := svc.Sign(42, "ana@example.com")
	require.NoError(t, err)
	second, err := svc.Sign(42, "ana@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	claims, err := svc.Verify(second)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	signer := newTestJWTService(t, "secret-a", time.Hour)
	verifier := newTestJWTService(t, "secret-b", time.Hour)

	token, err := signer.Sign(7, "luis@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)

	// A forged signature must fail even on the loose path.
	_, err = verifier.VerifyLoose(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsMalformedToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)

	_, err = svc.VerifyLoose("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_VerifyLooseAcceptsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", -time.Minute)

	token, err := svc.Sign(7, "luis@example.com")
	require.NoError(t, err)

	// The strict path must refuse the stale token.
	_, err = svc.Verify(token)
	require.Error(t, err)

	// The loose path must still surface the authentic identity.
	claims, err := svc.VerifyLoose(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "luis@example.com", claims.Email)
}

func TestJWTService_TTL(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 30*time.Minute)
	assert.Equal(t, 30*time.Minute, svc.TTL())
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("s3cr3t")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cr3t", hash)

	assert.True(t, hasher.Check("s3cr3t", hash))
	assert.False(t, hasher.Check("wrong", hash))
}
