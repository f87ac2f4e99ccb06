package auth

import (
	"strings"
	"testing"
	"time"

	"planner/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestJWTService(t *testing.T, secret string, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := newJWTService(secret, DefaultTokenTTL, clock.Now)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, testSecret, clock)

	token, err := svc.Issue("Julia Lalala", "julia@gmail.com", "user123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "Julia Lalala", claims.Name)
	assert.Equal(t, "julia@gmail.com", claims.Email)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "user123", claims.Subject)
	assert.Equal(t, clock.now.Add(2*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_ExpiresAfterTwoHours(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, testSecret, clock)

	token, err := svc.Issue("Julia Lalala", "julia@gmail.com", "user123")
	require.NoError(t, err)

	clock.Advance(2*time.Hour - time.Minute)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	clock.Advance(2 * time.Minute)
	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	issuer := newTestJWTService(t, testSecret, clock)
	verifier := newTestJWTService(t, "a_completely_different_secret_value", clock)

	token, err := issuer.Issue("Julia Lalala", "julia@gmail.com", "user123")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_TamperedToken(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, testSecret, clock)

	token, err := svc.Issue("Julia Lalala", "julia@gmail.com", "user123")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "someone-else", "exp": clock.now.Add(time.Hour).Unix()})
	forgedString, err := forged.SignedString([]byte("attacker"))
	require.NoError(t, err)
	forgedParts := strings.Split(forgedString, ".")

	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]
	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherSigningMethods(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, testSecret, clock)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  "user123",
		"exp": clock.now.Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.Error(t, err)
}

func TestJWTService_RequiresExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, testSecret, clock)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "user123"})
	tokenString, err := noExp.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, testSecret, &fakeClock{now: time.Now()})

	// Test invalid token - using clearly non-JWT format
	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse access token")
}

func TestJWTService_EmptySecret(t *testing.T) {
	// Should fail to create service
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: config.AuthConfig{TokenSecret: testSecret}})
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenTTL, svc.(*jwtService).ttl)
}
