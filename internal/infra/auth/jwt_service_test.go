package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget/config"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/service"
	"budget/internal/errors"
)

var testJWTConfig = config.JWTConfig{
	Audience:           "budget.test",
	Issuer:             "budget.test",
	Secret:             "test_secret_key_very_long_for_testing",
	ExpirationInterval: time.Hour,
}

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time { return c.current }

func newTestJWTService(t *testing.T, cfg config.JWTConfig) (*jwtService, *fakeClock) {
	t.Helper()

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(cfg, clock.Now)
	require.NoError(t, err)

	return svc, clock
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, _ := newTestJWTService(t, testJWTConfig)

	token, err := svc.Issue(7, []string{"user", "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "budget.test", claims.Issuer)
	assert.Equal(t, time.Hour, svc.ExpirationInterval())
}

func TestJWTService_Expiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		wantErr error
	}{
		{name: "just before expiry", advance: time.Hour - time.Second},
		{name: "at expiry", advance: time.Hour, wantErr: domainerrors.ErrExpiredToken},
		{name: "after expiry", advance: 2 * time.Hour, wantErr: domainerrors.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, clock := newTestJWTService(t, testJWTConfig)
			token, err := svc.Issue(1, []string{"user"})
			require.NoError(t, err)

			clock.current = clock.current.Add(tt.advance)

			_, err = svc.Verify(token)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc, _ := newTestJWTService(t, testJWTConfig)

	otherSecret := testJWTConfig
	otherSecret.Secret = "another_secret_entirely"
	otherIssuer := testJWTConfig
	otherIssuer.Issuer = "someone.else"
	otherAudience := testJWTConfig
	otherAudience.Audience = "someone.else"

	for name, cfg := range map[string]config.JWTConfig{
		"secret":   otherSecret,
		"issuer":   otherIssuer,
		"audience": otherAudience,
	} {
		t.Run(name, func(t *testing.T) {
			foreign, _ := newTestJWTService(t, cfg)
			token, err := foreign.Issue(1, []string{"user"})
			require.NoError(t, err)

			_, err = svc.Verify(token)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "got %v", err)
		})
	}
}

func TestJWTService_RejectsMalformedAndUnsignedTokens(t *testing.T) {
	svc, clock := newTestJWTService(t, testJWTConfig)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, service.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testJWTConfig.Issuer,
			Audience:  jwt.ClaimStrings{testJWTConfig.Audience},
			ExpiresAt: jwt.NewNumericDate(clock.current.Add(time.Hour)),
		},
	})
	noneToken, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c", noneToken} {
		_, err := svc.Verify(token)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "token %q got %v", token, err)
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.JWT = testJWTConfig
	cfg.Auth.JWT.Secret = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
