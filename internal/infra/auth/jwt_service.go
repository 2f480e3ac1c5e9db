package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"budget/config"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/domain/service"
	"budget/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.Auth.JWT, time.Now)
}

func newJWTService(cfg config.JWTConfig, now func() time.Time) (*jwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.ExpirationInterval <= 0 {
		return nil, errors.New("jwt expiration interval must be positive")
	}

	return &jwtService{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.ExpirationInterval,
		now:      now,
	}, nil
}

// Issue signs a token carrying the user id and roles.
func (s *jwtService) Issue(userID int, roles []string) (string, error) {
	issuedAt := s.now()
	claims := service.Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a signed token.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrExpiredToken, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	// A token is no longer valid at the exact second it expires.
	if !s.now().Before(claims.ExpiresAt.Time) {
		return nil, errors.WithStack(domainerrors.ErrExpiredToken)
	}
	if claims.UserID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token carries no user id")
	}

	return claims, nil
}

// ExpirationInterval returns the configured token lifetime.
func (s *jwtService) ExpirationInterval() time.Duration {
	return s.ttl
}
