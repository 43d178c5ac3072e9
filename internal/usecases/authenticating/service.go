package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-hourly-insights/internal/config"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	IssueToken(operator string, scopes []string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
		now:    time.Now,
	}
}

// IssueToken assina um token HS256 para o operador. ttl <= 0 usa 24h.
func (s *Service) IssueToken(operator string, scopes []string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	if operator == "" {
		return "", ErrMissingOperator
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Operator: operator,
		Scopes:   scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("erro ao assinar token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"operator":   operator,
		"scopes":     scopes,
		"expires_at": claims.ExpiresAt.Time,
	}).Info("Token emitido")

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
