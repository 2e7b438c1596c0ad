package authenticating

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/event-dashboard-api/internal/config"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Authenticator valida tokens emitidos pelo provedor de identidade
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IsAdmin(claims *domain.Claims) bool
}

type Service struct {
	secret    []byte
	adminRole string
	parser    *jwt.Parser
}

func NewService(cfg config.Auth) Authenticator {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{
		jwt.SigningMethodHS256.Alg(),
		jwt.SigningMethodHS384.Alg(),
		jwt.SigningMethodHS512.Alg(),
	})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Service{
		secret:    []byte(cfg.Secret),
		adminRole: cfg.AdminRole,
		parser:    jwt.NewParser(opts...),
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, &AuthError{Err: ErrMissingToken, Code: apiErrors.ErrMissingToken}
	}

	token, err := s.parser.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &AuthError{Err: ErrExpiredToken, Code: apiErrors.ErrExpiredToken, Details: err.Error()}
		}
		return nil, &AuthError{Err: ErrInvalidToken, Code: apiErrors.ErrInvalidToken, Details: err.Error()}
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, &AuthError{Err: ErrInvalidToken, Code: apiErrors.ErrInvalidToken}
	}
	return claims, nil
}

func (s *Service) IsAdmin(claims *domain.Claims) bool {
	return claims != nil && s.adminRole != "" && claims.Role == s.adminRole
}
