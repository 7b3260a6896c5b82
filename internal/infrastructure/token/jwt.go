package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength é o tamanho mínimo do segredo HS256 (256 bits)
const MinSecretLength = 32

// DefaultLifetime é a validade padrão de um token emitido
const DefaultLifetime = 24 * time.Hour

var (
	// ErrInvalidToken é o único erro devolvido por Verify, qualquer que seja a falha
	ErrInvalidToken = errors.New("invalid token")
	ErrWeakSecret   = fmt.Errorf("jwt secret must have at least %d bytes", MinSecretLength)
)

// Service emite e verifica tokens JWT assinados com HS256.
// Não há lista de revogação: logout é descartar o token no cliente.
type Service struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// Option configura o Service
type Option func(*Service)

// WithClock injeta o relógio usado na emissão e na verificação
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService cria um Service. lifetime <= 0 usa DefaultLifetime.
func NewService(secret string, lifetime time.Duration, opts ...Option) (*Service, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}

	s := &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue emite um token para subject (o email do usuário)
func (s *Service) Issue(subject string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify valida assinatura, algoritmo e expiração e devolve o subject
func (s *Service) Verify(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// IsExpired retorna true quando o token expirou ou não pode ser verificado
func (s *Service) IsExpired(tokenString string) bool {
	_, err := s.parse(tokenString)
	return err != nil
}

// Lifetime retorna a validade configurada
func (s *Service) Lifetime() time.Duration {
	return s.lifetime
}

func (s *Service) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
