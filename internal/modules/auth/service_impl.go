package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long a session token stays valid.
const TokenTTL = 24 * time.Hour

type service struct {
	passwordHash []byte
	jwtKey       []byte
	now          func() time.Time
}

// NewService creates an auth service. A plain password, when given, is hashed
// once here; otherwise passwordHash is used as a bcrypt hash. With neither,
// the service is disabled.
func NewService(password, passwordHash, secret string) (Service, error) {
	s := &service{jwtKey: []byte(secret), now: time.Now}
	switch {
	case password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		s.passwordHash = hash
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("admin password hash: %w", err)
		}
		s.passwordHash = []byte(passwordHash)
	}
	return s, nil
}

func (s *service) Enabled() bool { return len(s.passwordHash) > 0 }

func (s *service) Login(ctx context.Context, password string) (string, error) {
	if !s.Enabled() {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := &jwt.StandardClaims{
		Subject:   AdminSubject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *service) Verify(tokenString string) error {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid || claims.Subject != AdminSubject {
		return ErrInvalidCredentials
	}
	return nil
}
