package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ClinicDesk/models"
	"ClinicDesk/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized is returned for a wrong username or password and for an
// invalid session token.
var ErrUnauthorized = errors.New("unauthorized")

type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

/*
* Remove every existing account
* Store the new one with a bcrypt hash
 */
func (s *Service) CreateUser(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return invalid("username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Error hashing password")
		return err
	}
	acc := models.Account{Username: username, PasswordHash: string(hash), CreatedAt: s.now()}
	if err := s.store.Accounts.Replace(ctx, acc); err != nil {
		log.Error().Err(err).Msg("Error from Replace account")
		return err
	}
	return nil
}

func verifyPassword(hash, password string) error {
	if strings.TrimSpace(hash) == "" {
		return errors.New("stored password missing or invalid")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.New("password mismatch")
	}
	return nil
}

/*
* Fetch the account by username
* Verify the password
* Issue a signed session token
 */
func (s *Service) Login(ctx context.Context, form models.LoginForm) (string, error) {
	acc, err := s.store.Accounts.FindByUsername(ctx, form.Username)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str("username", form.Username).Msg("Login for unknown user")
		return "", ErrUnauthorized
	}
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByUsername")
		return "", err
	}
	if err := verifyPassword(acc.PasswordHash, form.Password); err != nil {
		log.Warn().Err(err).Str("username", form.Username).Msg("Login failed")
		return "", ErrUnauthorized
	}
	return s.newSessionToken(acc.Username)
}

func (s *Service) newSessionToken(username string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.SessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.SessionSecret))
	if err != nil {
		log.Error().Err(err).Msg("Error while generating the token")
		return "", err
	}
	return token, nil
}

// ParseSession validates a session token and returns the username it was
// issued for.
func (s *Service) ParseSession(token string) (string, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.opts.SessionSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return "", ErrUnauthorized
	}
	return claims.Username, nil
}

// SessionTTLSeconds is the cookie lifetime matching the token expiry.
func (s *Service) SessionTTLSeconds() int {
	return int(s.opts.SessionTTL.Seconds())
}
