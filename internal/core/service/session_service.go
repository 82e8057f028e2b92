package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService implements the mock login. Any name and email are accepted;
// the issued token is only valid while its user is the active one.
type SessionService struct {
	store     ports.StateStore
	clock     ports.Clock
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(store ports.StateStore, clock ports.Clock, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = defaultSessionTTL
	}
	return &SessionService{store: store, clock: clock, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *SessionService) Login(ctx context.Context, name, email string) (string, *domain.User, error) {
	if blank(name, email) {
		return "", nil, domain.ErrMissingFields
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	s.store.SetUser(ctx, user)
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return token, user, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	if s.store.User() == nil {
		return domain.ErrNoActiveUser
	}
	s.store.SetUser(ctx, nil)
	s.log.Info().Msg("user logged out")
	return nil
}

func (s *SessionService) Current(context.Context) (*domain.User, error) {
	u := s.store.User()
	if u == nil {
		return nil, domain.ErrNoActiveUser
	}
	return u, nil
}

// Authenticate accepts a token signed by this service whose subject is the
// active user. Tokens of logged-out users are rejected.
func (s *SessionService) Authenticate(_ context.Context, token string) (*domain.User, error) {
	claims := jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidSession
	}

	u := s.store.User()
	if u == nil {
		return nil, domain.ErrNoActiveUser
	}
	if u.ID != claims.Subject {
		return nil, domain.ErrInvalidSession
	}
	return u, nil
}

func (s *SessionService) generateToken(user *domain.User) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
}
