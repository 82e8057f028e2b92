package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeservices/directory/internal/core/domain"
)

func newSessionFixture() (*SessionService, *fakeClock) {
	clk := newFakeClock()
	return NewSessionService(newSeededStore(), clk, "secret", time.Hour, zerolog.Nop()), clk
}

func TestSessionService_LoginIssuesToken(t *testing.T) {
	svc, _ := newSessionFixture()

	token, user, err := svc.Login(context.Background(), " Ayesha ", "ayesha@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, "Ayesha", user.Name)
	assert.NotEmpty(t, user.ID)

	claims := jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestSessionService_LoginRequiresFields(t *testing.T) {
	svc, _ := newSessionFixture()

	_, _, err := svc.Login(context.Background(), "Ayesha", " ")
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestSessionService_Authenticate(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "Ayesha", "ayesha@example.com")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSessionService_AuthenticateRejectsReplacedUser(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	old, _, err := svc.Login(ctx, "Ayesha", "a@example.com")
	require.NoError(t, err)
	_, _, err = svc.Login(ctx, "Bilal", "b@example.com")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, old)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionService_AuthenticateRejectsForeignSignature(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()
	_, user, err := svc.Login(ctx, "Ayesha", "a@example.com")
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: user.ID}).
		SignedString([]byte("other"))
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, forged)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionService_TokenExpires(t *testing.T) {
	svc, clk := newSessionFixture()
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "Ayesha", "a@example.com")
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)
	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionService_Logout(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "Ayesha", "a@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveUser)
	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrNoActiveUser)
	assert.ErrorIs(t, svc.Logout(ctx), domain.ErrNoActiveUser)
}
