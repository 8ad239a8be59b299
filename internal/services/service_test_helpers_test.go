package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/granapp/grana/internal/db"
)

// fakeClock lets tests move time past the recovery-code expiry window.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(delta)
}

// recordingMailer captures dispatched codes instead of sending email.
type recordingMailer struct {
	mu        sync.Mutex
	lastEmail string
	lastCode  int
	sendCount int
	failNext  bool
}

func (mailer *recordingMailer) SendRecoveryCode(ctx context.Context, toEmail string, toName string, code int, expiresAt time.Time) error {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if mailer.failNext {
		mailer.failNext = false
		return errors.New("smtp unavailable")
	}
	mailer.lastEmail = toEmail
	mailer.lastCode = code
	mailer.sendCount++
	return nil
}

func (mailer *recordingMailer) LastCode() int {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	return mailer.lastCode
}

type authFixture struct {
	service *AuthService
	repos   *db.Repositories
	clock   *fakeClock
	mailer  *recordingMailer
	issuer  *TokenIssuer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "grana-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mailer := &recordingMailer{}
	repos := db.NewRepositories(database)
	issuer := NewTokenIssuer([]byte("test-secret-key"), clock.Now)
	codes := NewRecoveryCodeGenerator(clock.Now)

	service := NewAuthService(
		repos.Users,
		repos.RefreshTokens,
		issuer,
		codes,
		mailer,
		clock.Now,
		DefaultAccessTokenTTL,
		DefaultRefreshTokenTTL,
	)

	return &authFixture{
		service: service,
		repos:   repos,
		clock:   clock,
		mailer:  mailer,
		issuer:  issuer,
	}
}
