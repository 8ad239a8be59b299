package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/granapp/grana/internal/models"
	"github.com/granapp/grana/internal/security"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdateName(userID uint, name string) error
	UpdatePassword(userID uint, passwordHash string) error
	SetRecoveryCode(userID uint, code int, expiresAt time.Time) error
	ClearRecoveryCode(userID uint) error
	FindByEmailAndValidRecoveryCode(email string, code int, now time.Time) (models.User, error)
}

type RefreshTokenStore interface {
	Create(userID uint, tokenHash string, expiresAt time.Time) error
	FindActive(tokenHash string, now time.Time) (models.RefreshToken, error)
	Revoke(tokenHash string, now time.Time) error
	RevokeAllForUser(userID uint, now time.Time) error
}

// TokenPair is returned by every operation that establishes a session.
type TokenPair struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

// AuthService orchestrates registration, login, refresh-token rotation, and
// the password-recovery flow. Per user the recovery flow moves through
// no-attempt, code-sent, code-verified, and back to no-attempt on reset.
type AuthService struct {
	users         AuthUserRepository
	refreshTokens RefreshTokenStore
	issuer        *TokenIssuer
	codes         *RecoveryCodeGenerator
	mailer        Mailer
	now           func() time.Time
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	users AuthUserRepository,
	refreshTokens RefreshTokenStore,
	issuer *TokenIssuer,
	codes *RecoveryCodeGenerator,
	mailer Mailer,
	now func() time.Time,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) *AuthService {
	if now == nil {
		now = time.Now
	}
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &AuthService{
		users:         users,
		refreshTokens: refreshTokens,
		issuer:        issuer,
		codes:         codes,
		mailer:        mailer,
		now:           now,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (service *AuthService) Register(ctx context.Context, name string, email string, password string) (TokenPair, error) {
	normalizedEmail := NormalizeEmail(email)

	exists, err := service.users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return TokenPair{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return TokenPair{}, ErrDuplicateEmail
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return TokenPair{}, fmt.Errorf("hash password: %w", err)
	}

	now := service.now()
	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        normalizedEmail,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := service.users.Create(&user); err != nil {
		return TokenPair{}, ErrDuplicateEmail
	}

	return service.issueTokenPair(&user)
}

// Login collapses unknown-email and wrong-password into one error so the
// response never acknowledges whether the account exists.
func (service *AuthService) Login(ctx context.Context, email string, password string) (TokenPair, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return TokenPair{}, ErrInvalidCredentials
	}

	return service.issueTokenPair(&user)
}

// Refresh rotates the presented refresh token: the old token is revoked and a
// fresh access/refresh pair is issued in its place.
func (service *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := service.issuer.Parse(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}

	now := service.now()
	tokenHash := HashToken(refreshToken)
	if _, err := service.refreshTokens.FindActive(tokenHash, now); err != nil {
		return TokenPair{}, ErrInvalidToken
	}

	user, err := service.users.FindByID(claims.UserID)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}

	if err := service.refreshTokens.Revoke(tokenHash, now); err != nil {
		return TokenPair{}, fmt.Errorf("revoke refresh token: %w", err)
	}

	return service.issueTokenPair(&user)
}

// Logout revokes the presented refresh token. An unknown token is not an
// error; logout is best effort.
func (service *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}
	return service.refreshTokens.Revoke(HashToken(refreshToken), service.now())
}

// SendRecoveryCode issues a fresh code/expiry pair, overwriting any prior one,
// and dispatches it to the user's registered address. A dispatch failure rolls
// the persisted code back so the caller never holds a valid undelivered code.
func (service *AuthService) SendRecoveryCode(ctx context.Context, email string) error {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownUser
		}
		return fmt.Errorf("find user: %w", err)
	}

	code, expiresAt, err := service.codes.Generate()
	if err != nil {
		return fmt.Errorf("generate recovery code: %w", err)
	}

	if err := service.users.SetRecoveryCode(user.ID, code, expiresAt); err != nil {
		return fmt.Errorf("persist recovery code: %w", err)
	}

	if err := service.mailer.SendRecoveryCode(ctx, user.Email, user.Name, code, expiresAt); err != nil {
		if clearErr := service.users.ClearRecoveryCode(user.ID); clearErr != nil {
			return fmt.Errorf("dispatch recovery code: %w (rollback failed: %v)", err, clearErr)
		}
		return fmt.Errorf("dispatch recovery code: %w", err)
	}

	return nil
}

// VerifyRecoveryCode checks the email/code/expiry three-way match without
// mutating state; the code is not consumed. A miss stays ambiguous between
// wrong and expired.
func (service *AuthService) VerifyRecoveryCode(ctx context.Context, email string, code int) error {
	if _, err := service.users.FindByEmailAndValidRecoveryCode(NormalizeEmail(email), code, service.now()); err != nil {
		return ErrInvalidOrExpiredCode
	}
	return nil
}

// ResetPassword re-validates the full three-way match even after a successful
// verify: a stale verification must not reset a password once the code has
// expired. On success the code is cleared and every outstanding refresh token
// is revoked.
func (service *AuthService) ResetPassword(ctx context.Context, email string, code int, newPassword string) error {
	now := service.now()
	user, err := service.users.FindByEmailAndValidRecoveryCode(NormalizeEmail(email), code, now)
	if err != nil {
		return ErrInvalidOrExpiredCode
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := service.users.UpdatePassword(user.ID, passwordHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if err := service.users.ClearRecoveryCode(user.ID); err != nil {
		return fmt.Errorf("clear recovery code: %w", err)
	}
	if err := service.refreshTokens.RevokeAllForUser(user.ID, now); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}

	return nil
}

func (service *AuthService) GetUser(ctx context.Context, userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUnknownUser
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) UpdateUserName(ctx context.Context, userID uint, name string) (models.User, error) {
	if err := service.users.UpdateName(userID, strings.TrimSpace(name)); err != nil {
		return models.User{}, fmt.Errorf("update name: %w", err)
	}
	return service.GetUser(ctx, userID)
}

func (service *AuthService) issueTokenPair(user *models.User) (TokenPair, error) {
	accessToken, err := service.issuer.Issue(user, service.accessTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, err := service.issuer.Issue(user, service.refreshTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}

	if err := service.refreshTokens.Create(user.ID, HashToken(refreshToken), service.now().Add(service.refreshTTL)); err != nil {
		return TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}
