// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and
// issuing/refreshing JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coderefine/internal/common"
	"github.com/dmitrijs2005/coderefine/internal/server/auth"
	"github.com/dmitrijs2005/coderefine/internal/server/config"
	"github.com/dmitrijs2005/coderefine/internal/server/models"
	"github.com/dmitrijs2005/coderefine/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
type UserService struct {
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new account. The same username and password always
// produce the same stored hash, so a repeated registration fails with
// common.ErrorAlreadyExists rather than silently minting a second account.
func (s *UserService) Register(ctx context.Context, userName string, password string) (*models.User, error) {
	if userName == "" || password == "" {
		return nil, common.ErrorEmptyInput
	}

	user := &models.User{UserName: userName, PasswordHash: hashPassword(password)}
	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Verify checks a username/password pair against the credential store.
// Unknown usernames yield common.ErrorNotFound and wrong passwords
// common.ErrorIncorrectPassword, so callers can distinguish the two even if
// the transport layer reports them identically.
func (s *UserService) Verify(ctx context.Context, userName string, password string) (*models.User, error) {
	if userName == "" || password == "" {
		return nil, common.ErrorEmptyInput
	}

	user, err := s.repomanager.Users().GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	if !checkPasswordHash(user.PasswordHash, hashPassword(password)) {
		return nil, common.ErrorIncorrectPassword
	}
	return user, nil
}

// Login verifies credentials and, on success, returns a new TokenPair.
func (s *UserService) Login(ctx context.Context, userName string, password string) (*TokenPair, error) {
	user, err := s.Verify(ctx, userName, password)
	if err != nil {
		return nil, err
	}
	return s.generateTokenPair(ctx, user.UserName)
}

// RefreshToken validates a refresh token, rotates it, and returns a fresh
// TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens()

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	if err := repo.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error deleting refresh token: %w", err)
	}
	return s.generateTokenPair(ctx, token.UserName)
}

// --- helpers below ---

// hashPassword returns the lowercase hex SHA-256 digest of the raw password.
// The hash is unsalted: identical passwords always map to identical stored
// values.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func checkPasswordHash(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

func (s *UserService) generateAccessToken(userName string) (string, error) {
	return auth.GenerateToken(userName, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userName string) (*TokenPair, error) {
	access, err := s.generateAccessToken(userName)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens().Create(ctx, userName, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
