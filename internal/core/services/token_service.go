package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portsrepo "github.com/parishlife/parish_community_app/internal/core/ports/repositories"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/middleware"
	"github.com/parishlife/parish_community_app/internal/platform/config"
	"github.com/parishlife/parish_community_app/internal/utils"
)

type tokenService struct {
	refreshRepo portsrepo.RefreshTokenRepository
	cfg         *config.Config
}

// NewTokenService builds the JWT pair issuer backed by the refresh token
// store.
func NewTokenService(refreshRepo portsrepo.RefreshTokenRepository, cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{refreshRepo: refreshRepo, cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	accessToken, err := utils.GenerateToken(userID, utils.TokenTypeAccess, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.AccessTokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := utils.GenerateToken(userID, utils.TokenTypeRefresh, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.RefreshTokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	now := time.Now().UTC()
	row := domain.RefreshToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		TokenHash: utils.HashRefreshToken(refreshToken),
		ExpiresAt: now.Add(s.cfg.RefreshTokenExpiry),
		CreatedAt: now,
		LastUsed:  now,
	}
	if err := s.refreshRepo.SaveRefreshToken(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *tokenService) RotateRefreshToken(ctx context.Context, rawRefreshToken string) (*domain.TokenPair, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	claims, err := utils.ParseAndValidateToken(rawRefreshToken, s.cfg.JWTSecret, utils.TokenTypeRefresh)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrRefreshTokenExpired
		}
		logger.Warn("Refresh token failed verification", slog.String("error", err.Error()))
		return nil, fmt.Errorf("invalid refresh token: %w", apperrors.ErrUnauthorized)
	}

	stored, err := s.refreshRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(rawRefreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("refresh token not recognized: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored.IsRevoked {
		logger.Warn("Revoked refresh token presented", slog.String("user_id", stored.UserID))
		return nil, fmt.Errorf("refresh token revoked: %w", apperrors.ErrUnauthorized)
	}
	now := time.Now().UTC()
	if now.After(stored.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if stored.UserID != claims.Subject {
		logger.Error("Refresh token subject mismatch", slog.String("token_id", stored.TokenID))
		return nil, fmt.Errorf("refresh token subject mismatch: %w", apperrors.ErrUnauthorized)
	}

	// Rotation: the presented token is revoked and a fresh pair issued, so
	// each refresh token is usable exactly once.
	if err := s.refreshRepo.RevokeRefreshToken(ctx, stored.TokenID); err != nil {
		return nil, fmt.Errorf("failed to revoke superseded refresh token: %w", err)
	}
	if err := s.refreshRepo.TouchLastUsed(ctx, stored.TokenID, now); err != nil {
		logger.Warn("Failed to update refresh token last_used", slog.String("error", err.Error()))
	}

	return s.IssueTokenPair(ctx, stored.UserID)
}

func (s *tokenService) RevokeAll(ctx context.Context, userID string) error {
	if err := s.refreshRepo.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

func (s *tokenService) VerifyAccessToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateToken(tokenString, s.cfg.JWTSecret, utils.TokenTypeAccess)
	if err != nil {
		return "", fmt.Errorf("invalid access token: %w", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}
