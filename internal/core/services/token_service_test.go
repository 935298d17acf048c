package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/core/services"
	"github.com/parishlife/parish_community_app/internal/platform/config"
	"github.com/parishlife/parish_community_app/internal/utils"
)

type TokenServiceTestSuite struct {
	suite.Suite
	refreshRepo *MockRefreshTokenRepository
	cfg         *config.Config
	service     portssvc.TokenSvcFacade
	ctx         context.Context
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.refreshRepo = new(MockRefreshTokenRepository)
	s.cfg = &config.Config{
		JWTSecret:          "unit-test-secret",
		JWTIssuer:          "parish-test",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
	}
	s.service = services.NewTokenService(s.refreshRepo, s.cfg)
	s.ctx = context.Background()
}

func (s *TokenServiceTestSuite) TestIssueTokenPairPersistsHashedRefreshToken() {
	var saved domain.RefreshToken
	s.refreshRepo.On("SaveRefreshToken", s.ctx, mock.AnythingOfType("domain.RefreshToken")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.RefreshToken) }).
		Return(nil)

	pair, err := s.service.IssueTokenPair(s.ctx, "user-1")

	s.Require().NoError(err)
	s.NotEmpty(pair.AccessToken)
	s.NotEmpty(pair.RefreshToken)
	s.Equal("user-1", saved.UserID)
	// Only the hash hits storage; the raw token must not appear in the row.
	s.Equal(utils.HashRefreshToken(pair.RefreshToken), saved.TokenHash)
	s.NotEqual(pair.RefreshToken, saved.TokenHash)
	s.False(saved.IsRevoked)

	subject, err := s.service.VerifyAccessToken(pair.AccessToken)
	s.Require().NoError(err)
	s.Equal("user-1", subject)
}

func (s *TokenServiceTestSuite) TestVerifyAccessTokenRejectsRefreshToken() {
	s.refreshRepo.On("SaveRefreshToken", s.ctx, mock.Anything).Return(nil)
	pair, err := s.service.IssueTokenPair(s.ctx, "user-1")
	s.Require().NoError(err)

	_, err = s.service.VerifyAccessToken(pair.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestRotateRevokesPresentedToken() {
	var saved []domain.RefreshToken
	s.refreshRepo.On("SaveRefreshToken", s.ctx, mock.AnythingOfType("domain.RefreshToken")).
		Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(domain.RefreshToken)) }).
		Return(nil)

	pair, err := s.service.IssueTokenPair(s.ctx, "user-1")
	s.Require().NoError(err)
	stored := saved[0]

	s.refreshRepo.On("FindRefreshTokenByHash", s.ctx, stored.TokenHash).Return(&stored, nil)
	s.refreshRepo.On("RevokeRefreshToken", s.ctx, stored.TokenID).Return(nil)
	s.refreshRepo.On("TouchLastUsed", s.ctx, stored.TokenID, mock.AnythingOfType("time.Time")).Return(nil)

	next, err := s.service.RotateRefreshToken(s.ctx, pair.RefreshToken)

	s.Require().NoError(err)
	s.NotEmpty(next.AccessToken)
	s.NotEmpty(next.RefreshToken)
	s.refreshRepo.AssertCalled(s.T(), "RevokeRefreshToken", s.ctx, stored.TokenID)
	s.Len(saved, 2)
	s.Equal("user-1", saved[1].UserID)
}

func (s *TokenServiceTestSuite) TestRotateRejectsRevokedToken() {
	s.refreshRepo.On("SaveRefreshToken", s.ctx, mock.Anything).Return(nil)
	pair, err := s.service.IssueTokenPair(s.ctx, "user-1")
	s.Require().NoError(err)

	stored := &domain.RefreshToken{
		TokenID:   "tok-1",
		UserID:    "user-1",
		TokenHash: utils.HashRefreshToken(pair.RefreshToken),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		IsRevoked: true,
	}
	s.refreshRepo.On("FindRefreshTokenByHash", s.ctx, stored.TokenHash).Return(stored, nil)

	_, err = s.service.RotateRefreshToken(s.ctx, pair.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.refreshRepo.AssertNotCalled(s.T(), "RevokeRefreshToken", mock.Anything, mock.Anything)
}

func (s *TokenServiceTestSuite) TestRotateRejectsUnknownToken() {
	s.refreshRepo.On("SaveRefreshToken", s.ctx, mock.Anything).Return(nil)
	pair, err := s.service.IssueTokenPair(s.ctx, "user-1")
	s.Require().NoError(err)

	s.refreshRepo.On("FindRefreshTokenByHash", s.ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)

	_, err = s.service.RotateRefreshToken(s.ctx, pair.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestRotateRejectsStoredRowPastExpiry() {
	s.refreshRepo.On("SaveRefreshToken", s.ctx, mock.Anything).Return(nil)
	pair, err := s.service.IssueTokenPair(s.ctx, "user-1")
	s.Require().NoError(err)

	stored := &domain.RefreshToken{
		TokenID:   "tok-1",
		UserID:    "user-1",
		TokenHash: utils.HashRefreshToken(pair.RefreshToken),
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	s.refreshRepo.On("FindRefreshTokenByHash", s.ctx, stored.TokenHash).Return(stored, nil)

	_, err = s.service.RotateRefreshToken(s.ctx, pair.RefreshToken)
	s.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (s *TokenServiceTestSuite) TestRotateRejectsExpiredJWT() {
	expired, err := utils.GenerateToken("user-1", utils.TokenTypeRefresh, s.cfg.JWTSecret, s.cfg.JWTIssuer, -time.Minute)
	s.Require().NoError(err)

	_, err = s.service.RotateRefreshToken(s.ctx, expired)
	s.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	s.refreshRepo.AssertNotCalled(s.T(), "FindRefreshTokenByHash", mock.Anything, mock.Anything)
}

func (s *TokenServiceTestSuite) TestRotateRejectsAccessTokenPresentedAsRefresh() {
	s.refreshRepo.On("SaveRefreshToken", s.ctx, mock.Anything).Return(nil)
	pair, err := s.service.IssueTokenPair(s.ctx, "user-1")
	s.Require().NoError(err)

	_, err = s.service.RotateRefreshToken(s.ctx, pair.AccessToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *TokenServiceTestSuite) TestRotateRejectsSubjectMismatch() {
	s.refreshRepo.On("SaveRefreshToken", s.ctx, mock.Anything).Return(nil)
	pair, err := s.service.IssueTokenPair(s.ctx, "user-1")
	s.Require().NoError(err)

	stored := &domain.RefreshToken{
		TokenID:   "tok-1",
		UserID:    "someone-else",
		TokenHash: utils.HashRefreshToken(pair.RefreshToken),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	s.refreshRepo.On("FindRefreshTokenByHash", s.ctx, stored.TokenHash).Return(stored, nil)

	_, err = s.service.RotateRefreshToken(s.ctx, pair.RefreshToken)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.refreshRepo.AssertNotCalled(s.T(), "RevokeRefreshToken", mock.Anything, mock.Anything)
}

func (s *TokenServiceTestSuite) TestRevokeAll() {
	s.refreshRepo.On("RevokeAllForUser", s.ctx, "user-1").Return(nil)
	s.NoError(s.service.RevokeAll(s.ctx, "user-1"))
	s.refreshRepo.AssertExpectations(s.T())
}

func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
