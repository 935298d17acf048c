package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/parishlife/parish_community_app/internal/apperrors"
	"github.com/parishlife/parish_community_app/internal/core/domain"
	portssvc "github.com/parishlife/parish_community_app/internal/core/ports/services"
	"github.com/parishlife/parish_community_app/internal/core/services"
	"github.com/parishlife/parish_community_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.userRepo)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestGetUserByID() {
	user := &domain.User{UserID: "user-1", Username: "member"}
	s.userRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)

	got, err := s.service.GetUserByID(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("member", got.Username)
}

func (s *UserServiceTestSuite) TestGetUserByIDNotFound() {
	s.userRepo.On("FindUserByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.GetUserByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestUpdateProfilePatchesOnlyProvidedFields() {
	user := &domain.User{UserID: "user-1", Name: "Old Name", Phone: "+111"}
	s.userRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)

	var updated domain.User
	s.userRepo.On("UpdateUser", s.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.User) }).
		Return(nil)

	newName := "New Name"
	got, err := s.service.UpdateProfile(s.ctx, "user-1", dto.UpdateProfileRequest{Name: &newName})

	s.Require().NoError(err)
	s.Equal("New Name", updated.Name)
	s.Equal("+111", updated.Phone)
	s.Equal("New Name", got.Name)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
