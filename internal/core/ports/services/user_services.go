package services

import (
	"context"

	"github.com/parishlife/parish_community_app/internal/core/domain"
	"github.com/parishlife/parish_community_app/internal/dto"
)

// UserSvcFacade exposes profile reads and updates.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}
