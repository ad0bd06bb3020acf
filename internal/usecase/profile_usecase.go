package usecase

import (
	"context"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, session domain.Session) (*domain.Profile, error)
	ListUsers(ctx context.Context, page, limit int32, actor domain.Actor) ([]*domain.Profile, int64, error)
	ChangeRole(ctx context.Context, profileID string, role domain.Role, actor domain.Actor) error
}

type DefaultProfileUsecase struct {
	ProfileRepo domain.ProfileRepository
}

func NewDefaultProfileUsecase(profileRepo domain.ProfileRepository) *DefaultProfileUsecase {
	return &DefaultProfileUsecase{ProfileRepo: profileRepo}
}

func (uc *DefaultProfileUsecase) GetProfile(ctx context.Context, session domain.Session) (*domain.Profile, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return uc.ProfileRepo.GetProfileByID(ctx, session.UserID)
}

func (uc *DefaultProfileUsecase) ListUsers(ctx context.Context, page, limit int32, actor domain.Actor) ([]*domain.Profile, int64, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, 0, domain.ErrForbidden
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return uc.ProfileRepo.ListProfiles(ctx, page, limit)
}

// ChangeRole flips a user between customer and admin. Admins cannot demote
// themselves to avoid locking the back office out.
func (uc *DefaultProfileUsecase) ChangeRole(ctx context.Context, profileID string, role domain.Role, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return domain.ErrForbidden
	}
	if actor.ID == profileID && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if _, err := uc.ProfileRepo.GetProfileByID(ctx, profileID); err != nil {
		return err
	}
	return uc.ProfileRepo.UpdateRole(ctx, profileID, role)
}
