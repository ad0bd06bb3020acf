package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProfileRepository struct {
	DB *gorm.DB
}

func NewDefaultProfileRepository(db *gorm.DB) *DefaultProfileRepository {
	return &DefaultProfileRepository{DB: db}
}

func (r *DefaultProfileRepository) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	var profileModel models.ProfileModel
	if err := dbFrom(ctx, r.DB).First(&profileModel, "id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProfile(&profileModel), nil
}

func (r *DefaultProfileRepository) ListProfiles(ctx context.Context, page, limit int32) ([]*domain.Profile, int64, error) {
	var profileModels []models.ProfileModel
	var total int64

	baseQuery := dbFrom(ctx, r.DB).Model(&models.ProfileModel{})
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&profileModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find profiles: %w", err)
	}

	profiles := make([]*domain.Profile, len(profileModels))
	for i, profileModel := range profileModels {
		profiles[i] = mappers.ToDomainProfile(&profileModel)
	}

	return profiles, total, nil
}

func (r *DefaultProfileRepository) UpdateRole(ctx context.Context, profileID string, role domain.Role) error {
	result := dbFrom(ctx, r.DB).Model(&models.ProfileModel{}).
		Where("id = ?", profileID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *DefaultProfileRepository) CountProfiles(ctx context.Context) (int64, error) {
	var total int64
	if err := dbFrom(ctx, r.DB).Model(&models.ProfileModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
