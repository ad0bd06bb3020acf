package repository

import (
	"context"
	"errors"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReviewRepository struct {
	DB *gorm.DB
}

func NewDefaultReviewRepository(db *gorm.DB) *DefaultReviewRepository {
	return &DefaultReviewRepository{DB: db}
}

func (r *DefaultReviewRepository) CreateReview(ctx context.Context, review *domain.Review) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMReview(review)).Error
}

func (r *DefaultReviewRepository) GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	var reviewModel models.ReviewModel
	if err := dbFrom(ctx, r.DB).First(&reviewModel, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return mappers.ToDomainReview(&reviewModel), nil
}

func (r *DefaultReviewRepository) ListReviewsByProduct(ctx context.Context, productID string, approvedOnly bool) ([]*domain.Review, error) {
	query := dbFrom(ctx, r.DB).Where("product_id = ?", productID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}

	var reviewModels []models.ReviewModel
	if err := query.Order("created_at DESC").Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, len(reviewModels))
	for i, reviewModel := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&reviewModel)
	}

	return reviews, nil
}

func (r *DefaultReviewRepository) ListPendingReviews(ctx context.Context) ([]*domain.Review, error) {
	var reviewModels []models.ReviewModel
	err := dbFrom(ctx, r.DB).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, len(reviewModels))
	for i, reviewModel := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&reviewModel)
	}

	return reviews, nil
}

func (r *DefaultReviewRepository) UpdateModeration(ctx context.Context, reviewID string, approved, featured bool) error {
	result := dbFrom(ctx, r.DB).Model(&models.ReviewModel{}).
		Where("id = ?", reviewID).
		Updates(map[string]interface{}{
			"is_approved":          approved,
			"featured_testimonial": featured,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
