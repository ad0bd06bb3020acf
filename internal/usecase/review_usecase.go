package usecase

import (
	"context"
	"fmt"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type ReviewUsecase interface {
	SubmitReview(ctx context.Context, session domain.Session, review *domain.Review) (*domain.Review, error)
	ListProductReviews(ctx context.Context, productID string, session domain.Session) ([]*domain.Review, error)
	ListPendingReviews(ctx context.Context, actor domain.Actor) ([]*domain.Review, error)
	Moderate(ctx context.Context, reviewID string, approved, featured bool, actor domain.Actor) error
}

type DefaultReviewUsecase struct {
	ReviewRepo domain.ReviewRepository
	OrderRepo  domain.OrderRepository
}

func NewDefaultReviewUsecase(reviewRepo domain.ReviewRepository, orderRepo domain.OrderRepository) *DefaultReviewUsecase {
	return &DefaultReviewUsecase{ReviewRepo: reviewRepo, OrderRepo: orderRepo}
}

// SubmitReview stores an unapproved review. IsVerified is set when the author
// has a delivered order containing the product.
func (uc *DefaultReviewUsecase) SubmitReview(ctx context.Context, session domain.Session, review *domain.Review) (*domain.Review, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if review.ProductID == "" {
		return nil, domain.ErrProductNotFound
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("id generator: %w", err)
	}

	review.ID = idGenerator()
	review.UserID = session.UserID
	review.IsApproved = false
	review.FeaturedTestimonial = false
	review.IsVerified = uc.hasDeliveredPurchase(ctx, session.UserID, review.ProductID)

	if err := uc.ReviewRepo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (uc *DefaultReviewUsecase) hasDeliveredPurchase(ctx context.Context, userID, productID string) bool {
	orders, _, err := uc.OrderRepo.GetAllOrders(ctx, &domain.OrderFilters{
		UserID:   userID,
		Statuses: []domain.OrderStatus{domain.OrderDelivered},
	}, 1, 100)
	if err != nil {
		return false
	}
	for _, order := range orders {
		for _, item := range order.Items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}

// ListProductReviews returns approved reviews only, unless the caller is an
// admin.
func (uc *DefaultReviewUsecase) ListProductReviews(ctx context.Context, productID string, session domain.Session) ([]*domain.Review, error) {
	approvedOnly := !session.IsAdmin()
	return uc.ReviewRepo.ListReviewsByProduct(ctx, productID, approvedOnly)
}

func (uc *DefaultReviewUsecase) ListPendingReviews(ctx context.Context, actor domain.Actor) ([]*domain.Review, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.ReviewRepo.ListPendingReviews(ctx)
}

func (uc *DefaultReviewUsecase) Moderate(ctx context.Context, reviewID string, approved, featured bool, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if _, err := uc.ReviewRepo.GetReviewByID(ctx, reviewID); err != nil {
		return err
	}
	return uc.ReviewRepo.UpdateModeration(ctx, reviewID, approved, featured)
}
