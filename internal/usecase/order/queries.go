package usecase

import (
	"context"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	orderdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}

func (uc *DefaultOrderUsecase) GetUserOrders(ctx context.Context, input *orderdto.ListOrdersInput) ([]*domain.Order, int64, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.OrderRepo.GetOrdersByUserID(ctx, input.UserID, page, limit, input.SortBy, input.SortOrder)
}

func (uc *DefaultOrderUsecase) GetAllOrders(ctx context.Context, input *orderdto.AdminListOrdersInput) ([]*domain.Order, int64, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return uc.OrderRepo.GetAllOrders(ctx, &input.Filters, page, limit)
}
