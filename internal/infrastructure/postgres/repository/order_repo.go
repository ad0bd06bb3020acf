package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := dbFrom(ctx, r.DB).Create(orderModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := dbFrom(ctx, r.DB).Preload("Items").First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus) error {
	result := dbFrom(ctx, r.DB).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", newStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) SetPaymentDetails(ctx context.Context, orderID, provider, reference string) error {
	result := dbFrom(ctx, r.DB).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_provider":  provider,
			"payment_reference": reference,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrdersByUserID(
	ctx context.Context,
	userID string,
	page, limit int64,
	sortBy, sortOrder string,
) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	safeSortBy := "created_at"
	switch sortBy {
	case "total_amount":
		safeSortBy = "total_amount"
	case "updated_at":
		safeSortBy = "updated_at"
	case "created_at":
		safeSortBy = "created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := dbFrom(ctx, r.DB).Model(&models.OrderModel{}).
		Where("user_id = ?", userID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Preload("Items").
		Order(fmt.Sprintf("%s %s", safeSortBy, safeSortOrder)).
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) GetAllOrders(
	ctx context.Context,
	filters *domain.OrderFilters,
	page, limit int32,
) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := dbFrom(ctx, r.DB).Model(&models.OrderModel{})

	if filters != nil {
		if filters.OrderID != "" {
			baseQuery = baseQuery.Where("id = ?", filters.OrderID)
		}
		if filters.UserID != "" {
			baseQuery = baseQuery.Where("user_id = ?", filters.UserID)
		}
		if len(filters.Statuses) > 0 {
			baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
		}
		if filters.MinTotal > 0 {
			baseQuery = baseQuery.Where("total_amount >= ?", filters.MinTotal)
		}
		if filters.MaxTotal > 0 {
			baseQuery = baseQuery.Where("total_amount <= ?", filters.MaxTotal)
		}
		if !filters.DateFrom.IsZero() {
			baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
		}
		if !filters.DateTo.IsZero() {
			baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
		}
		if filters.Reference != "" {
			baseQuery = baseQuery.Where("payment_reference = ?", filters.Reference)
		}
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Preload("Items").
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) FindStaleOrders(ctx context.Context, olderThan time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := dbFrom(ctx, r.DB).
		Where("status IN (?)", []domain.OrderStatus{domain.OrderPending, domain.OrderPaymentPending}).
		Where("created_at < ?", olderThan).
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

func (r *DefaultOrderRepository) SumTotalsByStatus(ctx context.Context, statuses []domain.OrderStatus) (float64, error) {
	var sum *float64
	err := dbFrom(ctx, r.DB).Model(&models.OrderModel{}).
		Where("status IN (?)", statuses).
		Select("SUM(total_amount)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *DefaultOrderRepository) CountByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	var rows []struct {
		Status domain.OrderStatus
		Count  int64
	}
	err := dbFrom(ctx, r.DB).Model(&models.OrderModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
