package usecase

import (
	"context"
	"fmt"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

// AnalyticsSummary is the admin dashboard aggregate. Revenue counts orders
// that were paid and entered fulfillment (processing or delivered).
type AnalyticsSummary struct {
	Revenue        float64                      `json:"revenue"`
	TotalOrders    int64                        `json:"total_orders"`
	TotalUsers     int64                        `json:"total_users"`
	ConversionRate float64                      `json:"conversion_rate"`
	OrdersByStatus map[domain.OrderStatus]int64 `json:"orders_by_status"`
}

type AnalyticsUsecase interface {
	Summary(ctx context.Context, actor domain.Actor) (*AnalyticsSummary, error)
}

type DefaultAnalyticsUsecase struct {
	OrderRepo   domain.OrderRepository
	ProfileRepo domain.ProfileRepository
}

func NewDefaultAnalyticsUsecase(orderRepo domain.OrderRepository, profileRepo domain.ProfileRepository) *DefaultAnalyticsUsecase {
	return &DefaultAnalyticsUsecase{OrderRepo: orderRepo, ProfileRepo: profileRepo}
}

func (uc *DefaultAnalyticsUsecase) Summary(ctx context.Context, actor domain.Actor) (*AnalyticsSummary, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	revenue, err := uc.OrderRepo.SumTotalsByStatus(ctx, []domain.OrderStatus{
		domain.OrderProcessing,
		domain.OrderDelivered,
	})
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	byStatus, err := uc.OrderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	var totalOrders int64
	for _, n := range byStatus {
		totalOrders += n
	}

	totalUsers, err := uc.ProfileRepo.CountProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	conversion := 0.0
	if totalUsers > 0 {
		conversion = float64(totalOrders) / float64(totalUsers)
	}

	return &AnalyticsSummary{
		Revenue:        revenue,
		TotalOrders:    totalOrders,
		TotalUsers:     totalUsers,
		ConversionRate: conversion,
		OrdersByStatus: byStatus,
	}, nil
}
