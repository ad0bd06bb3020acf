package mappers

import (
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:          model.ID,
		TotalAmount: model.TotalAmount,
		Currency:    model.Currency,
		Status:      model.Status,
		ShippingAddress: domain.Address{
			Name:  model.ShippingName,
			Line:  model.ShippingLine,
			Phone: model.ShippingPhone,
			Notes: model.ShippingNotes,
		},
		Notes:            model.Notes,
		PaymentProvider:  model.PaymentProvider,
		PaymentReference: model.PaymentReference,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
	if model.UserID != nil {
		order.UserID = *model.UserID
	}
	if model.BillingName != "" || model.BillingLine != "" {
		order.BillingAddress = &domain.Address{
			Name:  model.BillingName,
			Line:  model.BillingLine,
			Phone: model.BillingPhone,
		}
	}
	order.Items = make([]domain.OrderItem, len(model.Items))
	for i, item := range model.Items {
		order.Items[i] = ToDomainOrderItem(&item)
	}
	return order
}

func ToDomainOrderItem(model *models.OrderItemModel) domain.OrderItem {
	item := domain.OrderItem{
		ID:         model.ID,
		OrderID:    model.OrderID,
		ProductID:  model.ProductID,
		Quantity:   model.Quantity,
		UnitPrice:  model.UnitPrice,
		TotalPrice: model.TotalPrice,
	}
	if model.VariantID != nil {
		item.VariantID = *model.VariantID
	}
	return item
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	model := &models.OrderModel{
		ID:               order.ID,
		TotalAmount:      order.TotalAmount,
		Currency:         order.Currency,
		Status:           order.Status,
		ShippingName:     order.ShippingAddress.Name,
		ShippingLine:     order.ShippingAddress.Line,
		ShippingPhone:    order.ShippingAddress.Phone,
		ShippingNotes:    order.ShippingAddress.Notes,
		Notes:            order.Notes,
		PaymentProvider:  order.PaymentProvider,
		PaymentReference: order.PaymentReference,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	if order.UserID != "" {
		userID := order.UserID
		model.UserID = &userID
	}
	if order.BillingAddress != nil {
		model.BillingName = order.BillingAddress.Name
		model.BillingLine = order.BillingAddress.Line
		model.BillingPhone = order.BillingAddress.Phone
	}
	model.Items = make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		model.Items[i] = ToGORMOrderItem(&item)
	}
	return model
}

func ToGORMOrderItem(item *domain.OrderItem) models.OrderItemModel {
	model := models.OrderItemModel{
		ID:         item.ID,
		OrderID:    item.OrderID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.TotalPrice,
	}
	if item.VariantID != "" {
		variantID := item.VariantID
		model.VariantID = &variantID
	}
	return model
}
