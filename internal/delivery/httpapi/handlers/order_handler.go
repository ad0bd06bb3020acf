package handlers

import (
	"net/http"
	"strconv"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi/middleware"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	orderdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/order"
	orderusecase "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/order"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	uc orderusecase.OrderUsecase
}

func NewOrderHandler(uc orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type createOrderRequest struct {
	Items           []orderdto.CartItem `json:"items" binding:"required"`
	Currency        string              `json:"currency"`
	ShippingAddress domain.Address      `json:"shipping_address" binding:"required"`
	BillingAddress  *domain.Address     `json:"billing_address"`
	Notes           string              `json:"notes"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.uc.Create(c.Request.Context(), &orderdto.CreateOrderInput{
		Session:         session,
		Items:           req.Items,
		Currency:        req.Currency,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// Get returns a single order. Customers may only read their own orders.
func (h *OrderHandler) Get(c *gin.Context) {
	session := middleware.SessionFrom(c)

	order, err := h.uc.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if order.UserID != session.UserID && !session.IsAdmin() {
		respondError(c, domain.ErrOrderNotFound)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	session := middleware.SessionFrom(c)

	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	orders, total, err := h.uc.GetUserOrders(c.Request.Context(), &orderdto.ListOrdersInput{
		UserID:    session.UserID,
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 32)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 32)

	filters := domain.OrderFilters{
		OrderID:   c.Query("order_id"),
		UserID:    c.Query("user_id"),
		Reference: c.Query("reference"),
	}
	if status := c.Query("status"); status != "" {
		filters.Statuses = []domain.OrderStatus{domain.OrderStatus(status)}
	}

	orders, total, err := h.uc.GetAllOrders(c.Request.Context(), &orderdto.AdminListOrdersInput{
		Filters: filters,
		Page:    int32(page),
		Limit:   int32(limit),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
	})
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Transition moves an order to its next lifecycle status. Illegal moves are
// rejected with 409.
func (h *OrderHandler) Transition(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.uc.Transition(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status), session.Actor())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
