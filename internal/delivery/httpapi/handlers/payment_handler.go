package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi/middleware"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	paymentdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/payment"
	paymentusecase "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/payment"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	uc paymentusecase.PaymentUsecase
}

func NewPaymentHandler(uc paymentusecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type initiatePaymentRequest struct {
	OrderID  string  `json:"order_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Provider string  `json:"provider" binding:"required"`
}

// Initiate starts a mobile money payment for an order. The envelope is fixed:
// the storefront frontend keys off success plus paymentReference.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req initiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	output, err := h.uc.Initiate(c.Request.Context(), &paymentdto.InitiatePaymentInput{
		Session:  session,
		OrderID:  req.OrderID,
		Amount:   req.Amount,
		Phone:    req.Phone,
		Provider: req.Provider,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "authentication required",
			})
			return
		}
		slog.Error("payment initiation failed",
			"order_id", req.OrderID,
			"provider", req.Provider,
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"paymentReference": output.Reference,
		"instructions":     output.Instructions,
	})
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.uc.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListOrderPayments(c *gin.Context) {
	payments, err := h.uc.GetPaymentsByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// Confirm marks a payment as settled after the operator verifies the mobile
// money transfer arrived.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if err := h.uc.Confirm(c.Request.Context(), c.Param("id"), session.Actor()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(domain.PaymentCompleted)})
}

func (h *PaymentHandler) Fail(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if err := h.uc.Fail(c.Request.Context(), c.Param("id"), session.Actor()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(domain.PaymentFailed)})
}

func (h *PaymentHandler) ListReceivers(c *gin.Context) {
	session := middleware.SessionFrom(c)
	receivers, err := h.uc.ListReceivers(c.Request.Context(), session.Actor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receivers": receivers})
}

type saveReceiverRequest struct {
	ID          string `json:"id"`
	Provider    string `json:"provider" binding:"required"`
	AccountName string `json:"account_name" binding:"required"`
	Number      string `json:"number" binding:"required"`
	Active      bool   `json:"active"`
}

func (h *PaymentHandler) SaveReceiver(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req saveReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiver := &domain.PaymentReceiver{
		ID:          req.ID,
		Provider:    domain.PaymentProvider(req.Provider),
		AccountName: req.AccountName,
		Number:      req.Number,
		Active:      req.Active,
	}
	if err := h.uc.SaveReceiver(c.Request.Context(), receiver, session.Actor()); err != nil {
		respondError(c, err)
		return
	}

	// Echo back without the raw number.
	c.JSON(http.StatusOK, gin.H{"receiver": receiver})
}
