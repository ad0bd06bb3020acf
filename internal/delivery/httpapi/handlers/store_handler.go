package handlers

import (
	"net/http"
	"strconv"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi/middleware"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase"
	"github.com/gin-gonic/gin"
)

// StoreHandler bundles the small customer-facing surfaces: notifications,
// newsletter, profile, and the admin user/analytics endpoints.
type StoreHandler struct {
	notifications usecase.NotificationUsecase
	newsletter    usecase.NewsletterUsecase
	profiles      usecase.ProfileUsecase
	analytics     usecase.AnalyticsUsecase
}

func NewStoreHandler(
	notifications usecase.NotificationUsecase,
	newsletter usecase.NewsletterUsecase,
	profiles usecase.ProfileUsecase,
	analytics usecase.AnalyticsUsecase,
) *StoreHandler {
	return &StoreHandler{
		notifications: notifications,
		newsletter:    newsletter,
		profiles:      profiles,
		analytics:     analytics,
	}
}

func (h *StoreHandler) ListNotifications(c *gin.Context) {
	session := middleware.SessionFrom(c)

	notifications, err := h.notifications.ListNotifications(c.Request.Context(), session, c.Query("unread") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *StoreHandler) MarkNotificationRead(c *gin.Context) {
	session := middleware.SessionFrom(c)

	if err := h.notifications.MarkRead(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *StoreHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subscriber, err := h.newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subscriber)
}

func (h *StoreHandler) ListSubscribers(c *gin.Context) {
	session := middleware.SessionFrom(c)

	subscribers, err := h.newsletter.ListSubscribers(c.Request.Context(), session.Actor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}

func (h *StoreHandler) GetProfile(c *gin.Context) {
	session := middleware.SessionFrom(c)

	profile, err := h.profiles.GetProfile(c.Request.Context(), session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *StoreHandler) ListUsers(c *gin.Context) {
	session := middleware.SessionFrom(c)

	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 32)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 32)

	profiles, total, err := h.profiles.ListUsers(c.Request.Context(), int32(page), int32(limit), session.Actor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users": profiles,
		"total": total,
	})
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *StoreHandler) ChangeRole(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.profiles.ChangeRole(c.Request.Context(), c.Param("id"), domain.Role(req.Role), session.Actor()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StoreHandler) AnalyticsSummary(c *gin.Context) {
	session := middleware.SessionFrom(c)

	summary, err := h.analytics.Summary(c.Request.Context(), session.Actor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
