package handlers

import (
	"net/http"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi/middleware"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type submitReviewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Rating    int32  `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.uc.SubmitReview(c.Request.Context(), session, &domain.Review{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListForProduct(c *gin.Context) {
	session := middleware.SessionFrom(c)

	reviews, err := h.uc.ListProductReviews(c.Request.Context(), c.Param("id"), session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) ListPending(c *gin.Context) {
	session := middleware.SessionFrom(c)

	reviews, err := h.uc.ListPendingReviews(c.Request.Context(), session.Actor())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

type moderateReviewRequest struct {
	Approved bool `json:"approved"`
	Featured bool `json:"featured"`
}

func (h *ReviewHandler) Moderate(c *gin.Context) {
	session := middleware.SessionFrom(c)

	var req moderateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.Moderate(c.Request.Context(), c.Param("id"), req.Approved, req.Featured, session.Actor()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
