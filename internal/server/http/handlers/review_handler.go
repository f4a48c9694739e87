package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
)

type ReviewHandler struct {
	facade ReviewFacade
}

func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), CurrentIdentity(c), req.OrderID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(*review))
}

// Delete handles DELETE /api/reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteReview(c.Request.Context(), CurrentUserID(c), reviewID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
