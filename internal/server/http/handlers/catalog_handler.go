package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

// CatalogHandler serves provider services and public reviews.
type CatalogHandler struct {
	catalog CatalogFacade
	reviews ReviewFacade
}

func NewCatalogHandler(catalog CatalogFacade, reviews ReviewFacade) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, reviews: reviews}
}

// Create handles POST /api/services.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalog.CreateService(c.Request.Context(), CurrentIdentity(c), usecase.ServiceInput{
		Name:                req.Name,
		BasePrice:           req.BasePrice,
		AllowInstantBooking: req.AllowInstantBooking,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toServiceResponse(*svc))
}

// List handles GET /api/providers/:id/services.
func (h *CatalogHandler) List(c *gin.Context) {
	providerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	services, err := h.catalog.Services(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Reviews handles GET /api/providers/:id/reviews.
func (h *CatalogHandler) Reviews(c *gin.Context) {
	providerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviews.Reviews(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, toReviewResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}
