package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

// ChangeRequestHandler serves order amendments.
type ChangeRequestHandler struct {
	facade ChangeRequestFacade
}

func NewChangeRequestHandler(facade ChangeRequestFacade) *ChangeRequestHandler {
	return &ChangeRequestHandler{facade: facade}
}

// Create handles POST /api/orders/:id/change-requests.
func (h *ChangeRequestHandler) Create(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ChangeRequestRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.facade.CreateChangeRequest(c.Request.Context(), CurrentUserID(c), orderID, usecase.ChangeRequestInput{
		Type:          model.ChangeRequestType(req.Type),
		Details:       req.Details,
		ProposedPrice: req.ProposedPrice,
		ProposedDate:  req.ProposedDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toChangeRequestResponse(*request))
}

// List handles GET /api/orders/:id/change-requests.
func (h *ChangeRequestHandler) List(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	requests, err := h.facade.ChangeRequests(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.ChangeRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, toChangeRequestResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Resolve handles POST /api/change-requests/:id/resolve.
func (h *ChangeRequestHandler) Resolve(c *gin.Context) {
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ResolveRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.facade.ResolveChangeRequest(c.Request.Context(), CurrentUserID(c), requestID, model.ChangeRequestAction(req.Action))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toChangeRequestResponse(*request))
}
