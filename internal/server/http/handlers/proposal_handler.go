package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
)

type acceptFunc func(ctx context.Context, callerID, proposalID uuid.UUID) (*model.Order, error)

// ProposalHandler serves provider quotes.
type ProposalHandler struct {
	facade ProposalFacade
}

func NewProposalHandler(facade ProposalFacade) *ProposalHandler {
	return &ProposalHandler{facade: facade}
}

// Create handles POST /api/orders/:id/proposals.
func (h *ProposalHandler) Create(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProposalRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := h.facade.CreateProposal(c.Request.Context(), CurrentUserID(c), orderID, req.Price, req.Details)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProposalResponse(*proposal))
}

// List handles GET /api/orders/:id/proposals.
func (h *ProposalHandler) List(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	proposals, err := h.facade.Proposals(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		resp = append(resp, toProposalResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Accept handles POST /api/proposals/:id/accept.
func (h *ProposalHandler) Accept(c *gin.Context) {
	h.accept(c, h.facade.AcceptProposal)
}

// AcceptAndPay handles POST /api/proposals/:id/accept-and-pay.
func (h *ProposalHandler) AcceptAndPay(c *gin.Context) {
	h.accept(c, h.facade.AcceptProposalAndPay)
}

func (h *ProposalHandler) accept(c *gin.Context, fn acceptFunc) {
	proposalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := fn(c.Request.Context(), CurrentUserID(c), proposalID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
