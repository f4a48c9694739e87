package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	in := usecase.CreateOrderInput{
		ProviderID:   req.ProviderID,
		Type:         model.OrderType(req.OrderType),
		Instant:      req.IsInstantBooking,
		ProposedDate: req.ProposedDate,
		Note:         req.Note,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, usecase.OrderItemInput{ServiceID: item.ServiceID, Quantity: item.Quantity})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUserID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	identity := CurrentIdentity(c)
	lists, err := h.facade.Orders(c.Request.Context(), identity)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := dto.OrderListResponse{GivenOrders: toOrderResponses(lists.Given)}
	if identity.IsProvider() {
		received := toOrderResponses(lists.Received)
		resp.ReceivedOrders = &received
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), CurrentUserID(c), orderID, model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Pay handles POST /api/orders/:id/pay.
func (h *OrderHandler) Pay(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.ConfirmPayment(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
