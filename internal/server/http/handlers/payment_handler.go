package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
)

const webhookTokenHeader = "X-Webhook-Token"

// PaymentHandler issues Pix charges and receives provider callbacks.
type PaymentHandler struct {
	facade       OrderFacade
	webhookToken string
	logger       *slog.Logger
}

func NewPaymentHandler(facade OrderFacade, webhookToken string, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{facade: facade, webhookToken: webhookToken, logger: logger}
}

// CreateCharge handles POST /api/orders/:id/pix.
func (h *PaymentHandler) CreateCharge(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	charge, err := h.facade.CreatePixCharge(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PixChargeResponse{
		TxID:        charge.TxID,
		QRCode:      charge.QRCodeText,
		QRCodeImage: charge.QRCodeImage,
		ExpiresAt:   charge.ExpiresAt,
	})
}

// Webhook handles POST /api/webhooks/pix. Malformed payloads and unknown txids
// are acknowledged; a failed confirmation answers 500 so the provider redelivers.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	if h.webhookToken != "" && subtle.ConstantTimeCompare([]byte(c.GetHeader(webhookTokenHeader)), []byte(h.webhookToken)) != 1 {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid webhook token"})
		return
	}

	var req dto.PixWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("malformed pix webhook", slog.Any("error", err))
		c.Status(http.StatusOK)
		return
	}

	failed := 0
	for _, p := range req.Pix {
		applied, err := h.facade.ConfirmPixPayment(c.Request.Context(), p.TxID)
		if err != nil {
			failed++
			h.logger.Error("pix confirmation failed", slog.String("txid", p.TxID), slog.Any("error", err))
			continue
		}
		h.logger.Info("pix webhook processed", slog.String("txid", p.TxID), slog.Bool("applied", applied))
	}
	if failed > 0 {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}
	c.Status(http.StatusOK)
}
