package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
	"github.com/GuiiMoreira/jobah-api/internal/usecase"
)

// WalletHandler manages provider balance endpoints.
type WalletHandler struct {
	facade WalletFacade
}

// NewWalletHandler constructs WalletHandler.
func NewWalletHandler(facade WalletFacade) *WalletHandler {
	return &WalletHandler{facade: facade}
}

// Summary handles GET /api/wallet.
func (h *WalletHandler) Summary(c *gin.Context) {
	summary, err := h.facade.Wallet(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WalletResponse{AvailableBalance: summary.Available, PendingBalance: summary.Pending})
}

// Withdraw handles POST /api/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if !bindJSON(c, &req) {
		return
	}

	withdrawal, err := h.facade.Withdraw(c.Request.Context(), CurrentUserID(c), req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.WithdrawalResponse{
		ID:          withdrawal.ID,
		Amount:      withdrawal.Amount,
		Status:      string(withdrawal.Status),
		ProcessedAt: withdrawal.ProcessedAt,
	})
}

// Withdrawals handles GET /api/wallet/withdrawals.
func (h *WalletHandler) Withdrawals(c *gin.Context) {
	withdrawals, err := h.facade.Withdrawals(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		resp = append(resp, dto.WithdrawalResponse{ID: w.ID, Amount: w.Amount, Status: string(w.Status), ProcessedAt: w.ProcessedAt})
	}
	c.JSON(http.StatusOK, resp)
}

// PayoutInfo handles GET /api/wallet/payout-info.
func (h *WalletHandler) PayoutInfo(c *gin.Context) {
	info, err := h.facade.PayoutInfo(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayoutInfoResponse(info))
}

// SavePayoutInfo handles PUT /api/wallet/payout-info.
func (h *WalletHandler) SavePayoutInfo(c *gin.Context) {
	var req dto.PayoutInfoRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.facade.SavePayoutInfo(c.Request.Context(), CurrentUserID(c), usecase.PayoutInfoInput{
		Type:          model.PayoutType(req.PayoutType),
		PixKey:        req.PixKey,
		BankName:      req.BankName,
		AgencyNumber:  req.AgencyNumber,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayoutInfoResponse(info))
}
