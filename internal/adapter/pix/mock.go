package pix

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

// MockClient issues fake charges locally. The copy-paste code embeds the
// order id and the amount so a tester can match it to the order.
type MockClient struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewMockClient constructs MockClient.
func NewMockClient(logger *slog.Logger) *MockClient {
	return &MockClient{logger: logger, now: time.Now}
}

func (c *MockClient) CreateCharge(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*model.PixCharge, error) {
	value := amount.StringFixed(2)
	c.logger.InfoContext(ctx, "issuing mock pix charge",
		slog.String("order_id", orderID.String()),
		slog.String("amount", value),
	)

	code := fmt.Sprintf(
		"00020126580014br.gov.bcb.pix0136%s-fake-pix-txid-12345204000053039865405%s5802BR5913Plataforma JOBAH6008Salvador62290525%s-jobah-payment6304E3B7",
		orderID, value, orderID,
	)
	return &model.PixCharge{
		TxID:       orderID.String(),
		QRCodeText: code,
		ExpiresAt:  c.now().Add(ChargeTTL).UTC(),
	}, nil
}
