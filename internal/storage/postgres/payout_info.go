package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type payoutInfoRepository struct {
	q querier
}

func (r *payoutInfoRepository) GetByProvider(ctx context.Context, providerID uuid.UUID) (*model.PayoutInfo, error) {
	const query = `SELECT provider_id, payout_type, COALESCE(pix_key, ''), COALESCE(bank_name, ''),
                          COALESCE(agency_number, ''), COALESCE(account_number, ''), updated_at
                   FROM provider_payout_info WHERE provider_id=$1`
	var info model.PayoutInfo
	err := r.q.QueryRow(ctx, query, providerID).Scan(&info.ProviderID, &info.Type, &info.PixKey, &info.BankName,
		&info.AgencyNumber, &info.AccountNumber, &info.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &info, nil
}

// Upsert replaces every destination column so switching type never leaves stale details behind.
func (r *payoutInfoRepository) Upsert(ctx context.Context, info *model.PayoutInfo) error {
	const query = `INSERT INTO provider_payout_info (provider_id, payout_type, pix_key, bank_name, agency_number, account_number)
                   VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
                   ON CONFLICT (provider_id) DO UPDATE SET
                       payout_type = EXCLUDED.payout_type,
                       pix_key = EXCLUDED.pix_key,
                       bank_name = EXCLUDED.bank_name,
                       agency_number = EXCLUDED.agency_number,
                       account_number = EXCLUDED.account_number,
                       updated_at = NOW()
                   RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, info.ProviderID, info.Type, info.PixKey, info.BankName, info.AgencyNumber, info.AccountNumber).
		Scan(&info.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert payout info: %w", err)
	}
	return nil
}
