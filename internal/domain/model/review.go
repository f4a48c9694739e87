package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReviewStatus string

const (
	ReviewStatusActive        ReviewStatus = "ACTIVE"
	ReviewStatusDeletedByUser ReviewStatus = "DELETED_BY_USER"
)

// Review is a client's evaluation of a completed order.
type Review struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	ReviewerID   uuid.UUID
	ReviewerName string
	ProviderID   uuid.UUID
	Rating       int
	Comment      string
	Status       ReviewStatus
	CreatedAt    time.Time
}

// RatingAggregate is the provider's derived average rating and active review count.
type RatingAggregate struct {
	Average decimal.Decimal
	Total   int
}

// ComputeRating derives the aggregate from the sum and count of active ratings.
func ComputeRating(sum, count int64) RatingAggregate {
	if count <= 0 {
		return RatingAggregate{Average: decimal.Zero}
	}
	avg := decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 2)
	return RatingAggregate{Average: avg, Total: int(count)}
}
