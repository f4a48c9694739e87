package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
)

// ServiceInput describes a service a provider publishes.
type ServiceInput struct {
	Name                string
	BasePrice           decimal.NullDecimal
	AllowInstantBooking bool
}

// CatalogUseCase manages the provider service catalog.
type CatalogUseCase struct {
	services repository.ServiceRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(store repository.Store) *CatalogUseCase {
	return &CatalogUseCase{services: store.Services()}
}

// CreateService publishes a service owned by the calling provider.
func (u *CatalogUseCase) CreateService(ctx context.Context, caller model.Identity, in ServiceInput) (*model.ProviderService, error) {
	if !caller.IsProvider() {
		return nil, domainErrors.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domainErrors.Invalid("name", "is required")
	}
	if in.BasePrice.Valid && !model.ValidAmount(in.BasePrice.Decimal) {
		return nil, domainErrors.Invalid("basePrice", "must be a positive amount with at most 2 decimal places")
	}

	svc := &model.ProviderService{
		ID:                  uuid.New(),
		ProviderID:          caller.UserID,
		Name:                name,
		BasePrice:           in.BasePrice,
		AllowInstantBooking: in.AllowInstantBooking,
	}
	if err := u.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ListServices returns the services of a provider.
func (u *CatalogUseCase) ListServices(ctx context.Context, providerID uuid.UUID) ([]model.ProviderService, error) {
	return u.services.ListByProvider(ctx, providerID)
}
