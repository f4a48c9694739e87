package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceRequest describes a service a provider publishes.
type ServiceRequest struct {
	Name                string              `json:"name"`
	BasePrice           decimal.NullDecimal `json:"basePrice"`
	AllowInstantBooking bool                `json:"allowInstantBooking"`
}

// ServiceResponse is a catalog entry.
type ServiceResponse struct {
	ID                  uuid.UUID           `json:"id"`
	ProviderID          uuid.UUID           `json:"providerId"`
	Name                string              `json:"name"`
	BasePrice           decimal.NullDecimal `json:"basePrice"`
	AllowInstantBooking bool                `json:"allowInstantBooking"`
}

// OrderItemRequest is one line of a new order.
type OrderItemRequest struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

// CreateOrderRequest describes a booking or quote request.
type CreateOrderRequest struct {
	ProviderID       uuid.UUID          `json:"providerId"`
	OrderType        string             `json:"orderType"`
	IsInstantBooking bool               `json:"isInstantBooking"`
	Items            []OrderItemRequest `json:"items"`
	ProposedDate     *time.Time         `json:"proposedDate"`
	Note             string             `json:"note"`
}

// StatusRequest asks for a status change.
type StatusRequest struct {
	Status string `json:"status"`
}

type OrderItemResponse struct {
	ID        uuid.UUID           `json:"id"`
	ServiceID uuid.UUID           `json:"serviceId"`
	Quantity  int                 `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unitPrice"`
}

type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	ClientID     uuid.UUID           `json:"clientId"`
	ProviderID   uuid.UUID           `json:"providerId"`
	Status       string              `json:"status"`
	Price        decimal.NullDecimal `json:"price"`
	ProposedDate *time.Time          `json:"proposedDate"`
	Note         string              `json:"note,omitempty"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// OrderListResponse splits the caller's orders by role.
type OrderListResponse struct {
	GivenOrders    []OrderResponse `json:"givenOrders"`
	ReceivedOrders *[]OrderResponse `json:"receivedOrders,omitempty"`
}

// PixChargeResponse carries the copy-paste payment code.
type PixChargeResponse struct {
	TxID        string    `json:"txid"`
	QRCode      string    `json:"qrCode"`
	QRCodeImage string    `json:"qrCodeImage,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// PixWebhookRequest is the payment provider callback body.
type PixWebhookRequest struct {
	Pix []struct {
		TxID string `json:"txid"`
	} `json:"pix"`
}
