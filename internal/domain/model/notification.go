package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationInstantBooking   NotificationType = "INSTANT_BOOKING"
	NotificationNewOrder         NotificationType = "NEW_ORDER"
	NotificationOrderUpdate      NotificationType = "ORDER_UPDATE"
	NotificationPaymentConfirmed NotificationType = "PAYMENT_CONFIRMED"
	NotificationPaymentReleased  NotificationType = "PAYMENT_RELEASED"
	NotificationProposalReceived NotificationType = "PROPOSAL_RECEIVED"
	NotificationProposalAccepted NotificationType = "PROPOSAL_ACCEPTED"
	NotificationProposalPaid     NotificationType = "PROPOSAL_ACCEPTED_PAID"
	NotificationChangeRequest    NotificationType = "CHANGE_REQUEST"
	NotificationChangeAccepted   NotificationType = "CHANGE_ACCEPTED"
	NotificationChangeRejected   NotificationType = "CHANGE_REJECTED"
	NotificationNewReview        NotificationType = "NEW_REVIEW"
)

// Notification is an outbox entry addressed to one user.
type Notification struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         NotificationType
	Message      string
	OrderID      *uuid.UUID
	IsRead       bool
	CreatedAt    time.Time
	DispatchedAt *time.Time
}
