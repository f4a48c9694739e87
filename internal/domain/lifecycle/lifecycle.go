// Package lifecycle holds the order transition table. Every status change an
// order can undergo is one Rule; anything not listed is rejected.
package lifecycle

import (
	"fmt"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

// Event names a lifecycle action.
type Event string

const (
	EventAccept            Event = "accept"
	EventReject            Event = "reject"
	EventSendProposal      Event = "send_proposal"
	EventAcceptProposal    Event = "accept_proposal"
	EventAcceptAndPay      Event = "accept_and_pay"
	EventConfirmPayment    Event = "confirm_payment"
	EventCancel            Event = "cancel"
	EventMarkComplete      Event = "mark_complete"
	EventReportNoShow      Event = "report_no_show"
	EventConfirmCompletion Event = "confirm_completion"
)

// Rule is one permitted edge of the order state machine.
type Rule struct {
	Event        Event
	From         model.OrderStatus
	Actor        model.Role
	To           model.OrderStatus
	Notification model.NotificationType
	// Direct rules carry no payload and may be requested by target status alone.
	Direct bool
	// ReleasesFunds credits the provider with the order price.
	ReleasesFunds bool
}

var rules = expand([]spec{
	{EventAccept, []model.OrderStatus{model.OrderStatusPendingApproval}, model.RoleProvider, model.OrderStatusAwaitingPayment, model.NotificationOrderUpdate, true, false},
	{EventReject, []model.OrderStatus{model.OrderStatusPendingApproval, model.OrderStatusPendingQuote}, model.RoleProvider, model.OrderStatusRejected, model.NotificationOrderUpdate, true, false},
	{EventSendProposal, []model.OrderStatus{model.OrderStatusPendingQuote}, model.RoleProvider, model.OrderStatusQuoteSent, model.NotificationProposalReceived, false, false},
	{EventAcceptProposal, []model.OrderStatus{model.OrderStatusQuoteSent}, model.RoleClient, model.OrderStatusAwaitingPayment, model.NotificationProposalAccepted, false, false},
	{EventAcceptAndPay, []model.OrderStatus{model.OrderStatusQuoteSent}, model.RoleClient, model.OrderStatusScheduled, model.NotificationProposalPaid, false, false},
	{EventConfirmPayment, []model.OrderStatus{model.OrderStatusAwaitingPayment}, model.RoleClient, model.OrderStatusScheduled, model.NotificationPaymentConfirmed, false, false},
	{EventCancel, []model.OrderStatus{model.OrderStatusAwaitingPayment, model.OrderStatusScheduled}, model.RoleProvider, model.OrderStatusCancelled, model.NotificationOrderUpdate, true, false},
	{EventCancel, []model.OrderStatus{model.OrderStatusPendingApproval, model.OrderStatusAwaitingPayment, model.OrderStatusScheduled}, model.RoleClient, model.OrderStatusCancelled, model.NotificationOrderUpdate, true, false},
	{EventMarkComplete, []model.OrderStatus{model.OrderStatusScheduled}, model.RoleProvider, model.OrderStatusCompletionRequested, model.NotificationOrderUpdate, true, false},
	{EventReportNoShow, []model.OrderStatus{model.OrderStatusScheduled}, model.RoleClient, model.OrderStatusProviderNoShow, model.NotificationOrderUpdate, true, false},
	{EventConfirmCompletion, []model.OrderStatus{model.OrderStatusCompletionRequested}, model.RoleClient, model.OrderStatusCompleted, model.NotificationPaymentReleased, true, true},
})

type spec struct {
	event         Event
	from          []model.OrderStatus
	actor         model.Role
	to            model.OrderStatus
	notification  model.NotificationType
	direct        bool
	releasesFunds bool
}

func expand(specs []spec) []Rule {
	var out []Rule
	for _, s := range specs {
		for _, from := range s.from {
			out = append(out, Rule{
				Event:         s.event,
				From:          from,
				Actor:         s.actor,
				To:            s.to,
				Notification:  s.notification,
				Direct:        s.direct,
				ReleasesFunds: s.releasesFunds,
			})
		}
	}
	return out
}

// Rules returns a copy of the full transition table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Resolve finds the rule for an event fired by actor on an order in status from.
func Resolve(from model.OrderStatus, event Event, actor model.Role) (Rule, error) {
	for _, r := range rules {
		if r.From == from && r.Event == event && r.Actor == actor {
			return r, nil
		}
	}
	return Rule{}, illegal(from, string(event), actor)
}

// ResolveTarget finds the direct rule moving an order from one status to another for actor.
func ResolveTarget(from, to model.OrderStatus, actor model.Role) (Rule, error) {
	for _, r := range rules {
		if r.Direct && r.From == from && r.To == to && r.Actor == actor {
			return r, nil
		}
	}
	return Rule{}, illegal(from, string(to), actor)
}

func illegal(from model.OrderStatus, what string, actor model.Role) error {
	return fmt.Errorf("%w: %s cannot apply %s to %s order", domainErrors.ErrIllegalTransition, actor, what, from)
}
