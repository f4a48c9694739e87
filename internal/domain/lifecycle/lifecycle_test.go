package lifecycle

import (
	"errors"
	"testing"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

var allStatuses = []model.OrderStatus{
	model.OrderStatusPendingQuote,
	model.OrderStatusPendingApproval,
	model.OrderStatusQuoteSent,
	model.OrderStatusAwaitingPayment,
	model.OrderStatusScheduled,
	model.OrderStatusCompletionRequested,
	model.OrderStatusCompleted,
	model.OrderStatusRejected,
	model.OrderStatusCancelled,
	model.OrderStatusProviderNoShow,
}

func TestResolveTable(t *testing.T) {
	cases := []struct {
		name  string
		from  model.OrderStatus
		event Event
		actor model.Role
		to    model.OrderStatus
	}{
		{"provider accepts", model.OrderStatusPendingApproval, EventAccept, model.RoleProvider, model.OrderStatusAwaitingPayment},
		{"provider rejects approval", model.OrderStatusPendingApproval, EventReject, model.RoleProvider, model.OrderStatusRejected},
		{"provider rejects quote", model.OrderStatusPendingQuote, EventReject, model.RoleProvider, model.OrderStatusRejected},
		{"provider sends proposal", model.OrderStatusPendingQuote, EventSendProposal, model.RoleProvider, model.OrderStatusQuoteSent},
		{"client accepts proposal", model.OrderStatusQuoteSent, EventAcceptProposal, model.RoleClient, model.OrderStatusAwaitingPayment},
		{"client accepts and pays", model.OrderStatusQuoteSent, EventAcceptAndPay, model.RoleClient, model.OrderStatusScheduled},
		{"client pays", model.OrderStatusAwaitingPayment, EventConfirmPayment, model.RoleClient, model.OrderStatusScheduled},
		{"provider cancels unpaid", model.OrderStatusAwaitingPayment, EventCancel, model.RoleProvider, model.OrderStatusCancelled},
		{"provider cancels scheduled", model.OrderStatusScheduled, EventCancel, model.RoleProvider, model.OrderStatusCancelled},
		{"client cancels pending", model.OrderStatusPendingApproval, EventCancel, model.RoleClient, model.OrderStatusCancelled},
		{"client cancels unpaid", model.OrderStatusAwaitingPayment, EventCancel, model.RoleClient, model.OrderStatusCancelled},
		{"client cancels scheduled", model.OrderStatusScheduled, EventCancel, model.RoleClient, model.OrderStatusCancelled},
		{"provider marks complete", model.OrderStatusScheduled, EventMarkComplete, model.RoleProvider, model.OrderStatusCompletionRequested},
		{"client reports no-show", model.OrderStatusScheduled, EventReportNoShow, model.RoleClient, model.OrderStatusProviderNoShow},
		{"client confirms completion", model.OrderStatusCompletionRequested, EventConfirmCompletion, model.RoleClient, model.OrderStatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := Resolve(tc.from, tc.event, tc.actor)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rule.To != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, rule.To)
			}
		})
	}
}

func TestResolveRejectsOutsideTable(t *testing.T) {
	cases := []struct {
		name  string
		from  model.OrderStatus
		event Event
		actor model.Role
	}{
		{"client cannot accept", model.OrderStatusPendingApproval, EventAccept, model.RoleClient},
		{"provider cannot confirm completion", model.OrderStatusCompletionRequested, EventConfirmCompletion, model.RoleProvider},
		{"client cannot cancel quote request", model.OrderStatusPendingQuote, EventCancel, model.RoleClient},
		{"provider cannot cancel pending approval", model.OrderStatusPendingApproval, EventCancel, model.RoleProvider},
		{"no second completion", model.OrderStatusCompleted, EventConfirmCompletion, model.RoleClient},
		{"stranger", model.OrderStatusScheduled, EventCancel, model.RoleNeither},
		{"proposal after quote sent", model.OrderStatusQuoteSent, EventSendProposal, model.RoleProvider},
		{"pay twice", model.OrderStatusScheduled, EventConfirmPayment, model.RoleClient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.from, tc.event, tc.actor)
			if !errors.Is(err, domainErrors.ErrIllegalTransition) || !errors.Is(err, domainErrors.ErrConflict) {
				t.Fatalf("expected illegal transition conflict, got %v", err)
			}
		})
	}
}

func TestResolveTargetOnlyDirectRules(t *testing.T) {
	rule, err := ResolveTarget(model.OrderStatusCompletionRequested, model.OrderStatusCompleted, model.RoleClient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rule.ReleasesFunds || rule.Event != EventConfirmCompletion {
		t.Fatalf("expected fund-releasing completion rule, got %+v", rule)
	}

	if _, err := ResolveTarget(model.OrderStatusPendingQuote, model.OrderStatusQuoteSent, model.RoleProvider); !errors.Is(err, domainErrors.ErrIllegalTransition) {
		t.Fatalf("proposal edge must not be reachable by target status, got %v", err)
	}
	if _, err := ResolveTarget(model.OrderStatusAwaitingPayment, model.OrderStatusScheduled, model.RoleClient); !errors.Is(err, domainErrors.ErrIllegalTransition) {
		t.Fatalf("payment edge must not be reachable by target status, got %v", err)
	}
	if _, err := ResolveTarget(model.OrderStatusScheduled, model.OrderStatus("DONE"), model.RoleClient); err == nil {
		t.Fatal("expected error for unknown target")
	}
}

func TestTableInvariants(t *testing.T) {
	seen := map[[3]string]bool{}
	releases := 0
	for _, r := range Rules() {
		if r.From.Terminal() {
			t.Fatalf("terminal status %s must have no outgoing edge", r.From)
		}
		if !r.Actor.IsParty() {
			t.Fatalf("rule %s has no party actor", r.Event)
		}
		if r.Notification == "" {
			t.Fatalf("rule %s from %s has no notification", r.Event, r.From)
		}
		key := [3]string{string(r.From), string(r.To), r.Actor.String()}
		if r.Direct {
			if seen[key] {
				t.Fatalf("ambiguous direct rule %v", key)
			}
			seen[key] = true
		}
		if r.ReleasesFunds {
			releases++
			if r.From != model.OrderStatusCompletionRequested || r.To != model.OrderStatusCompleted {
				t.Fatalf("funds may only be released on completion confirmation, got %+v", r)
			}
		}
	}
	if releases != 1 {
		t.Fatalf("expected exactly one releasing rule, got %d", releases)
	}

	for _, status := range allStatuses {
		if !status.Terminal() {
			continue
		}
		for _, actor := range []model.Role{model.RoleClient, model.RoleProvider} {
			for _, target := range allStatuses {
				if _, err := ResolveTarget(status, target, actor); err == nil {
					t.Fatalf("terminal %s must not move to %s", status, target)
				}
			}
		}
	}
}
