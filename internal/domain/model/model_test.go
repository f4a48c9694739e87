package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestOrderStatusTerminal(t *testing.T) {
	cases := []struct {
		status   OrderStatus
		terminal bool
	}{
		{OrderStatusPendingQuote, false},
		{OrderStatusPendingApproval, false},
		{OrderStatusQuoteSent, false},
		{OrderStatusAwaitingPayment, false},
		{OrderStatusScheduled, false},
		{OrderStatusCompletionRequested, false},
		{OrderStatusCompleted, true},
		{OrderStatusRejected, true},
		{OrderStatusCancelled, true},
		{OrderStatusProviderNoShow, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			if got := tc.status.Terminal(); got != tc.terminal {
				t.Fatalf("expected terminal=%v, got %v", tc.terminal, got)
			}
			if !tc.status.Valid() {
				t.Fatalf("expected %s to be valid", tc.status)
			}
		})
	}

	if OrderStatus("SHIPPED").Valid() {
		t.Fatal("unknown status must be invalid")
	}
}

func TestOrderRoleOf(t *testing.T) {
	order := &Order{ClientID: uuid.New(), ProviderID: uuid.New()}

	if got := order.RoleOf(order.ClientID); got != RoleClient {
		t.Fatalf("expected client, got %s", got)
	}
	if got := order.RoleOf(order.ProviderID); got != RoleProvider {
		t.Fatalf("expected provider, got %s", got)
	}
	if got := order.RoleOf(uuid.New()); got != RoleNeither || got.IsParty() {
		t.Fatalf("expected neither, got %s", got)
	}
	if order.Counterparty(RoleClient) != order.ProviderID || order.Counterparty(RoleProvider) != order.ClientID {
		t.Fatal("unexpected counterparty")
	}
}

func TestComputeRating(t *testing.T) {
	cases := []struct {
		name    string
		sum     int64
		count   int64
		average string
		total   int
	}{
		{"no reviews", 0, 0, "0", 0},
		{"five and three", 8, 2, "4", 2},
		{"single", 5, 1, "5", 1},
		{"repeating", 13, 3, "4.33", 3},
		{"rounds half up", 29, 6, "4.83", 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeRating(tc.sum, tc.count)
			if !got.Average.Equal(decimal.RequireFromString(tc.average)) {
				t.Fatalf("expected average %s, got %s", tc.average, got.Average)
			}
			if got.Total != tc.total {
				t.Fatalf("expected total %d, got %d", tc.total, got.Total)
			}
		})
	}
}

func TestChangeRequestApplyTo(t *testing.T) {
	originalDate := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	order := &Order{
		Price:        decimal.NewNullDecimal(decimal.NewFromInt(100)),
		ProposedDate: &originalDate,
		Note:         "keep",
	}

	priceOnly := &ChangeRequest{ProposedPrice: decimal.NewNullDecimal(decimal.NewFromInt(150))}
	priceOnly.ApplyTo(order)
	if !order.Price.Decimal.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected price 150, got %s", order.Price.Decimal)
	}
	if !order.ProposedDate.Equal(originalDate) || order.Note != "keep" {
		t.Fatal("price-only request must not touch other fields")
	}

	newDate := originalDate.Add(48 * time.Hour)
	dateOnly := &ChangeRequest{ProposedDate: &newDate}
	dateOnly.ApplyTo(order)
	if !order.ProposedDate.Equal(newDate) {
		t.Fatalf("expected date %v, got %v", newDate, order.ProposedDate)
	}
	if !order.Price.Decimal.Equal(decimal.NewFromInt(150)) {
		t.Fatal("date-only request must not touch price")
	}
}

func TestProviderServiceInstantBookable(t *testing.T) {
	priced := decimal.NewNullDecimal(decimal.NewFromInt(50))
	if !(ProviderService{AllowInstantBooking: true, BasePrice: priced}).InstantBookable() {
		t.Fatal("expected flagged priced service to be instant bookable")
	}
	if (ProviderService{AllowInstantBooking: true}).InstantBookable() {
		t.Fatal("service without base price is not instant bookable")
	}
	if (ProviderService{BasePrice: priced}).InstantBookable() {
		t.Fatal("unflagged service is not instant bookable")
	}
}

func TestEnumValidity(t *testing.T) {
	if !AccountClient.Valid() || !AccountProvider.Valid() || AccountKind("admin").Valid() {
		t.Fatal("unexpected account kind validity")
	}
	if !ChangeRequestScopeChange.Valid() || ChangeRequestType("OTHER").Valid() {
		t.Fatal("unexpected change request type validity")
	}
	if !(Identity{Kind: AccountProvider}).IsProvider() || (Identity{Kind: AccountClient}).IsProvider() {
		t.Fatal("unexpected identity kind")
	}
}

func TestValidAmount(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0.01", true},
		{"150", true},
		{"150.50", true},
		{"999999999999.99", true},
		{"0", false},
		{"-1", false},
		{"0.005", false},
		{"10.001", false},
		{"1000000000000", false},
	}
	for _, tc := range cases {
		if got := ValidAmount(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Fatalf("ValidAmount(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
