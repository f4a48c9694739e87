package pix

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GuiiMoreira/jobah-api/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "key", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "key", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestTxIDStripsDashes(t *testing.T) {
	id := uuid.MustParse("0b7c4f5e-8a8e-4c53-9d1f-0a9b2c3d4e5f")
	txid := TxID(id)
	if txid != "0b7c4f5e8a8e4c539d1f0a9b2c3d4e5f" {
		t.Fatalf("unexpected txid %q", txid)
	}
	parsed, err := uuid.Parse(txid)
	if err != nil || parsed != id {
		t.Fatalf("txid must parse back to the order id, got %v %v", parsed, err)
	}
}

func TestCreateChargeTalksToProvider(t *testing.T) {
	orderID := uuid.New()
	var received chargeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/v2/cob/"+TxID(orderID):
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
			}
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Errorf("decode body: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"loc":{"id":42}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v2/loc/42/qrcode":
			_, _ = w.Write([]byte(`{"qrcode":"000201-code","imagemQrcode":"data:image/png;base64,AAAA"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "pix-key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return fixed }

	charge, err := client.CreateCharge(context.Background(), orderID, decimal.RequireFromString("150"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received.Calendario.Expiracao != 1800 {
		t.Fatalf("expected 1800s expiry, got %d", received.Calendario.Expiracao)
	}
	if received.Valor.Original != "150.00" {
		t.Fatalf("expected amount 150.00, got %s", received.Valor.Original)
	}
	if received.Chave != "pix-key" {
		t.Fatalf("unexpected key %q", received.Chave)
	}
	if len(received.InfoAdicionais) != 1 || received.InfoAdicionais[0].Valor != orderID.String() {
		t.Fatalf("expected order id in additional info, got %+v", received.InfoAdicionais)
	}
	if charge.QRCodeText != "000201-code" || charge.QRCodeImage == "" {
		t.Fatalf("unexpected charge %+v", charge)
	}
	if !charge.ExpiresAt.Equal(fixed.Add(30 * time.Minute)) {
		t.Fatalf("unexpected expiry %v", charge.ExpiresAt)
	}
	if charge.TxID != TxID(orderID) {
		t.Fatalf("unexpected txid %s", charge.TxID)
	}
}

func TestCreateChargeRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.CreateCharge(context.Background(), uuid.New(), decimal.NewFromInt(10))
	var tm TooManyRequestsError
	if !errors.As(err, &tm) {
		t.Fatalf("expected TooManyRequestsError, got %v", err)
	}
	if tm.RetryAfter != 7*time.Second {
		t.Fatalf("expected retry after 7s, got %v", tm.RetryAfter)
	}
}

func TestCreateChargeLogsErrorResponses(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "key", slog.New(handler))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.CreateCharge(context.Background(), uuid.New(), decimal.NewFromInt(10)); err == nil {
		t.Fatal("expected error from server")
	}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected error log to be written")
	}
}

func TestCreateChargeRejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := client.CreateCharge(context.Background(), uuid.New(), decimal.NewFromInt(10)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestParseRetryAfter(t *testing.T) {
	httpTime := time.Now().Add(2 * time.Second).UTC().Format(http.TimeFormat)

	cases := []struct {
		name   string
		header string
		min    time.Duration
		max    time.Duration
	}{
		{name: "empty", header: "", min: 5 * time.Second, max: 5 * time.Second},
		{name: "seconds", header: "3", min: 3 * time.Second, max: 3 * time.Second},
		{name: "http date", header: httpTime, min: 0, max: 3 * time.Second},
		{name: "garbage", header: "soon", min: 5 * time.Second, max: 5 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseRetryAfter(tc.header)
			if got < tc.min || got > tc.max {
				t.Fatalf("expected %v..%v, got %v", tc.min, tc.max, got)
			}
		})
	}
}

func TestMockClientEmbedsOrderAndAmount(t *testing.T) {
	client := NewMockClient(testLogger())
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return fixed }
	orderID := uuid.New()

	charge, err := client.CreateCharge(context.Background(), orderID, decimal.RequireFromString("99.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(charge.QRCodeText, orderID.String()) {
		t.Fatalf("expected order id in code %q", charge.QRCodeText)
	}
	if !strings.Contains(charge.QRCodeText, "540599.50") {
		t.Fatalf("expected formatted amount in code %q", charge.QRCodeText)
	}
	if !strings.HasPrefix(charge.QRCodeText, "000201") {
		t.Fatalf("unexpected code prefix %q", charge.QRCodeText)
	}
	if charge.TxID != orderID.String() {
		t.Fatalf("unexpected txid %s", charge.TxID)
	}
	if !charge.ExpiresAt.Equal(fixed.Add(ChargeTTL)) {
		t.Fatalf("unexpected expiry %v", charge.ExpiresAt)
	}
}

func TestNewClientSelectsImplementation(t *testing.T) {
	mock, err := newClient(clientParams{Config: &config.Config{}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := mock.(*MockClient); !ok {
		t.Fatalf("expected mock client, got %T", mock)
	}

	live, err := newClient(clientParams{Config: &config.Config{PaymentProviderAddress: "http://psp.example.com", PixKey: "k"}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := live.(*HTTPClient); !ok {
		t.Fatalf("expected http client, got %T", live)
	}

	if _, err := newClient(clientParams{Config: &config.Config{PaymentProviderAddress: "relative"}, Logger: testLogger()}); err == nil {
		t.Fatal("expected error for relative provider address")
	}
}
