package pix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

// ChargeTTL is how long an issued charge stays payable.
const ChargeTTL = 30 * time.Minute

// TooManyRequestsError represents rate limiting signal from the payment provider.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client issues instant-payment charges for orders.
type Client interface {
	CreateCharge(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*model.PixCharge, error)
}

// HTTPClient implements Client against a PSP exposing the Pix cob API.
type HTTPClient struct {
	baseURL    *url.URL
	pixKey     string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

type chargeRequest struct {
	Calendario struct {
		Expiracao int `json:"expiracao"`
	} `json:"calendario"`
	Valor struct {
		Original string `json:"original"`
	} `json:"valor"`
	Chave          string      `json:"chave"`
	InfoAdicionais []infoField `json:"infoAdicionais"`
}

type infoField struct {
	Nome  string `json:"nome"`
	Valor string `json:"valor"`
}

type chargeResponse struct {
	Loc struct {
		ID int64 `json:"id"`
	} `json:"loc"`
}

type qrCodeResponse struct {
	QRCode       string `json:"qrcode"`
	ImagemQRCode string `json:"imagemQrcode"`
}

// NewHTTPClient creates PSP client with default timeout.
func NewHTTPClient(baseURL, pixKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment provider url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		pixKey:  pixKey,
		logger:  logger,
		now:     time.Now,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// TxID derives the PSP transaction id of an order: its uuid without dashes.
func TxID(orderID uuid.UUID) string {
	return strings.ReplaceAll(orderID.String(), "-", "")
}

// CreateCharge registers an immediate charge for the order and fetches its QR code.
func (c *HTTPClient) CreateCharge(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*model.PixCharge, error) {
	txid := TxID(orderID)

	var body chargeRequest
	body.Calendario.Expiracao = int(ChargeTTL / time.Second)
	body.Valor.Original = amount.StringFixed(2)
	body.Chave = c.pixKey
	body.InfoAdicionais = []infoField{{Nome: "Pedido", Valor: orderID.String()}}

	var charge chargeResponse
	if err := c.do(ctx, http.MethodPut, c.endpoint("/v2/cob/", txid), body, &charge); err != nil {
		return nil, err
	}

	var qr qrCodeResponse
	locPath := c.endpoint("/v2/loc/", strconv.FormatInt(charge.Loc.ID, 10), "qrcode")
	if err := c.do(ctx, http.MethodGet, locPath, nil, &qr); err != nil {
		return nil, err
	}

	return &model.PixCharge{
		TxID:        txid,
		QRCodeText:  qr.QRCode,
		QRCodeImage: qr.ImagemQRCode,
		ExpiresAt:   c.now().Add(ChargeTTL).UTC(),
	}, nil
}

func (c *HTTPClient) endpoint(parts ...string) string {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(append([]string{endpoint.Path}, parts...)...)
	return endpoint.String()
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, out)
	case resp.StatusCode == http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment provider request failed",
			slog.String("method", method),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("payment provider error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
