// Package customs is the client of the government customs calculator. It only
// shapes requests and unwraps responses; every figure it returns is
// authoritative and is never substituted on failure.
package customs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"carimport/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultTimeout = 10 * time.Second

	dateLayout   = "02-01-2006"
	maxBodyBytes = 1 << 20
)

// engineCodes maps engine types onto the calculator's numeric codes.
var engineCodes = map[string]int{
	model.EngineGasoline: 1,
	model.EngineDiesel:   2,
	model.EngineElectric: 3,
	model.EngineHybrid:   4,
}

// TaxRequest describes the vehicle as the calculator expects it.
type TaxRequest struct {
	PriceUSD           decimal.Decimal
	EngineVolumeLiters decimal.Decimal
	EngineType         string
	PurchaseDate       time.Time
	IsLegalEntity      bool
	IsOffRoad          bool
	EnginePowerKW      *decimal.Decimal
}

// TaxRequestFromQuote extracts the customs-relevant fields of a quote.
func TaxRequestFromQuote(q model.VehicleQuote) TaxRequest {
	return TaxRequest{
		PriceUSD:           q.PriceUSD,
		EngineVolumeLiters: q.EngineVolumeLiters,
		EngineType:         q.EngineType,
		PurchaseDate:       q.PurchaseDate.Time,
		IsLegalEntity:      q.IsLegalEntity(),
		IsOffRoad:          q.IsOffRoad,
		EnginePowerKW:      q.EnginePowerKW,
	}
}

// Calculator computes customs figures for a vehicle.
type Calculator interface {
	Compute(ctx context.Context, req TaxRequest) (model.TaxResult, error)
}

type Client struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// ClientOption configures Client.
type ClientOption func(*Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			// copy so a client passed to WithHTTPClient is left untouched
			client := *c.client
			client.Timeout = d
			c.client = &client
		}
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// taxResponse is the calculator's payload. Amounts arrive as numbers or
// numeric strings.
type taxResponse struct {
	GlobTax   *decimal.Decimal `json:"globTax"`
	EnvTaxPay *decimal.Decimal `json:"envTaxPay"`
	NDS       *decimal.Decimal `json:"nds"`
	SumPay    *decimal.Decimal `json:"sumPay"`
	Type      json.RawMessage  `json:"type"`
}

// Compute queries the calculator. Any failure is reported as
// model.ErrTaxServiceUnavailable.
func (c *Client) Compute(ctx context.Context, req TaxRequest) (model.TaxResult, error) {
	query, err := encodeQuery(req)
	if err != nil {
		return model.TaxResult{}, err
	}

	endpoint, err := url.Parse(c.endpoint)
	if err != nil || c.endpoint == "" {
		return model.TaxResult{}, fmt.Errorf("%w: invalid endpoint %q", model.ErrTaxServiceUnavailable, c.endpoint)
	}
	endpoint.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return model.TaxResult{}, fmt.Errorf("%w: create request: %v", model.ErrTaxServiceUnavailable, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return model.TaxResult{}, fmt.Errorf("%w: http request: %w", model.ErrTaxServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return model.TaxResult{}, fmt.Errorf("%w: read response: %w", model.ErrTaxServiceUnavailable, err)
	}
	c.logger.Debug("customs calculator responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.TaxResult{}, fmt.Errorf("%w: unexpected status %d", model.ErrTaxServiceUnavailable, resp.StatusCode)
	}

	var payload taxResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.TaxResult{}, fmt.Errorf("%w: unmarshal response: %w", model.ErrTaxServiceUnavailable, err)
	}
	return payload.toResult()
}

func encodeQuery(req TaxRequest) (url.Values, error) {
	code, ok := engineCodes[req.EngineType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported engine type %q", model.ErrInvalidQuoteInput, req.EngineType)
	}
	if req.PurchaseDate.IsZero() {
		return nil, fmt.Errorf("%w: purchase date is required", model.ErrInvalidQuoteInput)
	}

	volume := req.EngineVolumeLiters
	if req.EngineType == model.EngineElectric {
		volume = decimal.Zero
	}

	q := url.Values{}
	q.Set("price", req.PriceUSD.String())
	q.Set("volume", volume.String())
	q.Set("engineType", strconv.Itoa(code))
	q.Set("date", req.PurchaseDate.Format(dateLayout))
	q.Set("isLegal", strconv.FormatBool(req.IsLegalEntity))
	q.Set("offRoad", strconv.FormatBool(req.IsOffRoad))
	if req.EnginePowerKW != nil {
		q.Set("ICEpower", req.EnginePowerKW.String())
	}
	return q, nil
}

func (r taxResponse) toResult() (model.TaxResult, error) {
	if r.GlobTax == nil || r.NDS == nil || r.EnvTaxPay == nil {
		return model.TaxResult{}, fmt.Errorf("%w: response missing tax figures", model.ErrTaxServiceUnavailable)
	}

	total := r.GlobTax.Add(*r.NDS).Add(*r.EnvTaxPay)
	if r.SumPay != nil {
		total = *r.SumPay
	}

	return model.TaxResult{
		CustomsDutyLocal:      *r.GlobTax,
		VATLocal:              *r.NDS,
		EnvironmentalTaxLocal: *r.EnvTaxPay,
		TotalLocal:            total,
		RegimeLabel:           regimeLabel(r.Type),
	}, nil
}

// regimeLabel accepts the regime as a string or a bare number.
func regimeLabel(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
