package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/AlvinMunny27/Payizi-SA-Beta/internal/model"
)

// APIStyle selects the request convention of the lookup endpoint. Both
// conventions exist in deployed endpoints and are permanently supported.
type APIStyle int

const (
	// APIStyleModern issues ?action=getOrder&orderId=<REF>.
	APIStyleModern APIStyle = iota
	// APIStyleLegacy issues ?action=getStatus&orderRef=<REF>.
	APIStyleLegacy
)

const (
	DefaultRequestTimeout = 15 * time.Second

	maxRemoteMessageLen = 200
)

type IFetcher interface {
	FetchOrder(context.Context, string) (model.OrderRecord, error)
}

// OrderFetcher resolves an order reference against the remote
// spreadsheet-backed lookup endpoint. One network call per invocation,
// no retries; the caller decides whether to try again.
type OrderFetcher struct {
	client *http.Client
	logger *zap.SugaredLogger
	url    string
	style  APIStyle
}

func NewOrderFetcher(endpoint string, style APIStyle, timeout time.Duration, logger *zap.SugaredLogger) *OrderFetcher {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &OrderFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
		url:    endpoint,
		style:  style,
	}
}

func (f *OrderFetcher) FetchOrder(ctx context.Context, ref string) (model.OrderRecord, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref == "" {
		return model.OrderRecord{}, ErrInvalidInput
	}

	reqID := uuid.NewString()

	body, err := f.makeRequest(ctx, ref)
	if err != nil {
		f.logger.Errorf("FetchOrder %s [%s]: %s", ref, reqID, err.Error())
		return model.OrderRecord{}, err
	}

	order, err := parseLookupResponse(body)
	if err != nil {
		f.logger.Errorf("FetchOrder %s [%s]: %s", ref, reqID, err.Error())
		return model.OrderRecord{}, err
	}

	f.logger.Infof("FetchOrder %s [%s]: status %q", ref, reqID, order.Status)
	return order, nil
}

func (f *OrderFetcher) makeRequest(ctx context.Context, ref string) ([]byte, error) {
	q := url.Values{}
	switch f.style {
	case APIStyleLegacy:
		q.Set("action", "getStatus")
		q.Set("orderRef", ref)
	default:
		q.Set("action", "getOrder")
		q.Set("orderId", ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected HTTP status %d", ErrUnreachable, res.StatusCode)
	}

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}

	return buf.Bytes(), nil
}

// lookupEnvelope covers both response conventions: the nested
// {success, data: {...}} shape and the flat shape where the order fields sit
// next to "success" at the top level.
type lookupEnvelope struct {
	Success *bool           `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// rawOrder lists every field alias observed in deployed endpoints; the
// normalizer coalesces each pair into the canonical record.
type rawOrder struct {
	OrderID         string           `json:"orderId"`
	OrderRef        string           `json:"orderRef"`
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	Email           string           `json:"email"`
	USDAmount       *decimal.Decimal `json:"usdAmount"`
	Amount          *decimal.Decimal `json:"amount"`
	ZARTotal        *decimal.Decimal `json:"zarTotal"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate"`
	Rate            *decimal.Decimal `json:"rate"`
	PayiziFee       *decimal.Decimal `json:"payiziFee"`
	BeneficiaryName string           `json:"beneficiaryName"`
	Recipient       string           `json:"recipient"`
	Location        string           `json:"location"`
	Destination     string           `json:"destination"`
	Status          string           `json:"status"`
	CreatedAt       flexTime         `json:"createdAt"`
	Timestamp       flexTime         `json:"timestamp"`
	LastUpdated     flexTime         `json:"lastUpdated"`
}

func parseLookupResponse(body []byte) (model.OrderRecord, error) {
	var env lookupEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return model.OrderRecord{}, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}

	if env.Success != nil && !*env.Success {
		msg := strings.TrimSpace(env.Error)
		if msg == "" || strings.Contains(strings.ToLower(msg), "not found") {
			return model.OrderRecord{}, ErrOrderNotFound
		}
		if len(msg) > maxRemoteMessageLen {
			msg = msg[:maxRemoteMessageLen]
		}
		return model.OrderRecord{}, &RemoteError{Message: msg}
	}

	payload := body
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		payload = env.Data
	}

	var raw rawOrder
	if err := json.Unmarshal(payload, &raw); err != nil {
		return model.OrderRecord{}, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}

	return normalizeOrder(raw)
}

func normalizeOrder(raw rawOrder) (model.OrderRecord, error) {
	order := model.OrderRecord{
		OrderRef:        strings.ToUpper(strings.TrimSpace(coalesce(raw.OrderID, raw.OrderRef))),
		CustomerName:    strings.TrimSpace(raw.CustomerName),
		CustomerEmail:   strings.TrimSpace(coalesce(raw.CustomerEmail, raw.Email)),
		USDAmount:       coalesceDecimal(raw.USDAmount, raw.Amount),
		ZARTotal:        coalesceDecimal(raw.ZARTotal, nil),
		ExchangeRate:    coalesceDecimal(raw.ExchangeRate, raw.Rate),
		PayiziFee:       coalesceDecimal(raw.PayiziFee, nil),
		BeneficiaryName: strings.TrimSpace(coalesce(raw.BeneficiaryName, raw.Recipient)),
		Location:        strings.TrimSpace(raw.Location),
		Destination:     strings.TrimSpace(raw.Destination),
		Status:          strings.TrimSpace(raw.Status),
		CreatedAt:       coalesceTime(time.Time(raw.CreatedAt), time.Time(raw.Timestamp)),
		LastUpdated:     coalesceTime(time.Time(raw.LastUpdated), time.Time(raw.Timestamp)),
	}

	if order.OrderRef == "" || order.Status == "" {
		return model.OrderRecord{}, fmt.Errorf("%w: missing orderRef or status", ErrMalformedResponse)
	}

	for _, d := range []decimal.Decimal{order.USDAmount, order.ZARTotal, order.ExchangeRate, order.PayiziFee} {
		if d.IsNegative() {
			return model.OrderRecord{}, fmt.Errorf("%w: negative amount", ErrMalformedResponse)
		}
	}

	return order, nil
}

func coalesce(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

func coalesceDecimal(a, b *decimal.Decimal) decimal.Decimal {
	if a != nil {
		return *a
	}
	if b != nil {
		return *b
	}
	return decimal.Zero
}

func coalesceTime(a, b time.Time) time.Time {
	if !a.IsZero() {
		return a
	}
	return b
}

// flexTime decodes the timestamp shapes a spreadsheet hands out: RFC 3339
// strings, plain dates, or an epoch number. Anything else decodes to the
// zero time rather than failing the whole lookup.
type flexTime time.Time

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *flexTime) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		return nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, unquoted); err == nil {
				*t = flexTime(parsed)
				return nil
			}
		}
		return nil
	}

	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		if epoch > 1e12 { // milliseconds
			epoch /= 1000
		}
		*t = flexTime(time.Unix(epoch, 0).UTC())
	}
	return nil
}
