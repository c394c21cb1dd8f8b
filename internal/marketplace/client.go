// Package marketplace is the HTTP client for the remote real-estate
// marketplace service that owns listings, activation, invoicing, and email
// delivery.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	"github.com/donaldgifford/maardu-realty/internal/metrics"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

const tracerName = "github.com/donaldgifford/maardu-realty/internal/marketplace"

// Remote endpoint paths.
const (
	pathListings          = "/api/listings"
	pathActivateListing   = "/api/activate-listing"
	pathGenerateInvoice   = "/api/generate-invoice"
	pathPaymentEmail      = "/api/send-payment-confirmation-email"
	pathExpiredListings   = "/api/check-expired-listings"
	pathExpirationEmail   = "/api/send-expiration-email"
	maxErrorBodyBytes     = 4096
	defaultRequestTimeout = 15 * time.Second
)

// API is the set of remote marketplace operations the portal depends on.
type API interface {
	ListListings(ctx context.Context) ([]domain.Listing, error)
	ActivateListing(ctx context.Context, userID, listingID string) error
	GenerateInvoice(ctx context.Context, userID string, info domain.PaymentInfo) (*domain.Invoice, error)
	SendPaymentConfirmation(
		ctx context.Context,
		userID string,
		info domain.PaymentInfo,
		invoice *domain.Invoice,
	) error
	CheckExpiredListings(ctx context.Context) ([]domain.Listing, error)
	SendExpirationEmail(ctx context.Context, userID, listingID string) error
}

// Client implements API over JSON/HTTP.
type Client struct {
	baseURL      string
	serviceToken string
	timeout      time.Duration
	httpClient   *http.Client
	limiter      *RateLimiter
	tracer       trace.Tracer
}

// New creates a client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    defaultRequestTimeout,
		httpClient: http.DefaultClient,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithServiceToken sends the token as a bearer credential on every call.
func WithServiceToken(token string) Option {
	return func(c *Client) {
		c.serviceToken = token
	}
}

// WithTimeout bounds each individual call. Zero disables the per-call
// timeout and relies on the caller's context alone.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimiter throttles outbound calls.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(c *Client) {
		c.limiter = rl
	}
}

// --- Wire types ---

type activateRequest struct {
	UserID    string `json:"userId"`
	ListingID string `json:"listingId"`
}

type generateInvoiceRequest struct {
	UserID      string             `json:"userId"`
	PaymentInfo domain.PaymentInfo `json:"paymentInfo"`
}

type paymentEmailRequest struct {
	UserID      string             `json:"userId"`
	PaymentInfo domain.PaymentInfo `json:"paymentInfo"`
	Invoice     json.RawMessage    `json:"invoice"`
}

type expiredListingsResponse struct {
	ExpiredListings []domain.Listing `json:"expiredListings"`
}

type expirationEmailRequest struct {
	UserID    string `json:"userId"`
	ListingID string `json:"listingId"`
}

// --- Operations ---

// ListListings returns the full listing collection.
func (c *Client) ListListings(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.do(ctx, "list_listings", http.MethodGet, pathListings, nil, &listings); err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return listings, nil
}

// ActivateListing marks the paid listing active for the given user.
func (c *Client) ActivateListing(ctx context.Context, userID, listingID string) error {
	return c.do(ctx, "activate_listing", http.MethodPost, pathActivateListing,
		activateRequest{UserID: userID, ListingID: listingID}, nil)
}

// GenerateInvoice asks the marketplace to produce the authoritative invoice
// for a payment. The response may be the invoice itself or an object
// wrapping it under "invoice".
func (c *Client) GenerateInvoice(
	ctx context.Context,
	userID string,
	info domain.PaymentInfo,
) (*domain.Invoice, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "generate_invoice", http.MethodPost, pathGenerateInvoice,
		generateInvoiceRequest{UserID: userID, PaymentInfo: info}, &raw); err != nil {
		return nil, err
	}

	inv, err := DecodeInvoice(raw)
	if err != nil {
		return nil, apperrors.NewServerRejection("generate_invoice", http.StatusOK, err.Error())
	}
	return inv, nil
}

// SendPaymentConfirmation notifies the user that the payment succeeded,
// carrying the generated invoice verbatim.
func (c *Client) SendPaymentConfirmation(
	ctx context.Context,
	userID string,
	info domain.PaymentInfo,
	invoice *domain.Invoice,
) error {
	if invoice == nil {
		return apperrors.NewValidationError("invoice", "required for the confirmation email")
	}

	raw := invoice.Raw
	if len(raw) == 0 {
		encoded, err := json.Marshal(invoice)
		if err != nil {
			return fmt.Errorf("marshaling invoice: %w", err)
		}
		raw = encoded
	}

	return c.do(ctx, "send_payment_confirmation", http.MethodPost, pathPaymentEmail,
		paymentEmailRequest{UserID: userID, PaymentInfo: info, Invoice: raw}, nil)
}

// CheckExpiredListings returns the listings the marketplace considers
// expired.
func (c *Client) CheckExpiredListings(ctx context.Context) ([]domain.Listing, error) {
	var resp expiredListingsResponse
	if err := c.do(ctx, "check_expired_listings", http.MethodGet, pathExpiredListings, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ExpiredListings, nil
}

// SendExpirationEmail requests an expiration notice for one listing owner.
func (c *Client) SendExpirationEmail(ctx context.Context, userID, listingID string) error {
	return c.do(ctx, "send_expiration_email", http.MethodPost, pathExpirationEmail,
		expirationEmailRequest{UserID: userID, ListingID: listingID}, nil)
}

// DecodeInvoice parses an invoice payload, unwrapping an {"invoice": ...}
// envelope when present. The original bytes are kept in Raw.
func DecodeInvoice(data []byte) (*domain.Invoice, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty invoice response")
	}

	var envelope struct {
		Invoice json.RawMessage `json:"invoice"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding invoice: %w", err)
	}
	if len(envelope.Invoice) > 0 && !bytes.Equal(envelope.Invoice, []byte("null")) {
		data = envelope.Invoice
	}

	inv := &domain.Invoice{}
	if err := json.Unmarshal(data, inv); err != nil {
		return nil, fmt.Errorf("decoding invoice: %w", err)
	}
	inv.Raw = append(json.RawMessage(nil), data...)
	return inv, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, dst any) (err error) {
	ctx, span := c.tracer.Start(ctx, "marketplace."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.MarketplaceRequestDuration.WithLabelValues(op, outcome).
			Observe(time.Since(start).Seconds())
		span.End()
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperrors.NewNetworkError(op, err)
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshaling request body: %w", op, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewNetworkError(op, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := string(respBody)
		if len(msg) > maxErrorBodyBytes {
			msg = msg[:maxErrorBodyBytes]
		}
		return apperrors.NewServerRejection(op, resp.StatusCode, strings.TrimSpace(msg))
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return apperrors.NewServerRejection(op, resp.StatusCode,
				fmt.Sprintf("decoding response: %v", err))
		}
	}

	return nil
}
