package client

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// PaymentRequest reports a completed payment.
type PaymentRequest struct {
	PaymentInfo     domain.PaymentInfo      `json:"paymentInfo"`
	InvoiceType     domain.InvoiceType      `json:"invoiceType,omitempty"`
	BusinessDetails *domain.BusinessDetails `json:"businessDetails,omitempty"`
}

// RecordPayment runs the payment pipeline and returns the resulting run.
func (c *Client) RecordPayment(ctx context.Context, req *PaymentRequest) (*domain.PipelineRun, error) {
	var run domain.PipelineRun
	if err := c.post(ctx, "/api/v1/payments", req, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// ListPayments returns the caller's payment runs, newest first. A zero
// limit uses the server default.
func (c *Client) ListPayments(ctx context.Context, limit int) ([]domain.PipelineRun, error) {
	path := "/api/v1/payments"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var runs []domain.PipelineRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetPayment returns one of the caller's runs.
func (c *Client) GetPayment(ctx context.Context, runID string) (*domain.PipelineRun, error) {
	var run domain.PipelineRun
	if err := c.get(ctx, "/api/v1/payments/"+url.PathEscape(runID), &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetInvoice returns the invoice for one of the caller's runs along with the
// file name the server suggests for it.
func (c *Client) GetInvoice(ctx context.Context, runID string) (*domain.Invoice, string, error) {
	var inv domain.Invoice
	header, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/payments/%s/invoice", url.PathEscape(runID)), nil, &inv)
	if err != nil {
		return nil, "", err
	}
	return &inv, attachmentName(header.Get("Content-Disposition")), nil
}

// ResumePayment continues a run from its last completed step.
func (c *Client) ResumePayment(ctx context.Context, runID string) (*domain.PipelineRun, error) {
	var run domain.PipelineRun
	if err := c.post(ctx, fmt.Sprintf("/api/v1/payments/%s/resume", url.PathEscape(runID)), nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func attachmentName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
