package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/maardu-realty/internal/pipeline"
	"github.com/donaldgifford/maardu-realty/internal/session"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// PaymentService runs and reports payment pipeline runs for a user.
type PaymentService interface {
	HandlePaymentSuccess(ctx context.Context, user *domain.User, req pipeline.Request) (*domain.PipelineRun, error)
	PaymentHistory(ctx context.Context, user *domain.User, limit int) ([]domain.PipelineRun, error)
	Payment(ctx context.Context, user *domain.User, runID string) (*domain.PipelineRun, error)
	Invoice(ctx context.Context, user *domain.User, runID string) (*domain.Invoice, error)
	ResumePayment(ctx context.Context, user *domain.User, runID string) (*domain.PipelineRun, error)
}

// PaymentsHandler handles payment endpoints. Every operation needs a
// signed-in user.
type PaymentsHandler struct {
	app PaymentService
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(app PaymentService) *PaymentsHandler {
	return &PaymentsHandler{app: app}
}

// --- Input/Output types ---

// PaymentSuccessBody is a completed payment plus the invoice choice made
// before paying.
type PaymentSuccessBody struct {
	PaymentInfo     domain.PaymentInfo      `json:"paymentInfo"                doc:"Payment result from the gateway"`
	InvoiceType     domain.InvoiceType      `json:"invoiceType,omitempty"      doc:"private (default) or business"`
	BusinessDetails *domain.BusinessDetails `json:"businessDetails,omitempty" doc:"Required for business invoices"`
}

// RecordPaymentInput is the request body for a payment success event.
type RecordPaymentInput struct {
	Body PaymentSuccessBody
}

// PaymentRunOutput is a single pipeline run.
type PaymentRunOutput struct {
	Body *domain.PipelineRun
}

// ListPaymentsInput pages through the caller's payment history.
type ListPaymentsInput struct {
	Limit int `query:"limit" doc:"Number of runs (default 50)" minimum:"1" maximum:"500"`
}

// ListPaymentsOutput is the caller's payment history.
type ListPaymentsOutput struct {
	Body []domain.PipelineRun
}

// PaymentIDInput selects a run by ID.
type PaymentIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Pipeline run UUID"`
}

// InvoiceOutput is an invoice served as a downloadable JSON document.
type InvoiceOutput struct {
	ContentDisposition string `header:"Content-Disposition"`
	Body               *domain.Invoice
}

// --- Handlers ---

// RecordPayment runs the payment pipeline for a completed payment and
// returns the run with its invoice. When a step fails the run is still
// recorded and its ID is returned in the problem details so it can be
// resumed.
func (h *PaymentsHandler) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*PaymentRunOutput, error) {
	user, err := session.RequireUser(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	run, err := h.app.HandlePaymentSuccess(ctx, user, pipeline.Request{
		PaymentInfo:     input.Body.PaymentInfo,
		InvoiceType:     input.Body.InvoiceType,
		BusinessDetails: input.Body.BusinessDetails,
	})
	if err != nil {
		if run != nil {
			return nil, toHTTPError(err, &huma.ErrorDetail{
				Message:  "run was recorded; resume it with POST /api/v1/payments/" + run.ID + "/resume",
				Location: "run_id",
				Value:    run.ID,
			})
		}
		return nil, toHTTPError(err)
	}
	return &PaymentRunOutput{Body: run}, nil
}

// ListPayments returns the caller's runs, newest first.
func (h *PaymentsHandler) ListPayments(ctx context.Context, input *ListPaymentsInput) (*ListPaymentsOutput, error) {
	user, err := session.RequireUser(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	runs, err := h.app.PaymentHistory(ctx, user, input.Limit)
	if err != nil {
		return nil, toHTTPError(err)
	}
	if runs == nil {
		runs = []domain.PipelineRun{}
	}
	return &ListPaymentsOutput{Body: runs}, nil
}

// GetPayment returns one of the caller's runs.
func (h *PaymentsHandler) GetPayment(ctx context.Context, input *PaymentIDInput) (*PaymentRunOutput, error) {
	user, err := session.RequireUser(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	run, err := h.app.Payment(ctx, user, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &PaymentRunOutput{Body: run}, nil
}

// GetInvoice returns the invoice generated for one of the caller's runs.
func (h *PaymentsHandler) GetInvoice(ctx context.Context, input *PaymentIDInput) (*InvoiceOutput, error) {
	user, err := session.RequireUser(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	inv, err := h.app.Invoice(ctx, user, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}

	name := inv.Number
	if name == "" {
		name = inv.ID
	}
	return &InvoiceOutput{
		ContentDisposition: fmt.Sprintf(`attachment; filename="invoice-%s.json"`, name),
		Body:               inv,
	}, nil
}

// ResumePayment continues one of the caller's runs from its last completed
// step.
func (h *PaymentsHandler) ResumePayment(ctx context.Context, input *PaymentIDInput) (*PaymentRunOutput, error) {
	user, err := session.RequireUser(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	run, err := h.app.ResumePayment(ctx, user, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &PaymentRunOutput{Body: run}, nil
}

// RegisterPaymentRoutes registers payment endpoints with the Huma API.
func RegisterPaymentRoutes(api huma.API, h *PaymentsHandler) {
	security := []map[string][]string{{"bearer": {}}}

	huma.Register(api, huma.Operation{
		OperationID: "record-payment",
		Method:      http.MethodPost,
		Path:        "/api/v1/payments",
		Summary:     "Record a successful payment",
		Description: "Drafts the invoice, activates the listing, generates the invoice, emails the " +
			"confirmation, and refreshes the listing set.",
		Tags:     []string{"payments"},
		Security: security,
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusConflict,
			http.StatusUnprocessableEntity,
			http.StatusBadGateway,
		},
	}, h.RecordPayment)

	huma.Register(api, huma.Operation{
		OperationID: "list-payments",
		Method:      http.MethodGet,
		Path:        "/api/v1/payments",
		Summary:     "Payment history",
		Description: "Returns the caller's payment runs, newest first.",
		Tags:        []string{"payments"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized},
	}, h.ListPayments)

	huma.Register(api, huma.Operation{
		OperationID: "get-payment",
		Method:      http.MethodGet,
		Path:        "/api/v1/payments/{id}",
		Summary:     "Get a payment run",
		Tags:        []string{"payments"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.GetPayment)

	huma.Register(api, huma.Operation{
		OperationID: "get-invoice",
		Method:      http.MethodGet,
		Path:        "/api/v1/payments/{id}/invoice",
		Summary:     "Download an invoice",
		Description: "Returns the invoice generated by the marketplace for a run that reached the invoiced step.",
		Tags:        []string{"payments"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.GetInvoice)

	huma.Register(api, huma.Operation{
		OperationID: "resume-payment",
		Method:      http.MethodPost,
		Path:        "/api/v1/payments/{id}/resume",
		Summary:     "Resume a payment run",
		Description: "Continues a stalled or failed run from its last completed step.",
		Tags:        []string{"payments"},
		Security:    security,
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusNotFound,
			http.StatusConflict,
			http.StatusBadGateway,
		},
	}, h.ResumePayment)
}
