// Package domain defines the core business types for the Maardu real-estate
// marketplace portal.
package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Listing is a property record offered on the marketplace. The remote
// marketplace service owns listings; the portal only holds a read-only copy.
type Listing struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Price     float64    `json:"price"`
	IsActive  bool       `json:"isActive"`
	UserID    string     `json:"userId"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	ExpiredAt *time.Time `json:"expiredAt,omitempty"`
}

// User is an authenticated marketplace user.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// InvoiceType selects the invoice variant issued after a payment.
type InvoiceType string

// Invoice type constants.
const (
	InvoicePrivate  InvoiceType = "private"
	InvoiceBusiness InvoiceType = "business"
)

// Valid reports whether t is a known invoice type.
func (t InvoiceType) Valid() bool {
	return t == InvoicePrivate || t == InvoiceBusiness
}

// BusinessDetails identifies the company an invoice is issued to. Only
// relevant when the invoice type is business.
type BusinessDetails struct {
	Name         string `json:"name"`
	RegistryCode string `json:"registryCode"`
	Address      string `json:"address"`
}

// Missing returns the JSON names of the business fields that are blank, in
// declaration order. A nil receiver is missing every field.
func (b *BusinessDetails) Missing() []string {
	if b == nil {
		return []string{"name", "registryCode", "address"}
	}
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", b.Name},
		{"registryCode", b.RegistryCode},
		{"address", b.Address},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Complete reports whether every business field is filled in.
func (b *BusinessDetails) Complete() bool {
	return len(b.Missing()) == 0
}

// PaymentInfo is the result of a completed payment as reported by the
// payment gateway integration. Only ListingID is required; the remaining
// fields are forwarded to the marketplace unchanged.
type PaymentInfo struct {
	ListingID string     `json:"listingId"`
	PaymentID string     `json:"paymentId,omitempty"`
	Amount    float64    `json:"amount,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	Method    string     `json:"method,omitempty"`
	Gateway   string     `json:"gateway,omitempty"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

// InvoiceDraft is the local merge of payment info with the invoice choice
// made before the payment.
type InvoiceDraft struct {
	PaymentInfo
	InvoiceType     InvoiceType      `json:"invoiceType"`
	BusinessDetails *BusinessDetails `json:"businessDetails,omitempty"`
}

// Invoice is the authoritative invoice record generated by the marketplace.
// Raw keeps the full server payload so it can be forwarded verbatim to the
// confirmation email endpoint.
type Invoice struct {
	ID       string          `json:"id"`
	Number   string          `json:"number,omitempty"`
	IssuedAt *time.Time      `json:"issuedAt,omitempty"`
	Amount   float64         `json:"amount,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Raw      json.RawMessage `json:"raw,omitempty"`
}

// PipelineStep is the persisted progress marker of a payment pipeline run.
// Each marker records the last step that completed successfully.
type PipelineStep string

// Pipeline step constants, in execution order.
const (
	StepDrafted   PipelineStep = "drafted"
	StepActivated PipelineStep = "activated"
	StepInvoiced  PipelineStep = "invoiced"
	StepEmailed   PipelineStep = "emailed"
	StepRefreshed PipelineStep = "refreshed"
	StepCompleted PipelineStep = "completed"
	StepFailed    PipelineStep = "failed"
)

// PipelineRun is one execution of the payment pipeline for a single
// payment event.
type PipelineRun struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	ListingID   string       `json:"listing_id"`
	Step        PipelineStep `json:"step"`
	FailedStep  PipelineStep `json:"failed_step,omitempty"`
	Draft       InvoiceDraft `json:"draft"`
	Invoice     *Invoice     `json:"invoice,omitempty"`
	Attempts    int          `json:"attempts"`
	LastError   string       `json:"last_error,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// Terminal reports whether the run will not progress without intervention.
func (r *PipelineRun) Terminal() bool {
	return r.Step == StepCompleted || r.Step == StepFailed
}

// ExpirationNotice records that an owner was notified about an expired
// listing on a given day.
type ExpirationNotice struct {
	ListingID string    `json:"listing_id"`
	UserID    string    `json:"user_id"`
	Day       time.Time `json:"day"`
	SentAt    time.Time `json:"sent_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"`
	JobName      string     `json:"job_name"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Status       string     `json:"status"`
	ErrorText    string     `json:"error_text,omitempty"`
	RowsAffected *int       `json:"rows_affected,omitempty"`
}

// JobStatus pairs a scheduled job with its most recent run. LastRun is nil
// for a job that has not run since the ledger was last pruned.
type JobStatus struct {
	Name    string  `json:"name"`
	LastRun *JobRun `json:"last_run,omitempty"`
}

// Feature names a piece of the portal that may be gated on a session.
type Feature string

// Feature constants.
const (
	FeatureSearch              Feature = "search"
	FeatureFilter              Feature = "filter"
	FeatureAuth                Feature = "auth"
	FeatureDashboard           Feature = "dashboard"
	FeaturePaymentHistory      Feature = "payment_history"
	FeatureInvoiceTypeSelector Feature = "invoice_type_selector"
	FeaturePayment             Feature = "payment"
)
