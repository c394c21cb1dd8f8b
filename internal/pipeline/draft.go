package pipeline

import (
	"strings"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

// Request is a successful payment event together with the invoice choice the
// user made before paying.
type Request struct {
	PaymentInfo     domain.PaymentInfo      `json:"paymentInfo"`
	InvoiceType     domain.InvoiceType      `json:"invoiceType"`
	BusinessDetails *domain.BusinessDetails `json:"businessDetails,omitempty"`
}

// BuildDraft validates req and merges it into an invoice draft. An empty
// invoice type means private. Business details are dropped for private
// invoices and must be complete for business ones.
func BuildDraft(req Request) (domain.InvoiceDraft, error) {
	info := req.PaymentInfo
	info.ListingID = strings.TrimSpace(info.ListingID)
	if info.ListingID == "" {
		return domain.InvoiceDraft{}, apperrors.NewValidationError("paymentInfo.listingId", "required")
	}

	invoiceType := req.InvoiceType
	if invoiceType == "" {
		invoiceType = domain.InvoicePrivate
	}
	if !invoiceType.Valid() {
		return domain.InvoiceDraft{}, apperrors.NewValidationError("invoiceType",
			`must be "private" or "business", got "`+string(invoiceType)+`"`)
	}

	draft := domain.InvoiceDraft{
		PaymentInfo: info,
		InvoiceType: invoiceType,
	}

	if invoiceType == domain.InvoiceBusiness {
		if missing := req.BusinessDetails.Missing(); len(missing) > 0 {
			return domain.InvoiceDraft{}, apperrors.NewValidationError("businessDetails",
				"missing "+strings.Join(missing, ", ")+"; required for business invoices")
		}
		details := *req.BusinessDetails
		draft.BusinessDetails = &details
	}

	return draft, nil
}
