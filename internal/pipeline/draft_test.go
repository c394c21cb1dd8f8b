package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/maardu-realty/internal/apperrors"
	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

func TestBuildDraft(t *testing.T) {
	t.Parallel()

	business := &domain.BusinessDetails{
		Name:         "Maardu Kinnisvara OÜ",
		RegistryCode: "12345678",
		Address:      "Keskväljak 1, Maardu",
	}

	tests := []struct {
		name        string
		req         Request
		wantErr     string
		wantMessage string
		wantType    domain.InvoiceType
		wantDetails bool
	}{
		{
			name:     "private",
			req:      Request{PaymentInfo: domain.PaymentInfo{ListingID: "l-1"}, InvoiceType: domain.InvoicePrivate},
			wantType: domain.InvoicePrivate,
		},
		{
			name:     "empty type defaults to private",
			req:      Request{PaymentInfo: domain.PaymentInfo{ListingID: "l-1"}},
			wantType: domain.InvoicePrivate,
		},
		{
			name: "private drops business details",
			req: Request{
				PaymentInfo:     domain.PaymentInfo{ListingID: "l-1"},
				InvoiceType:     domain.InvoicePrivate,
				BusinessDetails: business,
			},
			wantType: domain.InvoicePrivate,
		},
		{
			name: "complete business",
			req: Request{
				PaymentInfo:     domain.PaymentInfo{ListingID: "l-1"},
				InvoiceType:     domain.InvoiceBusiness,
				BusinessDetails: business,
			},
			wantType:    domain.InvoiceBusiness,
			wantDetails: true,
		},
		{
			name: "business missing registry code",
			req: Request{
				PaymentInfo:     domain.PaymentInfo{ListingID: "l-1"},
				InvoiceType:     domain.InvoiceBusiness,
				BusinessDetails: &domain.BusinessDetails{Name: "X", Address: "Y"},
			},
			wantErr:     "businessDetails",
			wantMessage: "missing registryCode; required for business invoices",
		},
		{
			name: "business with blank name and address",
			req: Request{
				PaymentInfo:     domain.PaymentInfo{ListingID: "l-1"},
				InvoiceType:     domain.InvoiceBusiness,
				BusinessDetails: &domain.BusinessDetails{Name: " ", RegistryCode: "12345678"},
			},
			wantErr:     "businessDetails",
			wantMessage: "missing name, address; required for business invoices",
		},
		{
			name: "business without details",
			req: Request{
				PaymentInfo: domain.PaymentInfo{ListingID: "l-1"},
				InvoiceType: domain.InvoiceBusiness,
			},
			wantErr:     "businessDetails",
			wantMessage: "missing name, registryCode, address; required for business invoices",
		},
		{
			name:    "blank listing id",
			req:     Request{PaymentInfo: domain.PaymentInfo{ListingID: "   "}},
			wantErr: "paymentInfo.listingId",
		},
		{
			name:    "unknown type",
			req:     Request{PaymentInfo: domain.PaymentInfo{ListingID: "l-1"}, InvoiceType: "PRIVATE"},
			wantErr: "invoiceType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			draft, err := BuildDraft(tt.req)
			if tt.wantErr != "" {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErr, verr.Field)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, verr.Message)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "l-1", draft.ListingID)
			assert.Equal(t, tt.wantType, draft.InvoiceType)
			if tt.wantDetails {
				require.NotNil(t, draft.BusinessDetails)
				assert.Equal(t, *business, *draft.BusinessDetails)
				assert.NotSame(t, business, draft.BusinessDetails)
			} else {
				assert.Nil(t, draft.BusinessDetails)
			}
		})
	}
}

func TestBuildDraft_KeepsPaymentInfo(t *testing.T) {
	t.Parallel()

	req := testRequest()
	draft, err := BuildDraft(req)
	require.NoError(t, err)
	assert.Equal(t, req.PaymentInfo, draft.PaymentInfo)
}
