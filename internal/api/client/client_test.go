package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/maardu-realty/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListJobs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{
			name:       "plain body",
			status:     http.StatusInternalServerError,
			body:       `oops`,
			wantDetail: "oops",
		},
		{
			name:       "problem detail",
			status:     http.StatusConflict,
			body:       `{"title":"Conflict","status":409,"detail":"a payment is already being processed"}`,
			wantDetail: "a payment is already being processed",
		},
		{
			name:   "problem with field errors",
			status: http.StatusUnprocessableEntity,
			body: `{"status":422,"detail":"validation failed",` +
				`"errors":[{"message":"expected number >= 0","location":"query.price_min"}]}`,
			wantDetail: "validation failed; query.price_min: expected number >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).ListJobs(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.True(t, IsStatus(err, tt.status))
		})
	}
}

func TestClient_SendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/v1/session", r.URL.Path)
		_, _ = w.Write([]byte(`{"authenticated":true,"user":{"id":"u-1"},"features":["search","payment"]}`))
	}))
	defer srv.Close()

	view, err := New(srv.URL, WithToken("tok-123")).GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.True(t, view.Authenticated)
	assert.Equal(t, "u-1", view.User.ID)
	assert.Contains(t, view.Features, domain.FeaturePayment)
}

func TestClient_ListListings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    *ListListingsParams
		wantQuery string
	}{
		{name: "no params", params: nil, wantQuery: ""},
		{name: "zero params", params: &ListListingsParams{}, wantQuery: ""},
		{
			name:      "all params",
			params:    &ListListingsParams{Query: "sea view", PriceMin: 1500.5, PriceMax: 90000},
			wantQuery: "price_max=90000&price_min=1500.5&q=sea+view",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/listings", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				_ = json.NewEncoder(w).Encode(ListingsResponse{
					Listings: []domain.Listing{{ID: "l-1", Title: "Flat", Price: 50000, IsActive: true}},
					Visible:  1,
					Total:    3,
				})
			}))
			defer srv.Close()

			resp, err := New(srv.URL).ListListings(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Visible)
			assert.Equal(t, 3, resp.Total)
			require.Len(t, resp.Listings, 1)
			assert.Equal(t, "l-1", resp.Listings[0].ID)
		})
	}
}

func TestClient_RefreshListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/listings/refresh", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"refreshed","count":17}`))
	}))
	defer srv.Close()

	n, err := New(srv.URL).RefreshListings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17, n)
}

func TestClient_RecordPayment(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/payments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req PaymentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "l-9", req.PaymentInfo.ListingID)
		assert.Equal(t, domain.InvoiceBusiness, req.InvoiceType)

		_ = json.NewEncoder(w).Encode(domain.PipelineRun{
			ID: "run-9", ListingID: req.PaymentInfo.ListingID, Step: domain.StepCompleted,
		})
	}))
	defer srv.Close()

	run, err := New(srv.URL).RecordPayment(context.Background(), &PaymentRequest{
		PaymentInfo:     domain.PaymentInfo{ListingID: "l-9"},
		InvoiceType:     domain.InvoiceBusiness,
		BusinessDetails: &domain.BusinessDetails{Name: "Acme OÜ", RegistryCode: "1", Address: "Tallinn"},
	})
	require.NoError(t, err)
	assert.Equal(t, "run-9", run.ID)
	assert.Equal(t, domain.StepCompleted, run.Step)
}

func TestClient_PaymentRuns(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/payments":
			assert.Equal(t, "limit=5", r.URL.RawQuery)
			_, _ = w.Write([]byte(`[{"id":"run-1","step":"completed"},{"id":"run-2","step":"failed"}]`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/payments/run-2":
			_, _ = w.Write([]byte(`{"id":"run-2","step":"failed","failed_step":"activated"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/payments/run-2/resume":
			_, _ = w.Write([]byte(`{"id":"run-2","step":"completed"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	runs, err := c.ListPayments(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	run, err := c.GetPayment(ctx, "run-2")
	require.NoError(t, err)
	assert.Equal(t, domain.StepFailed, run.Step)
	assert.Equal(t, domain.StepActivated, run.FailedStep)

	run, err = c.ResumePayment(ctx, "run-2")
	require.NoError(t, err)
	assert.Equal(t, domain.StepCompleted, run.Step)
}

func TestClient_GetInvoice(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/payments/run-1/invoice", r.URL.Path)
		w.Header().Set("Content-Disposition", `attachment; filename="invoice-MR-7.json"`)
		_, _ = w.Write([]byte(`{"id":"inv-7","number":"MR-7","amount":49}`))
	}))
	defer srv.Close()

	inv, name, err := New(srv.URL).GetInvoice(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "inv-7", inv.ID)
	assert.InDelta(t, 49.0, inv.Amount, 0.001)
	assert.Equal(t, "invoice-MR-7.json", name)
}

func TestClient_CheckExpirations(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/expirations/check", r.URL.Path)
		_, _ = w.Write([]byte(`{"day":"2026-05-04T00:00:00Z","expired":4,"sent":2,"skipped":1,"failed":1}`))
	}))
	defer srv.Close()

	summary, err := New(srv.URL).CheckExpirations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Expired)
	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
}

func TestClient_JobHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/expiration_check", r.URL.Path)
		assert.Equal(t, "limit=3", r.URL.RawQuery)
		_, _ = w.Write([]byte(`[{"id":"j-1","job_name":"expiration_check","status":"succeeded"}]`))
	}))
	defer srv.Close()

	runs, err := New(srv.URL).GetJobHistory(context.Background(), "expiration_check", 3)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)
}

func TestAttachmentName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.json", attachmentName(`attachment; filename="a.json"`))
	assert.Empty(t, attachmentName(""))
	assert.Empty(t, attachmentName("attachment; filename"))
}
