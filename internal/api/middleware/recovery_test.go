package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		handler    echo.HandlerFunc
		wantStatus int
		wantLog    []string
	}{
		{
			name:       "no panic passes through silently",
			method:     http.MethodGet,
			path:       "/api/v1/listings",
			handler:    func(c echo.Context) error { return c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
		},
		{
			name:       "string panic",
			method:     http.MethodPost,
			path:       "/api/v1/payments",
			handler:    func(echo.Context) error { panic("nil invoice") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"panic recovered", "nil invoice", "path=/api/v1/payments", "method=POST", "stack="},
		},
		{
			name:       "non-string panic",
			method:     http.MethodPost,
			path:       "/api/v1/expirations/check",
			handler:    func(echo.Context) error { panic(42) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"error=42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(tt.method, tt.path, http.NoBody), rec)

			require.NoError(t, Recovery(slog.New(slog.NewTextHandler(&buf, nil)))(tt.handler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if len(tt.wantLog) == 0 {
				assert.Empty(t, buf.String())
				return
			}
			for _, f := range tt.wantLog {
				assert.Contains(t, buf.String(), f)
			}

			var problem huma.ErrorModel
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, http.StatusInternalServerError, problem.Status)
			assert.Equal(t, "internal server error", problem.Detail)
		})
	}
}

func TestRecovery_CommittedResponseKept(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/payments/run-1/invoice", http.NoBody), rec)

	handler := Recovery(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusOK)
		panic("stream broke")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Contains(t, buf.String(), "stream broke")
}

func TestRecovery_LogsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings", http.NoBody)
	req.Header.Set(requestIDHeader, "req-77")
	rec := httptest.NewRecorder()

	handler := RequestLog(logger)(Recovery(logger)(func(echo.Context) error {
		panic("boom")
	}))

	require.NoError(t, handler(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "request_id=req-77")
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())
	handler := Recovery(slog.New(slog.DiscardHandler))(func(echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = handler(c) })
}
