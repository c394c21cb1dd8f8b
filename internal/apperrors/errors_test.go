package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "network error", err: NewNetworkError("activate", context.DeadlineExceeded), want: true},
		{name: "wrapped network error", err: fmt.Errorf("step: %w", NewNetworkError("x", errors.New("reset"))), want: true},
		{name: "server error", err: NewServerRejection("invoice", http.StatusBadGateway, ""), want: true},
		{name: "rate limited", err: NewServerRejection("invoice", http.StatusTooManyRequests, ""), want: true},
		{name: "client error", err: NewServerRejection("invoice", http.StatusBadRequest, "bad"), want: false},
		{name: "validation", err: NewValidationError("listingId", "required"), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "activate: network error: EOF",
		NewNetworkError("activate", errors.New("EOF")).Error())
	assert.Equal(t, "invoice: rejected (HTTP 400): missing user",
		NewServerRejection("invoice", 400, "missing user").Error())
	assert.Equal(t, "invoice: rejected (HTTP 500)",
		NewServerRejection("invoice", 500, "").Error())
	assert.Equal(t, "businessDetails.name: required",
		NewValidationError("businessDetails.name", "required").Error())
	assert.Equal(t, "pipeline run conflict: listing l1 in progress",
		NewConflictError("pipeline run", "listing l1 in progress").Error())
	assert.Equal(t, "pipeline run not found: r1", NewNotFoundError("pipeline run", "r1").Error())
	assert.Equal(t, "listing not found", NewNotFoundError("listing", "").Error())
}

func TestNetworkError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewNetworkError("list", context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
}
