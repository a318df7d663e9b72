package features_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/augurk/augurk/internal/features"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			"not found error",
			features.ErrNotFound,
			http.StatusNotFound,
		},
		{
			"wrapped not found error",
			fmt.Errorf("failed: %w", features.ErrNotFound),
			http.StatusNotFound,
		},
		{
			"duplicate error",
			features.ErrDuplicate,
			http.StatusConflict,
		},
		{
			"wrapped duplicate error",
			fmt.Errorf("failed: %w", features.ErrDuplicate),
			http.StatusConflict,
		},
		{
			"payload too large error",
			features.ErrPayloadTooLarge,
			http.StatusRequestEntityTooLarge,
		},
		{
			"invalid payload error",
			features.ErrInvalidPayload,
			http.StatusBadRequest,
		},
		{
			"unknown error",
			errors.New("unknown error"),
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := features.MapHTTPStatus(tt.err)
			if got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
