package handlers

import (
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "opportunity-discovery-api/core/errors"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var statusErr huma.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a huma status error, got %T", err)
	}
	return statusErr.GetStatus()
}

func TestToHumaError_Nil(t *testing.T) {
	if toHumaError(nil) != nil {
		t.Error("nil error should stay nil")
	}
}

func TestToHumaError_NotFound(t *testing.T) {
	err := toHumaError(&coreerrors.NotFoundError{Resource: "company", ID: "x"})

	if status := statusOf(t, err); status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestToHumaError_Validation(t *testing.T) {
	err := toHumaError(&coreerrors.ValidationError{Field: "query", Message: "cannot be empty"})

	if status := statusOf(t, err); status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestToHumaError_Configuration(t *testing.T) {
	err := toHumaError(&coreerrors.ConfigurationError{Setting: "BRAVE_SEARCH_API_KEY", Message: "missing"})

	if status := statusOf(t, err); status != 503 {
		t.Errorf("status = %d, want 503", status)
	}
}

func TestToHumaError_Upstream(t *testing.T) {
	tests := []struct {
		name       string
		upstream   int
		wantStatus int
	}{
		{"rate limited", 429, 429},
		{"server error", 500, 503},
		{"bad gateway from provider", 502, 503},
		{"client error", 401, 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toHumaError(&coreerrors.UpstreamError{
				Provider:   "brave",
				StatusCode: tt.upstream,
				Body:       "boom",
			})

			if status := statusOf(t, err); status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
		})
	}
}

func TestToHumaError_Unknown(t *testing.T) {
	err := toHumaError(errors.New("something odd"))

	if status := statusOf(t, err); status != 500 {
		t.Errorf("status = %d, want 500", status)
	}
}
