package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchbook/internal/domain/validation"
	"github.com/riskibarqy/matchbook/internal/usecase"
)

func TestWriteCreated_FlatBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeCreated(context.Background(), rec, 7, msgMatchAdded)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body["id"] != float64(7) || body["message"] != "Match added successfully" {
		t.Fatalf("unexpected body: %v", body)
	}
	if len(body) != 2 {
		t.Fatalf("expected only id and message, got %v", body)
	}
}

func TestWriteError_Mapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		internalMsg string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "violation",
			err:         fmt.Errorf("%w: %w", usecase.ErrInvalidInput, &validation.Violation{Reason: validation.InvalidDate}),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name:        "malformed",
			err:         fmt.Errorf("%w: unexpected EOF", usecase.ErrMalformedPayload),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON payload",
		},
		{
			name:        "forbidden",
			err:         usecase.ErrForbidden,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Forbidden: Unauthorized access",
		},
		{
			name:        "not found",
			err:         fmt.Errorf("%w: match=9", usecase.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Match not found",
		},
		{
			name:        "storage fault hides cause",
			err:         errors.New("database is locked"),
			internalMsg: msgFailedAddStats,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to add stats",
		},
		{
			name:        "storage fault default message",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err, tt.internalMsg)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d", rec.Code, tt.wantStatus)
			}
			var body map[string]any
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if body["error"] != tt.wantMessage {
				t.Fatalf("error=%v want=%q", body["error"], tt.wantMessage)
			}
		})
	}
}
