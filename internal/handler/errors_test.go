package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/pkg/response"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation error", domain.NewValidationError("cash_value", "must be non-negative"), http.StatusUnprocessableEntity, response.ErrCodeValidationFailed},
		{"wrapped validation error", fmt.Errorf("submit: %w", domain.NewValidationError("event_id", "required")), http.StatusUnprocessableEntity, response.ErrCodeValidationFailed},
		{"sponsor not found", domain.ErrSponsorNotFound, http.StatusNotFound, response.ErrCodeNotFound},
		{"deal not found", domain.ErrDealNotFound, http.StatusNotFound, response.ErrCodeNotFound},
		{"draft not found", domain.ErrDraftNotFound, http.StatusNotFound, response.ErrCodeNotFound},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusConflict, response.ErrCodeInvalidTransition},
		{"wrapped invalid transition", fmt.Errorf("negotiating -> paid: %w", domain.ErrInvalidTransition), http.StatusConflict, response.ErrCodeInvalidTransition},
		{"stale status", domain.ErrStaleStatus, http.StatusConflict, response.ErrCodeStaleStatus},
		{"inventory exhausted", domain.ErrInventoryExhausted, http.StatusConflict, response.ErrCodeInventoryExhausted},
		{"duplicate submit", domain.ErrDuplicateSubmit, http.StatusConflict, response.ErrCodeDuplicateEntry},
		{"commit failed", fmt.Errorf("%w: tx aborted", domain.ErrCommitFailed), http.StatusInternalServerError, response.ErrCodeCommitFailed},
		{"upstream unavailable", domain.ErrUpstreamUnavailable, http.StatusBadGateway, response.ErrCodeUpstreamUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, response.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body response.Response
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Success {
				t.Error("success = true, want false")
			}
			if body.Error == nil || body.Error.Code != tt.wantCode {
				t.Errorf("error code = %v, want %s", body.Error, tt.wantCode)
			}
		})
	}
}

// Validation details carry the offending field so clients can highlight it
func TestRespondErrorValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, domain.NewValidationError("package_id", "a package must be selected"))

	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error == nil {
		t.Fatal("error is nil")
	}
	if got := body.Error.Details["package_id"]; got != "a package must be selected" {
		t.Errorf("details[package_id] = %q, want the field reason", got)
	}
}
