package response

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSuccess(t *testing.T) {
	data := map[string]string{"deal_id": "d-1"}
	resp := Success(data)

	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Data == nil {
		t.Error("Expected data to be set")
	}
	if resp.Error != nil {
		t.Error("Expected error to be nil")
	}
	if resp.Meta != nil {
		t.Error("Expected meta to be nil")
	}
}

func TestError_JSONFormat(t *testing.T) {
	resp := InventoryExhausted("")

	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if parsed["success"] != false {
		t.Error("Expected success to be false")
	}

	errObj, ok := parsed["error"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected error object in response")
	}
	if errObj["code"] != ErrCodeInventoryExhausted {
		t.Errorf("code = %v, want %v", errObj["code"], ErrCodeInventoryExhausted)
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeValidationFailed, http.StatusUnprocessableEntity},
		{ErrCodeInvalidTransition, http.StatusConflict},
		{ErrCodeStaleStatus, http.StatusConflict},
		{ErrCodeInventoryExhausted, http.StatusConflict},
		{ErrCodeCommitFailed, http.StatusInternalServerError},
		{ErrCodeUpstreamUnavailable, http.StatusBadGateway},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := GetHTTPStatus(tt.code); got != tt.want {
				t.Errorf("GetHTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestPaginated(t *testing.T) {
	resp := Paginated([]string{"a", "b"}, 2, 20, 41)

	if resp.Meta == nil {
		t.Fatal("Expected meta to be set")
	}
	if resp.Meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.Meta.TotalPages)
	}
	if resp.Meta.Page != 2 {
		t.Errorf("Page = %d, want 2", resp.Meta.Page)
	}
}
