package dto

// ActivationInput is one planned activation captured by the deal wizard
type ActivationInput struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Type        string `json:"type" binding:"max=100"`
	Location    string `json:"location" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// SubmitDealRequest represents the atomic submit of a completed deal
// wizard draft. The deal row and all activation rows commit together.
type SubmitDealRequest struct {
	EventID        string            `json:"event_id" binding:"required"`
	SponsorID      string            `json:"sponsor_id" binding:"required"`
	PackageID      string            `json:"package_id" binding:"required"`
	CashValue      float64           `json:"cash_value" binding:"min=0"`
	InKindValue    float64           `json:"in_kind_value" binding:"min=0"`
	ContractURL    string            `json:"contract_url" binding:"omitempty,url"`
	ContractSigned bool              `json:"contract_signed"`
	Activations    []ActivationInput `json:"activations"`
	IdempotencyKey string            `json:"idempotency_key" binding:"max=128"`
}

// Validate validates the SubmitDealRequest
func (r *SubmitDealRequest) Validate() (bool, string) {
	if r.EventID == "" {
		return false, "Event ID is required"
	}
	if r.SponsorID == "" {
		return false, "Sponsor ID is required"
	}
	if r.PackageID == "" {
		return false, "Package ID is required"
	}
	if r.CashValue < 0 {
		return false, "Cash value must be non-negative"
	}
	if r.InKindValue < 0 {
		return false, "In-kind value must be non-negative"
	}
	for _, a := range r.Activations {
		if a.Title == "" {
			return false, "Activation title is required"
		}
	}
	return true, ""
}

// UpdateDealStatusRequest represents a status transition request.
// ExpectedStatus is the status the caller last read; the update is
// rejected as stale when it no longer matches.
type UpdateDealStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	ExpectedStatus string `json:"expected_status" binding:"required"`
	Reason         string `json:"reason" binding:"max=500"`
}

// Validate validates the UpdateDealStatusRequest
func (r *UpdateDealStatusRequest) Validate() (bool, string) {
	if r.Status == "" {
		return false, "Target status is required"
	}
	if r.ExpectedStatus == "" {
		return false, "Expected status is required"
	}
	return true, ""
}

// UpdateDealRequest represents the request to update deal terms
type UpdateDealRequest struct {
	CashValue   *float64 `json:"cash_value" binding:"omitempty,min=0"`
	InKindValue *float64 `json:"in_kind_value" binding:"omitempty,min=0"`
	ContractURL *string  `json:"contract_url" binding:"omitempty,url"`
	Level       *string  `json:"level" binding:"omitempty,min=1,max=100"`
}

// Validate validates the UpdateDealRequest
func (r *UpdateDealRequest) Validate() (bool, string) {
	if r.CashValue == nil && r.InKindValue == nil && r.ContractURL == nil && r.Level == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// DealResponse represents the response for a deal
type DealResponse struct {
	ID          string   `json:"id"`
	EventID     string   `json:"event_id"`
	SponsorID   string   `json:"sponsor_id"`
	SponsorName string   `json:"sponsor_name,omitempty"`
	Status      string   `json:"status"`
	Level       string   `json:"level"`
	CashValue   float64  `json:"cash_value"`
	InKindValue float64  `json:"in_kind_value"`
	TotalValue  float64  `json:"total_value"`
	ContractURL string   `json:"contract_url,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// DealListFilter represents filters for listing deals
type DealListFilter struct {
	EventID   string `form:"event_id"`
	SponsorID string `form:"sponsor_id"`
	Status    string `form:"status"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *DealListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
