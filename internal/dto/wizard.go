package dto

// CreateDraftRequest represents the request to open a new deal wizard draft
type CreateDraftRequest struct {
	EventID   string `json:"event_id"`
	SponsorID string `json:"sponsor_id"`
}

// UpdateDraftStepRequest stages fields on the current step and then
// applies the requested navigation. Action is "next", "back" or "stay".
type UpdateDraftStepRequest struct {
	Action         string            `json:"action" binding:"required,oneof=next back stay"`
	EventID        *string           `json:"event_id"`
	SponsorID      *string           `json:"sponsor_id"`
	PackageID      *string           `json:"package_id"`
	CashValue      *float64          `json:"cash_value" binding:"omitempty,min=0"`
	InKindValue    *float64          `json:"in_kind_value" binding:"omitempty,min=0"`
	ContractURL    *string           `json:"contract_url" binding:"omitempty,url"`
	ContractSigned *bool             `json:"contract_signed"`
	GoalNotes      *string           `json:"goal_notes" binding:"omitempty,max=2000"`
	Activations    []ActivationInput `json:"activations"`
}

// Validate validates the UpdateDraftStepRequest
func (r *UpdateDraftStepRequest) Validate() (bool, string) {
	switch r.Action {
	case "next", "back", "stay":
	default:
		return false, "Action must be one of next, back, stay"
	}
	if r.CashValue != nil && *r.CashValue < 0 {
		return false, "Cash value must be non-negative"
	}
	if r.InKindValue != nil && *r.InKindValue < 0 {
		return false, "In-kind value must be non-negative"
	}
	for _, a := range r.Activations {
		if a.Title == "" {
			return false, "Activation title is required"
		}
	}
	return true, ""
}

// SubmitDraftRequest represents the final submit of a wizard draft
type SubmitDraftRequest struct {
	IdempotencyKey string `json:"idempotency_key" binding:"max=128"`
}

// DraftResponse represents the response for a wizard draft
type DraftResponse struct {
	ID             string            `json:"id"`
	Step           string            `json:"step"`
	StepIndex      int               `json:"step_index"`
	TotalSteps     int               `json:"total_steps"`
	Exited         bool              `json:"exited,omitempty"`
	EventID        string            `json:"event_id,omitempty"`
	SponsorID      string            `json:"sponsor_id,omitempty"`
	PackageID      string            `json:"package_id,omitempty"`
	CashValue      float64           `json:"cash_value"`
	InKindValue    float64           `json:"in_kind_value"`
	ContractURL    string            `json:"contract_url,omitempty"`
	ContractSigned bool              `json:"contract_signed"`
	GoalNotes      string            `json:"goal_notes,omitempty"`
	Activations    []ActivationInput `json:"activations,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}
