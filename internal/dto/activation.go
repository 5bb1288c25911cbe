package dto

// CreateActivationRequest represents the request to add an activation to a deal
type CreateActivationRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Type        string `json:"type" binding:"max=100"`
	Location    string `json:"location" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// Validate validates the CreateActivationRequest
func (r *CreateActivationRequest) Validate() (bool, string) {
	if r.Title == "" {
		return false, "Activation title is required"
	}
	return true, ""
}

// UpdateActivationStatusRequest moves an activation along its pipeline.
// Force allows an operator to skip forward more than one step.
type UpdateActivationStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Force  bool   `json:"force"`
}

// ActivationResponse represents the response for an activation
type ActivationResponse struct {
	ID          string `json:"id"`
	DealID      string `json:"deal_id"`
	Title       string `json:"title"`
	Type        string `json:"type,omitempty"`
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
