package dto

import "time"

// CreateDeliverableRequest represents the request to add a deliverable to a deal
type CreateDeliverableRequest struct {
	Title   string     `json:"title" binding:"required,min=1,max=200"`
	DueDate *time.Time `json:"due_date"`
}

// Validate validates the CreateDeliverableRequest
func (r *CreateDeliverableRequest) Validate() (bool, string) {
	if r.Title == "" {
		return false, "Deliverable title is required"
	}
	return true, ""
}

// UploadDeliverableRequest records the asset URL returned by the
// external storage service.
type UploadDeliverableRequest struct {
	AssetURL string `json:"asset_url" binding:"required,url"`
}

// Validate validates the UploadDeliverableRequest
func (r *UploadDeliverableRequest) Validate() (bool, string) {
	if r.AssetURL == "" {
		return false, "Asset URL is required"
	}
	return true, ""
}

// ReviewDeliverableRequest approves or rejects an uploaded deliverable
type ReviewDeliverableRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Notes    string `json:"notes" binding:"max=2000"`
}

// Validate validates the ReviewDeliverableRequest
func (r *ReviewDeliverableRequest) Validate() (bool, string) {
	if r.Decision != "approved" && r.Decision != "rejected" {
		return false, "Decision must be approved or rejected"
	}
	return true, ""
}

// DeliverableResponse represents the response for a deliverable
type DeliverableResponse struct {
	ID        string `json:"id"`
	DealID    string `json:"deal_id"`
	Title     string `json:"title"`
	DueDate   string `json:"due_date,omitempty"`
	Status    string `json:"status"`
	AssetURL  string `json:"asset_url,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
