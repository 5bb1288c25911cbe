package dto

// DeliverableTemplateInput is one templated asset on a package
type DeliverableTemplateInput struct {
	Title     string `json:"title" binding:"required,min=1,max=200"`
	DueInDays int    `json:"due_in_days" binding:"omitempty,min=0"`
}

// CreatePackageRequest represents the request to create a sponsorship package
type CreatePackageRequest struct {
	Name         string                     `json:"name" binding:"required,min=1,max=100"`
	DefaultPrice float64                    `json:"default_price" binding:"min=0"`
	DefaultSlots int                        `json:"default_slots" binding:"min=0"`
	Deliverables []DeliverableTemplateInput `json:"deliverables"`
}

// Validate validates the CreatePackageRequest
func (r *CreatePackageRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Package name is required"
	}
	if r.DefaultPrice < 0 {
		return false, "Default price must be non-negative"
	}
	if r.DefaultSlots < 0 {
		return false, "Default slots must be non-negative"
	}
	for _, d := range r.Deliverables {
		if d.Title == "" {
			return false, "Deliverable template title is required"
		}
	}
	return true, ""
}

// UpdatePackageRequest represents the request to update a package template
type UpdatePackageRequest struct {
	Name         *string                    `json:"name" binding:"omitempty,min=1,max=100"`
	DefaultPrice *float64                   `json:"default_price" binding:"omitempty,min=0"`
	DefaultSlots *int                       `json:"default_slots" binding:"omitempty,min=0"`
	Deliverables []DeliverableTemplateInput `json:"deliverables"`
}

// Validate validates the UpdatePackageRequest
func (r *UpdatePackageRequest) Validate() (bool, string) {
	if r.Name == nil && r.DefaultPrice == nil && r.DefaultSlots == nil && r.Deliverables == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Name != nil && *r.Name == "" {
		return false, "Package name cannot be empty"
	}
	return true, ""
}

// PackageResponse represents the response for a package
type PackageResponse struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	DefaultPrice float64                    `json:"default_price"`
	DefaultSlots int                        `json:"default_slots"`
	Deliverables []DeliverableTemplateInput `json:"deliverables,omitempty"`
	CreatedAt    string                     `json:"created_at"`
	UpdatedAt    string                     `json:"updated_at"`
}

// PackageAvailabilityResponse reports remaining inventory for one
// package on one event.
type PackageAvailabilityResponse struct {
	PackageID  string `json:"package_id"`
	EventID    string `json:"event_id"`
	TotalSlots int    `json:"total_slots"`
	Sold       int    `json:"sold"`
	Remaining  int    `json:"remaining"`
	Label      string `json:"label"`
}
