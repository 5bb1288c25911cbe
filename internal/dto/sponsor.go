package dto

// CreateSponsorRequest represents the request to add a sponsor to the directory
type CreateSponsorRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Industry     string `json:"industry" binding:"max=100"`
	Website      string `json:"website" binding:"omitempty,url"`
	LogoURL      string `json:"logo_url" binding:"omitempty,url"`
	ContactName  string `json:"contact_name" binding:"max=200"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
}

// Validate validates the CreateSponsorRequest
func (r *CreateSponsorRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Sponsor name is required"
	}
	return true, ""
}

// UpdateSponsorRequest represents the request to update a sponsor profile
type UpdateSponsorRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	Industry     *string `json:"industry" binding:"omitempty,max=100"`
	Website      *string `json:"website" binding:"omitempty,url"`
	LogoURL      *string `json:"logo_url" binding:"omitempty,url"`
	ContactName  *string `json:"contact_name" binding:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=50"`
}

// Validate validates the UpdateSponsorRequest
func (r *UpdateSponsorRequest) Validate() (bool, string) {
	if r.Name == nil && r.Industry == nil && r.Website == nil && r.LogoURL == nil &&
		r.ContactName == nil && r.ContactEmail == nil && r.ContactPhone == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Name != nil && *r.Name == "" {
		return false, "Sponsor name cannot be empty"
	}
	return true, ""
}

// SponsorResponse represents the response for a sponsor
type SponsorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Industry     string `json:"industry,omitempty"`
	Website      string `json:"website,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	IsArchived   bool   `json:"is_archived"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// SponsorListFilter represents filters for listing sponsors
type SponsorListFilter struct {
	Search          string `form:"search"`
	Industry        string `form:"industry"`
	IncludeArchived bool   `form:"include_archived"`
	Limit           int    `form:"limit"`
	Offset          int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *SponsorListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
