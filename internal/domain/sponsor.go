package domain

import "time"

// Sponsor is a company in the sponsor directory. Sponsors are never
// hard-deleted because historical deals reference them; archiving hides
// them from the directory instead.
type Sponsor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Industry     string     `json:"industry,omitempty"`
	Website      string     `json:"website,omitempty"`
	LogoURL      string     `json:"logo_url,omitempty"`
	ContactName  string     `json:"contact_name,omitempty"`
	ContactEmail string     `json:"contact_email,omitempty"`
	ContactPhone string     `json:"contact_phone,omitempty"`
	// OwnerUserID links the sponsor to a portal user for self-service access
	OwnerUserID *string   `json:"owner_user_id,omitempty"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks sponsor invariants before a write
func (s *Sponsor) Validate() error {
	if s.Name == "" {
		return NewValidationError("name", "is required")
	}
	return nil
}
