package dto

import "time"

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=200"`
	Venue     string    `json:"venue" binding:"max=200"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"`
}

// Validate validates the CreateEventRequest
func (r *CreateEventRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Event name is required"
	}
	if r.StartTime.IsZero() {
		return false, "Start time is required"
	}
	if !r.EndTime.IsZero() && r.EndTime.Before(r.StartTime) {
		return false, "End time must be after start time"
	}
	return true, ""
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Venue     *string    `json:"venue" binding:"omitempty,max=200"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// Validate validates the UpdateEventRequest
func (r *UpdateEventRequest) Validate() (bool, string) {
	if r.Name == nil && r.Venue == nil && r.StartTime == nil && r.EndTime == nil {
		return false, "At least one field must be provided for update"
	}
	if r.Name != nil && *r.Name == "" {
		return false, "Event name cannot be empty"
	}
	return true, ""
}

// EventResponse represents the response for an event
type EventResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Venue     string `json:"venue,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EventListFilter represents filters for listing events
type EventListFilter struct {
	Search   string `form:"search"`
	Upcoming bool   `form:"upcoming"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// SetDefaults sets default values for pagination
func (f *EventListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// CreateTicketTierRequest represents the request to add a ticket tier
type CreateTicketTierRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	Price         float64 `json:"price" binding:"min=0"`
	QuantityTotal int     `json:"quantity_total" binding:"min=0"`
}

// Validate validates the CreateTicketTierRequest
func (r *CreateTicketTierRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Tier name is required"
	}
	if r.Price < 0 {
		return false, "Price must be non-negative"
	}
	if r.QuantityTotal < 0 {
		return false, "Quantity must be non-negative"
	}
	return true, ""
}

// UpdateTicketTierRequest represents the request to update a ticket tier
type UpdateTicketTierRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Price         *float64 `json:"price" binding:"omitempty,min=0"`
	QuantityTotal *int     `json:"quantity_total" binding:"omitempty,min=0"`
	QuantitySold  *int     `json:"quantity_sold" binding:"omitempty,min=0"`
}

// Validate validates the UpdateTicketTierRequest
func (r *UpdateTicketTierRequest) Validate() (bool, string) {
	if r.Name == nil && r.Price == nil && r.QuantityTotal == nil && r.QuantitySold == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// TicketTierResponse represents the response for a ticket tier
type TicketTierResponse struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	QuantityTotal int     `json:"quantity_total"`
	QuantitySold  int     `json:"quantity_sold"`
	Revenue       float64 `json:"revenue"`
}

// UpdatePhaseRequest represents the request to move a checklist phase
type UpdatePhaseRequest struct {
	Status string `json:"status" binding:"required"`
}

// PhaseResponse represents the response for a production phase
type PhaseResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
	Status     string `json:"status"`
}
