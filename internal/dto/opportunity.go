package dto

// PackageInventory is one row of the per-event inventory ledger
type PackageInventory struct {
	PackageID    string  `json:"package_id"`
	Name         string  `json:"name"`
	DefaultPrice float64 `json:"default_price"`
	TotalSlots   int     `json:"total_slots"`
	Sold         int     `json:"sold"`
	Remaining    int     `json:"remaining"`
	Label        string  `json:"label"`
}

// OpportunityResponse is the per-event sales view: inventory plus
// revenue-vs-goal. Goal is a heuristic estimate, never reported revenue.
type OpportunityResponse struct {
	EventID           string             `json:"event_id"`
	EventName         string             `json:"event_name"`
	DaysToGo          int                `json:"days_to_go"`
	Raised            float64            `json:"raised"`
	GoalEstimate      float64            `json:"goal_estimate"`
	Status            string             `json:"status"`
	Packages          []PackageInventory `json:"packages"`
	MissingCategories []string           `json:"missing_categories"`
}

// ReadinessResponse is the per-event production health view
type ReadinessResponse struct {
	EventID          string  `json:"event_id"`
	ReadinessPercent int     `json:"readiness_percent"`
	PhasesCompleted  int     `json:"phases_completed"`
	TotalPhases      int     `json:"total_phases"`
	DaysToGo         int     `json:"days_to_go"`
	TicketsSold      int     `json:"tickets_sold"`
	TotalCapacity    int     `json:"total_capacity"`
	Revenue          float64 `json:"revenue"`
}
