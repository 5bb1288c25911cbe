package domain

import "time"

// WizardStep is one stage of the deal wizard
type WizardStep string

const (
	StepQualification WizardStep = "qualification"
	StepPackage       WizardStep = "package"
	StepContract      WizardStep = "contract"
	StepActivations   WizardStep = "activations"
	StepROIGoals      WizardStep = "roi_goals"
	StepReview        WizardStep = "review"
)

// WizardSteps lists the wizard stages in order. Submit is an action on
// the review step, not a step of its own.
func WizardSteps() []WizardStep {
	return []WizardStep{
		StepQualification,
		StepPackage,
		StepContract,
		StepActivations,
		StepROIGoals,
		StepReview,
	}
}

// StepIndex returns the position of a step, or -1 for an unknown step
func StepIndex(s WizardStep) int {
	for i, step := range WizardSteps() {
		if step == s {
			return i
		}
	}
	return -1
}

// StagedActivation is one activation captured in a draft before submit
type StagedActivation struct {
	Title       string `json:"title"`
	Type        string `json:"type,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// DealDraft is the caller-owned staging area for a new deal. Nothing in
// it is persisted to the deal tables until submit; the draft itself
// lives in the draft store keyed by ID.
type DealDraft struct {
	ID             string             `json:"id"`
	Step           WizardStep         `json:"step"`
	EventID        string             `json:"event_id,omitempty"`
	SponsorID      string             `json:"sponsor_id,omitempty"`
	PackageID      string             `json:"package_id,omitempty"`
	CashValue      float64            `json:"cash_value"`
	InKindValue    float64            `json:"in_kind_value"`
	ContractURL    string             `json:"contract_url,omitempty"`
	ContractSigned bool               `json:"contract_signed"`
	GoalNotes      string             `json:"goal_notes,omitempty"`
	Activations    []StagedActivation `json:"activations,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// GateError returns the validation error blocking the given step, or
// nil when the step's gate passes. Qualification is the only hard gate;
// review re-checks every hard gate before submit.
func (d *DealDraft) GateError(step WizardStep) error {
	switch step {
	case StepQualification, StepReview:
		if d.SponsorID == "" {
			return NewValidationError("sponsor_id", "a sponsor must be selected")
		}
		if d.EventID == "" {
			return NewValidationError("event_id", "an event must be selected")
		}
		if step == StepReview && d.PackageID == "" {
			return NewValidationError("package_id", "a package must be selected")
		}
	}
	return nil
}
