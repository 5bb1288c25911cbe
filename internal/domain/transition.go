package domain

import "fmt"

// Deal transition warnings surfaced to the caller without blocking the
// write. The UI renders WarningContractPending as "Contract Pending".
const (
	WarningContractPending = "contract_pending"
)

// DealTransitionContext carries the side-effect inputs for a deal
// status transition.
type DealTransitionContext struct {
	ContractURL string
	// Reason is required when leaving paid for churned
	Reason string
}

// TransitionResult is the outcome of an accepted transition
type TransitionResult struct {
	NewStatus string
	// NoOp is true when the requested status equals the current one
	NoOp     bool
	Warnings []string
}

// TransitionDeal validates a deal status transition and evaluates its
// side-effect checks. Pure over the transition graph; performs no I/O.
// Requesting the current status is always a no-op success.
func TransitionDeal(current, requested DealStatus, tctx DealTransitionContext) (*TransitionResult, error) {
	if !current.IsValid() {
		return nil, fmt.Errorf("%w: unknown current status %q", ErrInvalidTransition, current)
	}
	if !requested.IsValid() {
		return nil, fmt.Errorf("%w: unknown requested status %q", ErrInvalidTransition, requested)
	}

	if current == requested {
		return &TransitionResult{NewStatus: string(current), NoOp: true}, nil
	}

	if !current.CanTransitionTo(requested) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
	}

	if current == DealStatusPaid && requested == DealStatusChurned && tctx.Reason == "" {
		return nil, NewValidationError("reason", "is required when churning a paid deal")
	}

	result := &TransitionResult{NewStatus: string(requested)}

	// Entering signed without a contract is allowed, but flagged so the
	// caller can surface the gap.
	if requested == DealStatusSigned && tctx.ContractURL == "" {
		result.Warnings = append(result.Warnings, WarningContractPending)
	}

	return result, nil
}

// TransitionActivation validates an activation status transition.
// Normal moves advance exactly one step; force allows operators to jump
// multiple steps forward. Backward moves are always rejected.
func TransitionActivation(current, requested ActivationStatus, force bool) (*TransitionResult, error) {
	if !current.IsValid() {
		return nil, fmt.Errorf("%w: unknown current status %q", ErrInvalidTransition, current)
	}
	if !requested.IsValid() {
		return nil, fmt.Errorf("%w: unknown requested status %q", ErrInvalidTransition, requested)
	}

	if current == requested {
		return &TransitionResult{NewStatus: string(current), NoOp: true}, nil
	}

	allowed := current.CanTransitionTo(requested)
	if !allowed && force {
		allowed = current.CanForceTo(requested)
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
	}

	return &TransitionResult{NewStatus: string(requested)}, nil
}

// TransitionDeliverable validates a deliverable status transition.
func TransitionDeliverable(current, requested DeliverableStatus) (*TransitionResult, error) {
	if !current.IsValid() {
		return nil, fmt.Errorf("%w: unknown current status %q", ErrInvalidTransition, current)
	}
	if !requested.IsValid() {
		return nil, fmt.Errorf("%w: unknown requested status %q", ErrInvalidTransition, requested)
	}

	if current == requested {
		return &TransitionResult{NewStatus: string(current), NoOp: true}, nil
	}

	if !current.CanTransitionTo(requested) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
	}

	return &TransitionResult{NewStatus: string(requested)}, nil
}

// InitialDealStatus resolves the status a freshly submitted deal starts
// in: signed when the wizard captured a signed contract, negotiating
// otherwise.
func InitialDealStatus(contractSigned bool) DealStatus {
	if contractSigned {
		return DealStatusSigned
	}
	return DealStatusNegotiating
}
