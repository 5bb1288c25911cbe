package domain

import (
	"errors"
	"testing"
)

func TestTransitionDeal(t *testing.T) {
	tests := []struct {
		name     string
		current  DealStatus
		request  DealStatus
		tctx     DealTransitionContext
		wantErr  error
		wantNoOp bool
		wantWarn []string
	}{
		{
			name:    "lead to contacted",
			current: DealStatusLead,
			request: DealStatusContacted,
		},
		{
			name:     "same status is a no-op",
			current:  DealStatusNegotiating,
			request:  DealStatusNegotiating,
			wantNoOp: true,
		},
		{
			name:    "negotiating to paid is rejected",
			current: DealStatusNegotiating,
			request: DealStatusPaid,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "signed back to negotiating is rejected",
			current: DealStatusSigned,
			request: DealStatusNegotiating,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "churned accepts nothing",
			current: DealStatusChurned,
			request: DealStatusLead,
			wantErr: ErrInvalidTransition,
		},
		{
			name:     "signing without a contract warns",
			current:  DealStatusNegotiating,
			request:  DealStatusSigned,
			wantWarn: []string{WarningContractPending},
		},
		{
			name:    "signing with a contract is clean",
			current: DealStatusNegotiating,
			request: DealStatusSigned,
			tctx:    DealTransitionContext{ContractURL: "https://cdn.example.com/contracts/d1.pdf"},
		},
		{
			name:    "churning a paid deal needs a reason",
			current: DealStatusPaid,
			request: DealStatusChurned,
		},
		{
			name:    "churning a signed deal needs no reason",
			current: DealStatusSigned,
			request: DealStatusChurned,
		},
		{
			name:    "unknown requested status",
			current: DealStatusLead,
			request: DealStatus("bogus"),
			wantErr: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransitionDeal(tt.current, tt.request, tt.tctx)

			if tt.name == "churning a paid deal needs a reason" {
				if !IsValidationError(err) {
					t.Fatalf("TransitionDeal() error = %v, want validation error", err)
				}
				return
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("TransitionDeal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("TransitionDeal() unexpected error: %v", err)
			}
			if got.NoOp != tt.wantNoOp {
				t.Errorf("NoOp = %v, want %v", got.NoOp, tt.wantNoOp)
			}
			if len(got.Warnings) != len(tt.wantWarn) {
				t.Fatalf("Warnings = %v, want %v", got.Warnings, tt.wantWarn)
			}
			for i, w := range tt.wantWarn {
				if got.Warnings[i] != w {
					t.Errorf("Warnings[%d] = %q, want %q", i, got.Warnings[i], w)
				}
			}
			wantStatus := tt.request
			if tt.wantNoOp {
				wantStatus = tt.current
			}
			if got.NewStatus != string(wantStatus) {
				t.Errorf("NewStatus = %q, want %q", got.NewStatus, wantStatus)
			}
		})
	}
}

func TestTransitionDealChurnReason(t *testing.T) {
	res, err := TransitionDeal(DealStatusPaid, DealStatusChurned, DealTransitionContext{Reason: "budget cut"})
	if err != nil {
		t.Fatalf("TransitionDeal() unexpected error: %v", err)
	}
	if res.NewStatus != string(DealStatusChurned) {
		t.Errorf("NewStatus = %q, want %q", res.NewStatus, DealStatusChurned)
	}
}

func TestTransitionActivation(t *testing.T) {
	tests := []struct {
		name    string
		current ActivationStatus
		request ActivationStatus
		force   bool
		wantErr bool
	}{
		{"planning to approved", ActivationStatusPlanning, ActivationStatusApproved, false, false},
		{"approved to in_progress", ActivationStatusApproved, ActivationStatusInProgress, false, false},
		{"skip without force", ActivationStatusPlanning, ActivationStatusReady, false, true},
		{"skip with force", ActivationStatusPlanning, ActivationStatusReady, true, false},
		{"force to completed", ActivationStatusApproved, ActivationStatusCompleted, true, false},
		{"backward is rejected", ActivationStatusReady, ActivationStatusApproved, false, true},
		{"backward is rejected even forced", ActivationStatusReady, ActivationStatusApproved, true, true},
		{"completed is terminal", ActivationStatusCompleted, ActivationStatusReady, true, true},
		{"same status is a no-op", ActivationStatusInProgress, ActivationStatusInProgress, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransitionActivation(tt.current, tt.request, tt.force)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("TransitionActivation() error = %v, want ErrInvalidTransition", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TransitionActivation() unexpected error: %v", err)
			}
			if got.NewStatus != string(tt.request) {
				t.Errorf("NewStatus = %q, want %q", got.NewStatus, tt.request)
			}
		})
	}
}

func TestTransitionDeliverable(t *testing.T) {
	tests := []struct {
		name    string
		current DeliverableStatus
		request DeliverableStatus
		wantErr bool
	}{
		{"pending to uploaded", DeliverableStatusPending, DeliverableStatusUploaded, false},
		{"uploaded to reviewing", DeliverableStatusUploaded, DeliverableStatusReviewing, false},
		{"reviewing to approved", DeliverableStatusReviewing, DeliverableStatusApproved, false},
		{"reviewing to rejected", DeliverableStatusReviewing, DeliverableStatusRejected, false},
		{"rejected loops back to pending", DeliverableStatusRejected, DeliverableStatusPending, false},
		{"approved is terminal", DeliverableStatusApproved, DeliverableStatusReviewing, true},
		{"pending cannot jump to approved", DeliverableStatusPending, DeliverableStatusApproved, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TransitionDeliverable(tt.current, tt.request)
			if (err != nil) != tt.wantErr {
				t.Errorf("TransitionDeliverable(%q -> %q) error = %v, wantErr %v", tt.current, tt.request, err, tt.wantErr)
			}
		})
	}
}

func TestInitialDealStatus(t *testing.T) {
	if got := InitialDealStatus(true); got != DealStatusSigned {
		t.Errorf("InitialDealStatus(true) = %q, want signed", got)
	}
	if got := InitialDealStatus(false); got != DealStatusNegotiating {
		t.Errorf("InitialDealStatus(false) = %q, want negotiating", got)
	}
}
