package exchange

import (
	"context"
	"errors"
	"testing"

	"github.com/lqCintern/farm-management-sub001/consts"
	"github.com/lqCintern/farm-management-sub001/infra/db/model"
)

func TestProcessAssignment_DirectionCorrectness(t *testing.T) {
	cases := []struct {
		name        string
		home        int64
		requesting  int64
		wantBalance string
	}{
		{name: "high_worked_for_low", home: 20, requesting: 10, wantBalance: "5"},
		{name: "low_worked_for_high", home: 10, requesting: 20, wantBalance: "-5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, db := newTestUsecase(t)
			ctx := context.Background()

			assignment := seedAssignment(t, db, model.Assignment{
				HomeHouseholdID:       tc.home,
				RequestingHouseholdID: tc.requesting,
				HoursWorked:           dec("5"),
			})

			result, err := uc.ProcessAssignment(ctx, assignment.ID)
			if err != nil {
				t.Fatalf("process: %v", err)
			}
			if result.Status != consts.ProcessStatusProcessed {
				t.Fatalf("status = %q, want processed (%s)", result.Status, result.Message)
			}
			if !result.Pair.HoursBalance.Equal(dec(tc.wantBalance)) {
				t.Fatalf("balance = %s, want %s", result.Pair.HoursBalance.String(), tc.wantBalance)
			}
			if result.Transaction.AssignmentID == nil || *result.Transaction.AssignmentID != assignment.ID {
				t.Fatalf("entry not linked to assignment %d", assignment.ID)
			}
			assertLedgerInvariant(t, db, result.Pair.ID)
		})
	}
}

func TestProcessAssignment_Idempotent(t *testing.T) {
	uc, db := newTestUsecase(t)
	ctx := context.Background()

	assignment := seedAssignment(t, db, model.Assignment{
		HomeHouseholdID:       20,
		RequestingHouseholdID: 10,
		HoursWorked:           dec("4"),
	})

	first, err := uc.ProcessAssignment(ctx, assignment.ID)
	if err != nil {
		t.Fatalf("first process: %v", err)
	}
	if first.Status != consts.ProcessStatusProcessed {
		t.Fatalf("first status = %q, want processed", first.Status)
	}

	second, err := uc.ProcessAssignment(ctx, assignment.ID)
	if err != nil {
		t.Fatalf("second process: %v", err)
	}
	if second.Status != consts.ProcessStatusSkipped || second.Message != "already processed" {
		t.Fatalf("second call = %q (%q), want skipped no-op", second.Status, second.Message)
	}

	if got := len(ledgerEntries(t, db, first.Pair.ID)); got != 1 {
		t.Fatalf("ledger entries = %d, want exactly 1", got)
	}
	balance, _ := uc.GetBalance(ctx, first.Pair.ID)
	if !balance.Equal(dec("4")) {
		t.Fatalf("balance = %s, want 4", balance.String())
	}
}

func TestProcessAssignment_SkipsAndFailures(t *testing.T) {
	cases := []struct {
		name        string
		assignment  model.Assignment
		wantStatus  string
		wantMessage string
	}{
		{
			name: "non_exchange_request",
			assignment: model.Assignment{
				HomeHouseholdID:       20,
				RequestingHouseholdID: 10,
				HoursWorked:           dec("5"),
				RequestType:           "purchase",
			},
			wantStatus:  consts.ProcessStatusSkipped,
			wantMessage: "not an exchange-bearing request",
		},
		{
			name: "zero_hours",
			assignment: model.Assignment{
				HomeHouseholdID:       20,
				RequestingHouseholdID: 10,
				HoursWorked:           dec("0"),
			},
			wantStatus:  consts.ProcessStatusFailed,
			wantMessage: "invalid work hours",
		},
		{
			name: "same_household_both_sides",
			assignment: model.Assignment{
				HomeHouseholdID:       10,
				RequestingHouseholdID: 10,
				HoursWorked:           dec("5"),
			},
			wantStatus:  consts.ProcessStatusFailed,
			wantMessage: "cannot resolve direction",
		},
		{
			name: "mixed_request_processes",
			assignment: model.Assignment{
				HomeHouseholdID:       20,
				RequestingHouseholdID: 10,
				HoursWorked:           dec("2"),
				RequestType:           consts.RequestTypeMixed,
			},
			wantStatus: consts.ProcessStatusProcessed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, db := newTestUsecase(t)

			assignment := seedAssignment(t, db, tc.assignment)
			result, err := uc.ProcessAssignment(context.Background(), assignment.ID)
			if err != nil {
				t.Fatalf("process: %v", err)
			}
			if result.Status != tc.wantStatus {
				t.Fatalf("status = %q, want %q (%s)", result.Status, tc.wantStatus, result.Message)
			}
			if tc.wantMessage != "" && result.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", result.Message, tc.wantMessage)
			}
		})
	}
}

func TestProcessAssignment_NotFound(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if _, err := uc.ProcessAssignment(context.Background(), 12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
