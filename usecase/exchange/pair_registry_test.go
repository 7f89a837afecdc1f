package exchange

import (
	"context"
	"errors"
	"testing"
)

func TestFindOrCreatePair_CanonicalOrder(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()

	created, err := uc.FindOrCreatePair(ctx, 20, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.HouseholdLowID != 10 || created.HouseholdHighID != 20 {
		t.Fatalf("pair not canonicalized: low=%d high=%d", created.HouseholdLowID, created.HouseholdHighID)
	}
	if !created.HoursBalance.IsZero() {
		t.Fatalf("new pair balance = %s, want 0", created.HoursBalance.String())
	}

	// Reversed argument order must resolve the same record.
	found, err := uc.FindOrCreatePair(ctx, 10, 20)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected same pair, got %d and %d", created.ID, found.ID)
	}
}

func TestFindOrCreatePair_Validation(t *testing.T) {
	uc, _ := newTestUsecase(t)
	ctx := context.Background()

	cases := []struct {
		name string
		a, b int64
	}{
		{name: "same_household", a: 10, b: 10},
		{name: "zero_id", a: 0, b: 10},
		{name: "negative_id", a: -3, b: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.FindOrCreatePair(ctx, tc.a, tc.b); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}
