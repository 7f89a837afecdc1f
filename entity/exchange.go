package entity

import (
	"github.com/shopspring/decimal"

	"github.com/lqCintern/farm-management-sub001/infra/db/model"
)

type FindOrCreatePairRequest struct {
	HouseholdAID int64 `json:"household_a_id"`
	HouseholdBID int64 `json:"household_b_id"`
}

type AddTransactionRequest struct {
	PairID       int64           `json:"pair_id"`
	Hours        decimal.Decimal `json:"hours"`
	Description  string          `json:"description"`
	AssignmentID *int64          `json:"assignment_id,omitempty"`
}

type RecalculateRequest struct {
	HouseholdAID int64 `json:"household_a_id"`
	HouseholdBID int64 `json:"household_b_id"`
}

// ProcessResult reports the outcome of converting one assignment into a
// ledger entry. Skips and failures are results, not transport errors.
type ProcessResult struct {
	Status      string                     `json:"status"` // processed, skipped, failed
	Message     string                     `json:"message,omitempty"`
	Pair        *model.ExchangePair        `json:"pair,omitempty"`
	Transaction *model.ExchangeTransaction `json:"transaction,omitempty"`
}

type RecalculateResult struct {
	OldBalance decimal.Decimal `json:"old_balance"`
	NewBalance decimal.Decimal `json:"new_balance"`
	Diff       decimal.Decimal `json:"diff"`
}

type LedgerMutation struct {
	Pair        *model.ExchangePair        `json:"pair"`
	Transaction *model.ExchangeTransaction `json:"transaction"`
}

// TransactionView annotates a ledger entry with which household provided the
// labor and which requested it, derived from the entry sign. Both fields are
// zero for zero-hour entries, where the direction is undefined.
type TransactionView struct {
	model.ExchangeTransaction
	ProviderHouseholdID  int64 `json:"provider_household_id,omitempty"`
	RequesterHouseholdID int64 `json:"requester_household_id,omitempty"`
}

type TransactionPage struct {
	Items   []TransactionView `json:"items"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}
