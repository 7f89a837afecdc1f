package model

import "github.com/shopspring/decimal"

// ExchangeTransaction is one immutable signed entry in a pair's ledger.
// AssignmentID is nil for manual adjustments and resets; the unique index
// over non-null values enforces at most one entry per source assignment.
type ExchangeTransaction struct {
	ID             int64           `gorm:"primary_key" json:"id"`
	ExchangePairID int64           `gorm:"not null;index" json:"exchange_pair_id"`
	Hours          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"hours"`
	Description    string          `gorm:"type:text" json:"description"`
	AssignmentID   *int64          `gorm:"unique_index:idx_exchange_transaction_assignment" json:"assignment_id,omitempty"`
	CreateTime     int64           `gorm:"not null" json:"create_time"`
}

func (ExchangeTransaction) TableName() string {
	return "exchange_transactions"
}
