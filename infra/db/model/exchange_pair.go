package model

import "github.com/shopspring/decimal"

// ExchangePair is the canonical ledger record for an unordered pair of
// households. HouseholdLowID < HouseholdHighID always; a positive balance
// means the high-id household is net owed hours by the low-id household.
type ExchangePair struct {
	ID                  int64           `gorm:"primary_key" json:"id"`
	HouseholdLowID      int64           `gorm:"not null;unique_index:idx_exchange_pair_households" json:"household_low_id"`
	HouseholdHighID     int64           `gorm:"not null;unique_index:idx_exchange_pair_households" json:"household_high_id"`
	HoursBalance        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"hours_balance"`
	LastTransactionDate int64           `gorm:"not null;default:0" json:"last_transaction_date"`
	CreateTime          int64           `gorm:"not null" json:"create_time"`
	UpdateTime          int64           `gorm:"not null" json:"update_time"`
}

func (ExchangePair) TableName() string {
	return "exchange_pairs"
}
