package model

import "github.com/shopspring/decimal"

// Assignment is the read-side contract for completed work assignments, the
// authoritative source the ledger is derived from. Only the fields the
// exchange core reads are modeled; ExchangeProcessed is the one field this
// core owns and writes.
type Assignment struct {
	ID                    int64           `gorm:"primary_key" json:"id"`
	HomeHouseholdID       int64           `gorm:"not null;index" json:"home_household_id"`
	RequestingHouseholdID int64           `gorm:"not null;index" json:"requesting_household_id"`
	HoursWorked           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"hours_worked"`
	WorkUnits             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"work_units"`
	WorkDate              int64           `gorm:"not null;index" json:"work_date"`
	Status                string          `gorm:"size:50;not null" json:"status"`
	RequestType           string          `gorm:"size:50;not null" json:"request_type"`
	ExchangeProcessed     bool            `gorm:"not null;default:false" json:"exchange_processed"`
	CreateTime            int64           `gorm:"not null" json:"create_time"`
}

func (Assignment) TableName() string {
	return "assignments"
}
