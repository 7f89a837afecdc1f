package exchange

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
	"github.com/shopspring/decimal"

	"github.com/lqCintern/farm-management-sub001/consts"
	"github.com/lqCintern/farm-management-sub001/infra/db/model"
	"github.com/lqCintern/farm-management-sub001/infra/locker"
)

func newTestUsecase(t *testing.T) (ExchangeUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A second connection to :memory: would be a second database.
	db.DB().SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.ExchangePair{},
		&model.ExchangeTransaction{},
		&model.Assignment{},
	).Error; err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return NewExchangeUsecase(db, locker.New()), db
}

func seedAssignment(t *testing.T, db *gorm.DB, assignment model.Assignment) model.Assignment {
	t.Helper()

	if assignment.Status == "" {
		assignment.Status = consts.AssignmentStatusCompleted
	}
	if assignment.RequestType == "" {
		assignment.RequestType = consts.RequestTypeExchange
	}
	if assignment.CreateTime == 0 {
		assignment.CreateTime = time.Now().Unix()
	}
	if assignment.WorkDate == 0 {
		assignment.WorkDate = time.Now().Unix()
	}

	if err := db.Create(&assignment).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	return assignment
}

func ledgerEntries(t *testing.T, db *gorm.DB, pairID int64) []model.ExchangeTransaction {
	t.Helper()

	var entries []model.ExchangeTransaction
	if err := db.Where("exchange_pair_id = ?", pairID).Order("id ASC").Find(&entries).Error; err != nil {
		t.Fatalf("fetch ledger entries: %v", err)
	}
	return entries
}

// assertLedgerInvariant checks the core accounting contract: the stored
// balance always equals the sum of the pair's entries.
func assertLedgerInvariant(t *testing.T, db *gorm.DB, pairID int64) {
	t.Helper()

	var pair model.ExchangePair
	if err := db.First(&pair, pairID).Error; err != nil {
		t.Fatalf("fetch pair: %v", err)
	}

	sum := decimal.Zero
	for _, trx := range ledgerEntries(t, db, pairID) {
		sum = sum.Add(trx.Hours)
	}

	if !pair.HoursBalance.Equal(sum) {
		t.Fatalf("balance invariant broken: hours_balance=%s, sum(entries)=%s",
			pair.HoursBalance.String(), sum.String())
	}
}

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}
