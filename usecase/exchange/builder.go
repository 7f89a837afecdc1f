package exchange

import (
	"context"

	"github.com/lqCintern/farm-management-sub001/entity"
	"github.com/lqCintern/farm-management-sub001/infra/db/dao"
	"github.com/lqCintern/farm-management-sub001/infra/db/model"
	"github.com/lqCintern/farm-management-sub001/infra/locker"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type ExchangeUsecase interface {
	FindOrCreatePair(ctx context.Context, householdA, householdB int64) (*model.ExchangePair, error)
	AddTransaction(ctx context.Context, pairID int64, hours decimal.Decimal, description string, assignmentID *int64) (*entity.LedgerMutation, error)
	ProcessAssignment(ctx context.Context, assignmentID int64) (*entity.ProcessResult, error)
	ResetBalance(ctx context.Context, pairID int64) (*entity.LedgerMutation, error)
	RecalculateBalance(ctx context.Context, householdA, householdB int64) (*entity.RecalculateResult, error)
	GetBalance(ctx context.Context, pairID int64) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, pairID int64, page, perPage int) (*entity.TransactionPage, error)

	TryAcquireAssignment(ctx context.Context) (bool, int64, error)
	ReleaseAssignment(ctx context.Context, assignmentID int64)
}

type exchangeUsecase struct {
	db               *gorm.DB
	dao              dao.DaoMethod
	assignmentLocker *locker.Locker
	pairLocker       *locker.PairLocker
}

// NewExchangeUsecase wires the ledger core. assignmentLocker may be nil for
// callers that never poll for work (the HTTP server).
func NewExchangeUsecase(db *gorm.DB, assignmentLocker *locker.Locker) ExchangeUsecase {
	return &exchangeUsecase{
		db:               db,
		dao:              dao.NewDaoMethod(db),
		assignmentLocker: assignmentLocker,
		pairLocker:       locker.NewPairLocker(),
	}
}
