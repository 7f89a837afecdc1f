package dao

import (
	"github.com/lqCintern/farm-management-sub001/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	GetExchangePairByHouseholds(lowID, highID int64) (model.ExchangePair, error)
	GetExchangePairByID(pairID int64) (model.ExchangePair, error)
	GetExchangePairByIDForUpdate(pairID int64) (model.ExchangePair, error)
	CreateExchangePair(pair *model.ExchangePair) error
	SaveExchangePair(pair *model.ExchangePair) error

	CreateExchangeTransaction(trx *model.ExchangeTransaction) error
	DeleteExchangeTransactionsByPairID(pairID int64) error
	ListExchangeTransactions(pairID int64, offset, limit int) ([]model.ExchangeTransaction, int64, error)

	GetAssignmentByID(assignmentID int64) (model.Assignment, error)
	ListReplayAssignments(lowID, highID int64) ([]model.Assignment, error)
	ListUnprocessedAssignments(limit int) ([]model.Assignment, error)
	SaveAssignment(assignment *model.Assignment) error
}

type dao struct {
	db *gorm.DB
}

// NewDaoMethod builds a DAO over db, which may be a root connection or an
// open gorm transaction; callers that need atomicity pass the latter.
func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
