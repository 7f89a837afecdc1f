package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"github.com/lqCintern/farm-management-sub001/entity"
	"github.com/lqCintern/farm-management-sub001/infra/db/dao"
	"github.com/lqCintern/farm-management-sub001/infra/db/model"
)

// AddTransaction appends one signed entry to the pair's ledger and moves the
// balance by the same amount. The entry insert and the balance update either
// both commit or neither does.
func (u *exchangeUsecase) AddTransaction(ctx context.Context, pairID int64, hours decimal.Decimal, description string, assignmentID *int64) (*entity.LedgerMutation, error) {
	u.pairLocker.Lock(pairID)
	defer u.pairLocker.Unlock(pairID)

	var mutation *entity.LedgerMutation
	err := u.db.Transaction(func(tx *gorm.DB) error {
		txDao := dao.NewDaoMethod(tx)

		pair, err := txDao.GetExchangePairByIDForUpdate(pairID)
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return fmt.Errorf("%w: exchange pair %d", ErrNotFound, pairID)
			}
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		trx, err := appendEntry(txDao, &pair, hours, description, assignmentID)
		if err != nil {
			return err
		}

		mutation = &entity.LedgerMutation{Pair: &pair, Transaction: trx}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("[Ledger] Pair %d: appended %s hours (balance now %s)",
		pairID, hours.String(), mutation.Pair.HoursBalance.String())
	return mutation, nil
}

// ResetBalance drives the pair's balance to zero by logging the offsetting
// entry, never by silently rewriting the stored value.
func (u *exchangeUsecase) ResetBalance(ctx context.Context, pairID int64) (*entity.LedgerMutation, error) {
	u.pairLocker.Lock(pairID)
	defer u.pairLocker.Unlock(pairID)

	var mutation *entity.LedgerMutation
	err := u.db.Transaction(func(tx *gorm.DB) error {
		txDao := dao.NewDaoMethod(tx)

		pair, err := txDao.GetExchangePairByIDForUpdate(pairID)
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return fmt.Errorf("%w: exchange pair %d", ErrNotFound, pairID)
			}
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		trx, err := appendEntry(txDao, &pair, pair.HoursBalance.Neg(), "balance reset", nil)
		if err != nil {
			return err
		}

		mutation = &entity.LedgerMutation{Pair: &pair, Transaction: trx}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("[Ledger] Pair %d: balance reset with offsetting entry %s",
		pairID, mutation.Transaction.Hours.String())
	return mutation, nil
}

// appendEntry performs the single ledger write both commit paths share:
// insert the entry, move the balance, stamp the mutation time. Must run
// inside an open gorm transaction on txDao, with pair read via
// GetExchangePairByIDForUpdate so the read-modify-write holds the row.
func appendEntry(txDao dao.DaoMethod, pair *model.ExchangePair, hours decimal.Decimal, description string, assignmentID *int64) (*model.ExchangeTransaction, error) {
	timeNowUnix := time.Now().Unix()

	trx := model.ExchangeTransaction{
		ExchangePairID: pair.ID,
		Hours:          hours,
		Description:    description,
		AssignmentID:   assignmentID,
		CreateTime:     timeNowUnix,
	}
	if err := txDao.CreateExchangeTransaction(&trx); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: assignment already has a ledger entry", ErrConcurrencyConflict)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	pair.HoursBalance = pair.HoursBalance.Add(hours)
	pair.LastTransactionDate = timeNowUnix
	pair.UpdateTime = timeNowUnix
	if err := txDao.SaveExchangePair(pair); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &trx, nil
}
