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

// RecalculateBalance discards the pair's stored ledger and rebuilds it from
// the authoritative assignment history. Replay posts quantized work units,
// not raw hours, and does not consult or reset exchange_processed flags.
// Steps are one atomic unit: any mid-replay failure reverts to the pre-call
// balance and transaction set.
func (u *exchangeUsecase) RecalculateBalance(ctx context.Context, householdA, householdB int64) (*entity.RecalculateResult, error) {
	pair, err := u.FindOrCreatePair(ctx, householdA, householdB)
	if err != nil {
		return nil, err
	}

	log.Infof("[Recalculate] Rebuilding ledger for pair %d (households %d, %d)",
		pair.ID, pair.HouseholdLowID, pair.HouseholdHighID)

	u.pairLocker.Lock(pair.ID)
	defer u.pairLocker.Unlock(pair.ID)

	var result *entity.RecalculateResult
	err = u.db.Transaction(func(tx *gorm.DB) error {
		txDao := dao.NewDaoMethod(tx)

		lockedPair, err := txDao.GetExchangePairByIDForUpdate(pair.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		oldBalance := lockedPair.HoursBalance

		if err := txDao.DeleteExchangeTransactionsByPairID(lockedPair.ID); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		assignments, err := txDao.ListReplayAssignments(lockedPair.HouseholdLowID, lockedPair.HouseholdHighID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		newBalance, err := replayAssignments(txDao, &lockedPair, assignments)
		if err != nil {
			return err
		}

		log.Infof("[Recalculate] Pair %d: replayed %d assignments, balance %s -> %s",
			lockedPair.ID, len(assignments), oldBalance.String(), newBalance.String())

		result = &entity.RecalculateResult{
			OldBalance: oldBalance,
			NewBalance: newBalance,
			Diff:       newBalance.Sub(oldBalance),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// replayAssignments posts one entry per qualifying assignment in replay
// order and writes the accumulated balance back to the pair. Runs inside the
// recalculation's unit of work.
func replayAssignments(txDao dao.DaoMethod, pair *model.ExchangePair, assignments []model.Assignment) (decimal.Decimal, error) {
	timeNowUnix := time.Now().Unix()
	balance := decimal.Zero

	for i := range assignments {
		assignment := assignments[i]

		units := workUnitsFor(assignment)
		delta, err := signedDelta(pair, assignment.HomeHouseholdID, assignment.RequestingHouseholdID, units)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: assignment %d households (%d, %d) vs pair (%d, %d)",
				ErrDirectionAmbiguous, assignment.ID,
				assignment.HomeHouseholdID, assignment.RequestingHouseholdID,
				pair.HouseholdLowID, pair.HouseholdHighID)
		}

		trx := model.ExchangeTransaction{
			ExchangePairID: pair.ID,
			Hours:          delta,
			Description: fmt.Sprintf("replayed from assignment %d (%s units)",
				assignment.ID, units.String()),
			AssignmentID: &assignment.ID,
			CreateTime:   timeNowUnix,
		}
		if err := txDao.CreateExchangeTransaction(&trx); err != nil {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		balance = balance.Add(delta)
	}

	pair.HoursBalance = balance
	pair.LastTransactionDate = timeNowUnix
	pair.UpdateTime = timeNowUnix
	if err := txDao.SaveExchangePair(pair); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return balance, nil
}
