package exchange

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/labstack/gommon/log"

	"github.com/lqCintern/farm-management-sub001/consts"
	"github.com/lqCintern/farm-management-sub001/entity"
	"github.com/lqCintern/farm-management-sub001/infra/db/dao"
)

// ProcessAssignment converts one completed, qualifying assignment into
// exactly one ledger entry. Re-processing an assignment is a successful
// no-op; the entry insert and the processed-flag flip share one atomic unit.
func (u *exchangeUsecase) ProcessAssignment(ctx context.Context, assignmentID int64) (*entity.ProcessResult, error) {
	log.Infof("[ProcessAssignment] Starting conversion for assignment %d", assignmentID)

	assignment, err := u.dao.GetAssignmentByID(assignmentID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("%w: assignment %d", ErrNotFound, assignmentID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if !isExchangeBearing(assignment.RequestType) {
		log.Infof("[ProcessAssignment] Assignment %d skipped: request type %q", assignmentID, assignment.RequestType)
		return &entity.ProcessResult{
			Status:  consts.ProcessStatusSkipped,
			Message: "not an exchange-bearing request",
		}, nil
	}

	if assignment.ExchangeProcessed {
		log.Infof("[ProcessAssignment] Assignment %d skipped: already processed", assignmentID)
		return &entity.ProcessResult{
			Status:  consts.ProcessStatusSkipped,
			Message: "already processed",
		}, nil
	}

	if !assignment.HoursWorked.IsPositive() {
		log.Warnf("[ProcessAssignment] Assignment %d failed: hours_worked=%s", assignmentID, assignment.HoursWorked.String())
		return &entity.ProcessResult{
			Status:  consts.ProcessStatusFailed,
			Message: "invalid work hours",
		}, nil
	}

	if assignment.HomeHouseholdID == assignment.RequestingHouseholdID {
		log.Warnf("[ProcessAssignment] Assignment %d failed: household %d on both sides",
			assignmentID, assignment.HomeHouseholdID)
		return &entity.ProcessResult{
			Status:  consts.ProcessStatusFailed,
			Message: "cannot resolve direction",
		}, nil
	}

	pair, err := u.FindOrCreatePair(ctx, assignment.HomeHouseholdID, assignment.RequestingHouseholdID)
	if err != nil {
		return nil, err
	}

	delta, err := signedDelta(pair, assignment.HomeHouseholdID, assignment.RequestingHouseholdID, assignment.HoursWorked)
	if err != nil {
		log.Errorf("[ProcessAssignment] Assignment %d failed: households (%d, %d) do not match pair %d",
			assignmentID, assignment.HomeHouseholdID, assignment.RequestingHouseholdID, pair.ID)
		return &entity.ProcessResult{
			Status:  consts.ProcessStatusFailed,
			Message: "cannot resolve direction",
		}, nil
	}

	description := fmt.Sprintf("labor exchange: household %d worked %s hours for household %d",
		assignment.HomeHouseholdID, assignment.HoursWorked.String(), assignment.RequestingHouseholdID)

	u.pairLocker.Lock(pair.ID)
	defer u.pairLocker.Unlock(pair.ID)

	var result *entity.ProcessResult
	err = u.db.Transaction(func(tx *gorm.DB) error {
		txDao := dao.NewDaoMethod(tx)

		lockedPair, err := txDao.GetExchangePairByIDForUpdate(pair.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		// Re-read behind the pair row lock: a concurrent worker may have won
		// the conversion between the check above and this unit of work.
		current, err := txDao.GetAssignmentByID(assignmentID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if current.ExchangeProcessed {
			result = &entity.ProcessResult{
				Status:  consts.ProcessStatusSkipped,
				Message: "already processed",
			}
			return nil
		}

		trx, err := appendEntry(txDao, &lockedPair, delta, description, &current.ID)
		if err != nil {
			return err
		}

		current.ExchangeProcessed = true
		if err := txDao.SaveAssignment(&current); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		result = &entity.ProcessResult{
			Status:      consts.ProcessStatusProcessed,
			Pair:        &lockedPair,
			Transaction: trx,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Status == consts.ProcessStatusProcessed {
		log.Infof("[ProcessAssignment] Assignment %d processed: %s hours on pair %d",
			assignmentID, result.Transaction.Hours.String(), result.Pair.ID)
	}
	return result, nil
}
