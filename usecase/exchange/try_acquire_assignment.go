package exchange

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/lqCintern/farm-management-sub001/consts"
)

// TryAcquireAssignment claims the oldest completed, exchange-bearing
// assignment that no worker in this process is already converting.
func (u *exchangeUsecase) TryAcquireAssignment(ctx context.Context) (bool, int64, error) {
	if u.assignmentLocker == nil {
		return false, 0, fmt.Errorf("%w: no assignment locker configured", ErrValidation)
	}

	assignments, err := u.dao.ListUnprocessedAssignments(consts.DefaultAcquireBatchSize)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	for _, assignment := range assignments {
		if u.assignmentLocker.IsProcessing(assignment.ID) {
			continue
		}

		u.assignmentLocker.MarkAsProcessing(assignment.ID)
		log.Infof("[LOCK_ASSIGNMENT] assignment_id:%d", assignment.ID)
		return true, assignment.ID, nil
	}

	return false, 0, nil
}

func (u *exchangeUsecase) ReleaseAssignment(ctx context.Context, assignmentID int64) {
	if u.assignmentLocker == nil {
		return
	}
	u.assignmentLocker.Unlock(assignmentID)
	log.Infof("[UNLOCK_ASSIGNMENT] assignment_id:%d", assignmentID)
}
