package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/lqCintern/farm-management-sub001/consts"
)

// ErrNoAssignmentHandled reports an idle poll, not a failure.
var ErrNoAssignmentHandled = errors.New("no assignment handled")

// ExchangeExecution is one worker iteration: claim the next unprocessed
// assignment and convert it into a ledger entry.
func (h *ExchangeHandler) ExchangeExecution(ctx context.Context) error {
	acquired, assignmentID, err := h.Usecase.TryAcquireAssignment(ctx)
	if err != nil {
		return err
	}

	if !acquired {
		return ErrNoAssignmentHandled
	}

	defer h.Usecase.ReleaseAssignment(ctx, assignmentID)

	result, err := h.Usecase.ProcessAssignment(ctx, assignmentID)
	if err != nil {
		return err
	}

	if result.Status == consts.ProcessStatusFailed {
		return fmt.Errorf("assignment %d not converted: %s", assignmentID, result.Message)
	}

	return nil
}
