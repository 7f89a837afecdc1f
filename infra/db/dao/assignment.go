package dao

import (
	"fmt"

	"github.com/lqCintern/farm-management-sub001/consts"
	"github.com/lqCintern/farm-management-sub001/infra/db/model"
)

func (d *dao) GetAssignmentByID(assignmentID int64) (model.Assignment, error) {
	var assignment model.Assignment
	if err := d.db.First(&assignment, assignmentID).Error; err != nil {
		return assignment, err
	}
	return assignment, nil
}

// ListReplayAssignments returns every assignment that qualifies for ledger
// replay between the two households, in deterministic replay order.
func (d *dao) ListReplayAssignments(lowID, highID int64) ([]model.Assignment, error) {
	households := []int64{lowID, highID}

	var assignments []model.Assignment
	if err := d.db.
		Where("status = ?", consts.AssignmentStatusCompleted).
		Where("request_type IN (?)", []string{consts.RequestTypeExchange, consts.RequestTypeMixed}).
		Where("hours_worked > 0 OR work_units > 0").
		Where("home_household_id IN (?)", households).
		Where("requesting_household_id IN (?)", households).
		Order("work_date ASC").
		Order("create_time ASC").
		Order("id ASC").
		Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch replay assignments: %w", err)
	}
	return assignments, nil
}

// ListUnprocessedAssignments returns the oldest pending conversions. An
// assignment without positive worked hours can never convert, so offering it
// here would wedge the worker on it forever.
func (d *dao) ListUnprocessedAssignments(limit int) ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := d.db.
		Select("id").
		Where("status = ?", consts.AssignmentStatusCompleted).
		Where("request_type IN (?)", []string{consts.RequestTypeExchange, consts.RequestTypeMixed}).
		Where("exchange_processed = ?", false).
		Where("hours_worked > 0").
		Order("create_time ASC").
		Order("id ASC").
		Limit(limit).
		Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch unprocessed assignments: %w", err)
	}
	return assignments, nil
}

func (d *dao) SaveAssignment(assignment *model.Assignment) error {
	if err := d.db.Save(assignment).Error; err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}
