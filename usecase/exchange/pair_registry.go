package exchange

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/labstack/gommon/log"

	"github.com/lqCintern/farm-management-sub001/infra/db/model"
)

// canonicalHouseholds normalizes an unordered household pair so the lower id
// always comes first. Applied at every entry point before lookup or creation.
func canonicalHouseholds(householdA, householdB int64) (int64, int64) {
	if householdA > householdB {
		return householdB, householdA
	}
	return householdA, householdB
}

func validateHouseholds(householdA, householdB int64) error {
	if householdA <= 0 || householdB <= 0 {
		return fmt.Errorf("%w: household ids must be positive", ErrValidation)
	}
	if householdA == householdB {
		return fmt.Errorf("%w: a household cannot exchange with itself", ErrValidation)
	}
	return nil
}

func (u *exchangeUsecase) FindOrCreatePair(ctx context.Context, householdA, householdB int64) (*model.ExchangePair, error) {
	if err := validateHouseholds(householdA, householdB); err != nil {
		return nil, err
	}
	lowID, highID := canonicalHouseholds(householdA, householdB)

	pair, err := u.dao.GetExchangePairByHouseholds(lowID, highID)
	if err == nil {
		return &pair, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	timeNowUnix := time.Now().Unix()
	created := model.ExchangePair{
		HouseholdLowID:  lowID,
		HouseholdHighID: highID,
		CreateTime:      timeNowUnix,
		UpdateTime:      timeNowUnix,
	}
	if createErr := u.dao.CreateExchangePair(&created); createErr != nil {
		// A concurrent first-creation may have won the unique index race;
		// re-read before treating it as a storage failure.
		if !isUniqueViolation(createErr) {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, createErr)
		}
		pair, err = u.dao.GetExchangePairByHouseholds(lowID, highID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return &pair, nil
	}

	log.Infof("[PairRegistry] Created pair %d for households (%d, %d)", created.ID, lowID, highID)
	return &created, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
