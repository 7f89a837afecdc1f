package exchange

import (
	"github.com/shopspring/decimal"

	"github.com/lqCintern/farm-management-sub001/consts"
	"github.com/lqCintern/farm-management-sub001/infra/db/model"
)

// signedDelta applies the canonical direction rule: work performed by the
// high-id household for the low-id household credits the balance, the
// reverse debits it. Any other combination means the assignment's households
// do not belong to this pair.
func signedDelta(pair *model.ExchangePair, homeHouseholdID, requestingHouseholdID int64, magnitude decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case homeHouseholdID == pair.HouseholdHighID && requestingHouseholdID == pair.HouseholdLowID:
		return magnitude, nil
	case homeHouseholdID == pair.HouseholdLowID && requestingHouseholdID == pair.HouseholdHighID:
		return magnitude.Neg(), nil
	}
	return decimal.Zero, ErrDirectionAmbiguous
}

var (
	fullDayThreshold = decimal.NewFromInt(consts.FullDayHoursThreshold)
	fullDayUnits     = decimal.NewFromInt(1)
	halfDayUnits     = decimal.New(5, -1) // 0.5
)

// workUnitsFor quantizes one work session for replay: an explicit unit count
// wins; otherwise a session of at least a full work day is 1.0 unit and
// anything shorter is 0.5.
func workUnitsFor(assignment model.Assignment) decimal.Decimal {
	if assignment.WorkUnits.IsPositive() {
		return assignment.WorkUnits
	}
	if assignment.HoursWorked.GreaterThanOrEqual(fullDayThreshold) {
		return fullDayUnits
	}
	return halfDayUnits
}

func isExchangeBearing(requestType string) bool {
	return requestType == consts.RequestTypeExchange || requestType == consts.RequestTypeMixed
}
