package exchange

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"

	"github.com/lqCintern/farm-management-sub001/consts"
	"github.com/lqCintern/farm-management-sub001/entity"
	"github.com/lqCintern/farm-management-sub001/utils"
)

func (u *exchangeUsecase) GetBalance(ctx context.Context, pairID int64) (decimal.Decimal, error) {
	pair, err := u.dao.GetExchangePairByID(pairID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return decimal.Zero, fmt.Errorf("%w: exchange pair %d", ErrNotFound, pairID)
		}
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return pair.HoursBalance, nil
}

// ListTransactions pages the pair's ledger newest-first, annotating each
// entry with which household provided the labor and which requested it.
func (u *exchangeUsecase) ListTransactions(ctx context.Context, pairID int64, page, perPage int) (*entity.TransactionPage, error) {
	pair, err := u.dao.GetExchangePairByID(pairID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("%w: exchange pair %d", ErrNotFound, pairID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if page < 1 {
		page = consts.DefaultPage
	}
	if perPage < 1 {
		perPage = consts.DefaultPerPage
	}
	perPage = utils.Min(perPage, consts.MaxPerPage)

	entries, total, err := u.dao.ListExchangeTransactions(pairID, (page-1)*perPage, perPage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	items := make([]entity.TransactionView, 0, len(entries))
	for _, trx := range entries {
		view := entity.TransactionView{ExchangeTransaction: trx}
		switch {
		case trx.Hours.IsPositive():
			view.ProviderHouseholdID = pair.HouseholdHighID
			view.RequesterHouseholdID = pair.HouseholdLowID
		case trx.Hours.IsNegative():
			view.ProviderHouseholdID = pair.HouseholdLowID
			view.RequesterHouseholdID = pair.HouseholdHighID
		}
		items = append(items, view)
	}

	return &entity.TransactionPage{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}
