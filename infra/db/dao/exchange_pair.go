package dao

import (
	"fmt"

	"github.com/lqCintern/farm-management-sub001/infra/db/model"
)

func (d *dao) GetExchangePairByHouseholds(lowID, highID int64) (model.ExchangePair, error) {
	var pair model.ExchangePair
	if err := d.db.
		Where("household_low_id = ? AND household_high_id = ?", lowID, highID).
		First(&pair).Error; err != nil {
		return pair, err
	}
	return pair, nil
}

func (d *dao) GetExchangePairByID(pairID int64) (model.ExchangePair, error) {
	var pair model.ExchangePair
	if err := d.db.First(&pair, pairID).Error; err != nil {
		return pair, err
	}
	return pair, nil
}

// GetExchangePairByIDForUpdate reads the pair holding a row lock until the
// surrounding transaction commits, so concurrent balance writers from any
// process queue on the row. Must run inside an open gorm transaction.
// sqlite rejects FOR UPDATE; its writes are serialized by the engine.
func (d *dao) GetExchangePairByIDForUpdate(pairID int64) (model.ExchangePair, error) {
	query := d.db
	if d.db.Dialect().GetName() != "sqlite3" {
		query = query.Set("gorm:query_option", "FOR UPDATE")
	}

	var pair model.ExchangePair
	if err := query.First(&pair, pairID).Error; err != nil {
		return pair, err
	}
	return pair, nil
}

func (d *dao) CreateExchangePair(pair *model.ExchangePair) error {
	if err := d.db.Create(pair).Error; err != nil {
		return fmt.Errorf("failed to create exchange pair: %w", err)
	}
	return nil
}

func (d *dao) SaveExchangePair(pair *model.ExchangePair) error {
	if err := d.db.Save(pair).Error; err != nil {
		return fmt.Errorf("failed to update exchange pair: %w", err)
	}
	return nil
}
