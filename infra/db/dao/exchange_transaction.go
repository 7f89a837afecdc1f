package dao

import (
	"fmt"

	"github.com/lqCintern/farm-management-sub001/infra/db/model"
)

func (d *dao) CreateExchangeTransaction(trx *model.ExchangeTransaction) error {
	if err := d.db.Create(trx).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

func (d *dao) DeleteExchangeTransactionsByPairID(pairID int64) error {
	if err := d.db.
		Where("exchange_pair_id = ?", pairID).
		Delete(&model.ExchangeTransaction{}).Error; err != nil {
		return fmt.Errorf("failed to clear ledger for pair %d: %w", pairID, err)
	}
	return nil
}

func (d *dao) ListExchangeTransactions(pairID int64, offset, limit int) ([]model.ExchangeTransaction, int64, error) {
	var total int64
	if err := d.db.
		Model(&model.ExchangeTransaction{}).
		Where("exchange_pair_id = ?", pairID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	var entries []model.ExchangeTransaction
	if err := d.db.
		Where("exchange_pair_id = ?", pairID).
		Order("create_time DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch ledger entries: %w", err)
	}
	return entries, total, nil
}
