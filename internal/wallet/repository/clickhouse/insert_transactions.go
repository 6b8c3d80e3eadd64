package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const insertTransactionsQuery = `
INSERT INTO wallet_transactions (
	wallet_id,
	tx_hash,
	account,
	direction,
	amount,
	fee,
	height,
	pending,
	inputs,
	destination_addresses,
	destination_amounts,
	relayed,
	timestamp,
	version,
	is_deleted
) VALUES`

// InsertTransactions upserts transfer records and writes tombstones for
// removed keys.
func (r *Repository) InsertTransactions(ctx context.Context, walletID string, records []model.TxRecord, removed []model.RecordKey) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(records) == 0 && len(removed) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, rec := range records {
		addrs := make([]string, 0, len(rec.Destinations))
		amounts := make([]uint64, 0, len(rec.Destinations))
		for _, d := range rec.Destinations {
			addrs = append(addrs, d.Address)
			amounts = append(amounts, d.Amount)
		}
		if err = batch.Append(
			walletID,
			rec.Hash.String(),
			rec.Account,
			rec.Direction.String(),
			rec.Amount,
			rec.Fee,
			rec.Height,
			rec.Pending,
			formatOutputIDs(rec.Inputs),
			addrs,
			amounts,
			rec.Relayed,
			rec.Timestamp,
			r.nextVersion(),
			uint8(0),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction %s: %w", rec.Hash, err)
		}
	}
	for _, k := range removed {
		if err = batch.Append(
			walletID,
			k.Hash.String(),
			k.Account,
			"",
			uint64(0),
			uint64(0),
			uint64(0),
			false,
			[]string{},
			[]string{},
			[]uint64{},
			false,
			time.Unix(0, 0).UTC(),
			r.nextVersion(),
			uint8(1),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction tombstone %s: %w", k.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
