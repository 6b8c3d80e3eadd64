package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const loadTransactionsQuery = `
SELECT
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
	timestamp
FROM wallet_transactions FINAL
WHERE wallet_id = ? AND is_deleted = 0
ORDER BY tx_hash ASC, account ASC`

// LoadTransactions returns the live transfer records of a wallet.
func (r *Repository) LoadTransactions(ctx context.Context, walletID string) ([]model.TxRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_transactions", err, start)
	}()

	rows, err := r.conn.Query(ctx, loadTransactionsQuery, walletID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var records []model.TxRecord
	for rows.Next() {
		var (
			rec             model.TxRecord
			hash, direction string
			inputs, addrs   []string
			amounts         []uint64
		)
		if err = rows.Scan(
			&hash,
			&rec.Account,
			&direction,
			&rec.Amount,
			&rec.Fee,
			&rec.Height,
			&rec.Pending,
			&inputs,
			&addrs,
			&amounts,
			&rec.Relayed,
			&rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if err = decodeRecord(&rec, hash, direction, inputs, addrs, amounts); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return records, nil
}

func decodeRecord(rec *model.TxRecord, hash, direction string, inputs, addrs []string, amounts []uint64) error {
	var err error
	if rec.Hash, err = parseHash(hash); err != nil {
		return fmt.Errorf("transaction hash: %w", err)
	}
	if rec.Direction, err = model.ParseDirection(direction); err != nil {
		return fmt.Errorf("transaction %s: %w", rec.Hash, err)
	}
	for _, s := range inputs {
		id, err := parseOutputID(s)
		if err != nil {
			return fmt.Errorf("transaction %s input: %w", rec.Hash, err)
		}
		rec.Inputs = append(rec.Inputs, id)
	}
	if len(addrs) != len(amounts) {
		return fmt.Errorf("transaction %s has %d destination addresses and %d amounts", rec.Hash, len(addrs), len(amounts))
	}
	for i := range addrs {
		rec.Destinations = append(rec.Destinations, model.Destination{Address: addrs[i], Amount: amounts[i]})
	}
	rec.Timestamp = rec.Timestamp.UTC()
	return nil
}
