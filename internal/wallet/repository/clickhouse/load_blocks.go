package clickhouse

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const loadBlocksQuery = `
SELECT
	height,
	hash
FROM wallet_blocks FINAL
WHERE wallet_id = ? AND is_deleted = 0
ORDER BY height DESC
LIMIT ?`

// LoadBlocks returns up to limit of the highest stored block refs in
// ascending order.
func (r *Repository) LoadBlocks(ctx context.Context, walletID string, limit uint64) ([]model.BlockRef, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_blocks", err, start)
	}()

	rows, err := r.conn.Query(ctx, loadBlocksQuery, walletID, limit)
	if err != nil {
		return nil, fmt.Errorf("query blocks: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var refs []model.BlockRef
	for rows.Next() {
		var (
			ref  model.BlockRef
			hash string
		)
		if err = rows.Scan(&ref.Height, &hash); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		if ref.Hash, err = parseHash(hash); err != nil {
			return nil, fmt.Errorf("block %d: %w", ref.Height, err)
		}
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}
	slices.Reverse(refs)
	return refs, nil
}
