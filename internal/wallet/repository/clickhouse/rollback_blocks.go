package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const rollbackBlocksQuery = `
INSERT INTO wallet_blocks (
	wallet_id,
	height,
	hash,
	version,
	is_deleted
)
SELECT
	wallet_id,
	height,
	hash,
	?,
	1
FROM wallet_blocks FINAL
WHERE wallet_id = ? AND height >= ?`

// RollbackBlocks tombstones every stored block at or above height.
func (r *Repository) RollbackBlocks(ctx context.Context, walletID string, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("rollback_blocks", err, start)
	}()

	if err = r.conn.Exec(ctx, rollbackBlocksQuery, r.nextVersion(), walletID, height); err != nil {
		return fmt.Errorf("rollback blocks from %d: %w", height, err)
	}
	return nil
}
