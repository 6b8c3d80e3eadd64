package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const insertBlocksQuery = `
INSERT INTO wallet_blocks (
	wallet_id,
	height,
	hash,
	version,
	is_deleted
) VALUES`

// InsertBlocks stores scanned block refs.
func (r *Repository) InsertBlocks(ctx context.Context, walletID string, blocks []model.BlockRef) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, ref := range blocks {
		if err = batch.Append(
			walletID,
			ref.Height,
			ref.Hash.String(),
			r.nextVersion(),
			uint8(0),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block %d: %w", ref.Height, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
