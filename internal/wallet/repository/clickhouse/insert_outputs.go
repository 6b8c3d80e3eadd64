package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const insertOutputsQuery = `
INSERT INTO wallet_outputs (
	wallet_id,
	tx_hash,
	output_index,
	account,
	minor,
	amount,
	state,
	height,
	unlock_height,
	output_key,
	key_image,
	tx_public_key,
	spent_by,
	spent_height,
	version,
	is_deleted
) VALUES`

// InsertOutputs upserts outputs and writes tombstones for removed ids.
func (r *Repository) InsertOutputs(ctx context.Context, walletID string, outputs []model.Output, removed []model.OutputID) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_outputs", err, start)
	}()

	if len(outputs) == 0 && len(removed) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertOutputsQuery)
	if err != nil {
		return fmt.Errorf("prepare outputs batch: %w", err)
	}

	for _, out := range outputs {
		if err = batch.Append(
			walletID,
			out.ID.TxHash.String(),
			out.ID.Index,
			out.Subaddress.Account,
			out.Subaddress.Minor,
			out.Amount,
			out.State.String(),
			out.Height,
			out.UnlockHeight,
			out.Key.String(),
			out.KeyImage.String(),
			out.TxPublicKey.String(),
			out.SpentBy.String(),
			out.SpentHeight,
			r.nextVersion(),
			uint8(0),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append output %s: %w", out.ID, err)
		}
	}
	for _, id := range removed {
		if err = batch.Append(
			walletID,
			id.TxHash.String(),
			id.Index,
			uint32(0),
			uint32(0),
			uint64(0),
			"",
			uint64(0),
			uint64(0),
			"",
			"",
			"",
			"",
			uint64(0),
			r.nextVersion(),
			uint8(1),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append output tombstone %s: %w", id, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert outputs: %w", err)
	}
	return nil
}
