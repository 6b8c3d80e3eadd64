package journal

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/ledger"
	"go.uber.org/zap"
)

// Restore loads the wallet's persisted state into the ledger and cursor.
// Anything the ledger holds at or above the restored scan height is rolled
// back, and journaled as such, so the next pass rescans it.
func (j *Journal) Restore(ctx context.Context, loader SnapshotLoader, l LedgerRestorer, c CursorRestorer, maxBlocks uint64) error {
	snap, err := loader.LoadSnapshot(ctx, j.walletID, maxBlocks)
	if err != nil {
		return fmt.Errorf("load wallet %s: %w", j.walletID, err)
	}
	if err := l.Restore(ledger.Snapshot{Outputs: snap.Outputs, Records: snap.Records}); err != nil {
		return fmt.Errorf("restore ledger: %w", err)
	}
	if err := c.Restore(snap.Blocks); err != nil {
		return fmt.Errorf("restore cursor: %w", err)
	}

	height := c.Height()
	if changes := l.ApplyRollback(height); !changes.IsEmpty() {
		j.RecordRollback(ctx, height, changes)
	}
	j.logger.Info("wallet restored",
		zap.Int("outputs", len(snap.Outputs)),
		zap.Int("records", len(snap.Records)),
		zap.Uint64("height", height),
	)
	return nil
}
