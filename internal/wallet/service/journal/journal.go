// Package journal persists ledger deltas and scanned blocks in the
// background so a wallet can resume without a full rescan.
package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/batcher"
	"go.uber.org/zap"
)

type entry struct {
	changes  model.LedgerChanges
	block    *model.BlockRef
	rollback *uint64
}

// Journal queues deltas and writes them to the repository in order. Write
// failures are logged and counted, never returned to the caller.
type Journal struct {
	walletID string
	repo     Repository
	metrics  Metrics
	logger   *zap.Logger
	batcher  *batcher.Batcher[entry]
}

func New(walletID string, repo Repository, metrics Metrics, cfg batcher.Config, logger *zap.Logger) (*Journal, error) {
	if walletID == "" {
		return nil, errors.New("journal wallet id is required")
	}
	if metrics == nil {
		return nil, errors.New("journal metrics is required")
	}
	logger = logger.Named("journal").With(zap.String("wallet", walletID))
	j := &Journal{
		walletID: walletID,
		repo:     repo,
		metrics:  metrics,
		logger:   logger,
	}
	j.batcher = batcher.New(logger, j.flush, cfg)
	return j, nil
}

// Start launches the background writer.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop writes everything still queued and waits for the writer to exit.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// RecordBlock queues a scanned block together with the delta it produced.
func (j *Journal) RecordBlock(ctx context.Context, ref model.BlockRef, changes model.LedgerChanges) {
	j.add(ctx, "block", entry{changes: changes, block: &ref})
}

// RecordRollback queues the removal of every block at or above height.
func (j *Journal) RecordRollback(ctx context.Context, height uint64, changes model.LedgerChanges) {
	j.add(ctx, "rollback", entry{changes: changes, rollback: &height})
}

// RecordChanges queues a delta that is not tied to a block.
func (j *Journal) RecordChanges(ctx context.Context, changes model.LedgerChanges) {
	if changes.IsEmpty() {
		return
	}
	j.add(ctx, "changes", entry{changes: changes})
}

func (j *Journal) add(ctx context.Context, kind string, e entry) {
	if err := j.batcher.Add(context.WithoutCancel(ctx), e); err != nil {
		j.metrics.ObserveDropped(kind)
		j.logger.Error("ledger delta dropped", zap.String("kind", kind), zap.Error(err))
	}
}

func (j *Journal) flush(ctx context.Context, entries []entry) (err error) {
	started := time.Now()
	defer func() {
		j.metrics.ObserveFlush(err, len(entries), started)
	}()

	w := merge(entries)
	if w.rolledBack {
		if err = j.repo.RollbackBlocks(ctx, j.walletID, w.rollbackFrom); err != nil {
			return fmt.Errorf("journal rollback: %w", err)
		}
	}
	if err = j.repo.InsertOutputs(ctx, j.walletID, w.outputs, w.removedOutputs); err != nil {
		return fmt.Errorf("journal outputs: %w", err)
	}
	if err = j.repo.InsertTransactions(ctx, j.walletID, w.records, w.removedRecords); err != nil {
		return fmt.Errorf("journal transactions: %w", err)
	}
	// Blocks go last so a stored block never precedes the outputs it produced.
	if err = j.repo.InsertBlocks(ctx, j.walletID, w.blocks); err != nil {
		return fmt.Errorf("journal blocks: %w", err)
	}
	j.logger.Debug("journal flushed",
		zap.Int("entries", len(entries)),
		zap.Int("outputs", len(w.outputs)+len(w.removedOutputs)),
		zap.Int("records", len(w.records)+len(w.removedRecords)),
		zap.Int("blocks", len(w.blocks)),
	)
	return nil
}
