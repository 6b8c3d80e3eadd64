package clickhouse

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// Snapshot is the persisted state of one wallet.
type Snapshot struct {
	Outputs []model.Output
	Records []model.TxRecord
	Blocks  []model.BlockRef
}

// LoadSnapshot reads a wallet's outputs, records and its highest maxBlocks
// block refs.
func (r *Repository) LoadSnapshot(ctx context.Context, walletID string, maxBlocks uint64) (Snapshot, error) {
	outputs, err := r.LoadOutputs(ctx, walletID)
	if err != nil {
		return Snapshot{}, err
	}
	records, err := r.LoadTransactions(ctx, walletID)
	if err != nil {
		return Snapshot{}, err
	}
	blocks, err := r.LoadBlocks(ctx, walletID, maxBlocks)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Outputs: outputs, Records: records, Blocks: blocks}, nil
}
