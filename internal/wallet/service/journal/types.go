package journal

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/ledger"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/repository/clickhouse"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertOutputs(ctx context.Context, walletID string, outputs []model.Output, removed []model.OutputID) error
		InsertTransactions(ctx context.Context, walletID string, records []model.TxRecord, removed []model.RecordKey) error
		InsertBlocks(ctx context.Context, walletID string, blocks []model.BlockRef) error
		RollbackBlocks(ctx context.Context, walletID string, height uint64) error
	}
	SnapshotLoader interface {
		LoadSnapshot(ctx context.Context, walletID string, maxBlocks uint64) (clickhouse.Snapshot, error)
	}
	LedgerRestorer interface {
		Restore(s ledger.Snapshot) error
		ApplyRollback(height uint64) model.LedgerChanges
	}
	CursorRestorer interface {
		Restore(refs []model.BlockRef) error
		Height() uint64
	}
	Metrics interface {
		ObserveFlush(err error, entries int, started time.Time)
		ObserveDropped(kind string)
	}
)
