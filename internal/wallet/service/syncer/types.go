package syncer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/scanner"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Daemon interface {
		Height(ctx context.Context) (uint64, error)
		BlocksByRange(ctx context.Context, start uint64, count int) ([]model.Block, error)
		BlockHash(ctx context.Context, height uint64) (chainhash.Hash, error)
	}
	BlockScanner interface {
		ScanBlock(ctx context.Context, block model.Block, known scanner.KeyImageIndex) (model.ScanResult, error)
	}
	Ledger interface {
		OwnedOutput(ki model.KeyImage) (model.Output, bool)
		ApplyScanResult(res model.ScanResult) (model.LedgerChanges, error)
		ApplyRollback(height uint64) model.LedgerChanges
		Balance(account uint32) uint64
		UnlockedBalance(account uint32, height uint64) uint64
	}
	Notifier interface {
		NotifySyncProgress(p model.SyncProgress)
		NotifyOutputReceived(out model.Output)
		NotifyOutputSpent(out model.Output)
		NotifyNewBlock(height uint64)
		NotifyBalancesChanged(account uint32, balance, unlocked uint64)
		NotifySyncError(err error)
	}
	Journal interface {
		RecordBlock(ctx context.Context, ref model.BlockRef, changes model.LedgerChanges)
		RecordRollback(ctx context.Context, height uint64, changes model.LedgerChanges)
	}
	Metrics interface {
		ObservePass(err error, blocks uint64, started time.Time)
		ObserveBlock(err error, height uint64, started time.Time)
		ObserveRollback(depth uint64)
	}
)
