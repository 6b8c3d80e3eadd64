// Package wallet wires the cursor, scanner, ledger, sync engine, transaction
// builder and listener hub of a single wallet.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/chain"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/codec"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/ledger"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/notify"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/scanner"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/journal"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/syncer"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/txbuilder"
	"go.uber.org/zap"
)

// Config describes one wallet instance.
type Config struct {
	// ID names the wallet in logs and storage.
	ID string
	// RestoreHeight is the first block the wallet scans.
	RestoreHeight uint64
	// MaxRollbackDepth bounds reorgs; chain.DefaultMaxRollbackDepth when zero.
	MaxRollbackDepth uint64
	Scanner          scanner.Config
	Syncer           syncer.Config
}

func (c Config) withDefaults() Config {
	if c.MaxRollbackDepth == 0 {
		c.MaxRollbackDepth = chain.DefaultMaxRollbackDepth
	}
	return c
}

// Wallet is a synchronizing wallet session.
type Wallet struct {
	cfg     Config
	logger  *zap.Logger
	keys    Keys
	daemon  Daemon
	ledger  *ledger.Ledger
	cursor  *chain.Cursor
	hub     *notify.Hub
	syncer  *syncer.Syncer
	builder *txbuilder.Builder
}

// New builds a wallet over keys and daemon. journal and blockSignal may be nil.
func New(
	cfg Config,
	keys Keys,
	daemon Daemon,
	journal Journal,
	metrics Metrics,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Wallet, error) {
	if cfg.ID == "" {
		return nil, errors.New("wallet id is required")
	}
	if keys == nil || daemon == nil {
		return nil, errors.New("wallet keys and daemon are required")
	}
	if metrics == nil {
		return nil, errors.New("wallet metrics is required")
	}
	cfg = cfg.withDefaults()
	logger = logger.With(zap.String("wallet", cfg.ID))

	var (
		syncJournal syncer.Journal
		txJournal   txbuilder.Journal
	)
	if journal != nil {
		syncJournal, txJournal = journal, journal
	}

	w := &Wallet{
		cfg:    cfg,
		logger: logger,
		keys:   keys,
		daemon: daemon,
		ledger: ledger.New(),
		cursor: chain.NewCursor(cfg.RestoreHeight, cfg.MaxRollbackDepth),
		hub:    notify.NewHub(logger),
	}

	var err error
	w.syncer, err = syncer.New(
		daemon,
		scanner.New(keys, cfg.Scanner, logger),
		w.ledger,
		w.cursor,
		w.hub,
		syncJournal,
		metrics,
		cfg.Syncer,
		logger,
		blockSignal,
	)
	if err != nil {
		w.hub.Stop()
		return nil, fmt.Errorf("init syncer: %w", err)
	}
	w.builder, err = txbuilder.New(w.ledger, keys, daemon, codec.Codec{}, w.cursor, txJournal, metrics, logger)
	if err != nil {
		w.hub.Stop()
		return nil, fmt.Errorf("init tx builder: %w", err)
	}
	return w, nil
}

// ID returns the configured wallet id.
func (w *Wallet) ID() string { return w.cfg.ID }

// Sync scans to the daemon's tip in the foreground.
func (w *Wallet) Sync(ctx context.Context) (model.SyncResult, error) {
	return w.syncer.Sync(ctx)
}

// StartSyncing keeps the wallet at the daemon's tip until StopSyncing.
func (w *Wallet) StartSyncing(ctx context.Context) error {
	return w.syncer.StartSyncing(ctx)
}

// StopSyncing halts background syncing after the block being scanned.
func (w *Wallet) StopSyncing() error {
	return w.syncer.StopSyncing()
}

// State reports whether the wallet is idle or syncing.
func (w *Wallet) State() syncer.State {
	return w.syncer.State()
}

// Balance is the sum of account's unspent outputs, locked or not.
func (w *Wallet) Balance(account uint32) uint64 {
	return w.ledger.Balance(account)
}

// UnlockedBalance is the part of Balance spendable at the scanned height.
func (w *Wallet) UnlockedBalance(account uint32) uint64 {
	return w.ledger.UnlockedBalance(account, w.cursor.Height())
}

// CreateTx pays destinations from account, relaying the transaction when
// relay is set.
func (w *Wallet) CreateTx(ctx context.Context, account uint32, destinations []model.Destination, relay bool) (txbuilder.Result, error) {
	return w.builder.CreateTx(ctx, account, destinations, relay)
}

// Subscribe registers l for wallet events.
func (w *Wallet) Subscribe(l notify.Listener) error {
	return w.hub.Subscribe(l)
}

// Unsubscribe removes l and reports whether it was registered.
func (w *Wallet) Unsubscribe(l notify.Listener) bool {
	return w.hub.Unsubscribe(l)
}

// Transfers returns account's transfer history.
func (w *Wallet) Transfers(account uint32) []model.TxRecord {
	return w.ledger.Transfers(account)
}

// Outputs returns account's outputs in every spent state.
func (w *Wallet) Outputs(account uint32) []model.Output {
	return w.ledger.Outputs(account)
}

// Height is the next block height the wallet will scan.
func (w *Wallet) Height() uint64 {
	return w.cursor.Height()
}

// DaemonHeight is the chain height last reported by the daemon.
func (w *Wallet) DaemonHeight() uint64 {
	return w.cursor.DaemonHeight()
}

// Address returns the encoded address of a subaddress.
func (w *Wallet) Address(idx model.SubaddressIndex) string {
	return w.keys.EncodeAddress(w.keys.Address(idx))
}

// Restore loads previously journaled state. No sync can start while it runs.
func (w *Wallet) Restore(ctx context.Context, r Restorer, loader journal.SnapshotLoader) error {
	err := w.syncer.WhileIdle(func() error {
		return r.Restore(ctx, loader, w.ledger, w.cursor, w.cfg.MaxRollbackDepth+1)
	})
	if err != nil {
		return fmt.Errorf("restore wallet %s: %w", w.cfg.ID, err)
	}
	return nil
}

// Close stops background syncing and the listener hub.
func (w *Wallet) Close() {
	if err := w.syncer.StopSyncing(); err != nil && !errors.Is(err, model.ErrNotSyncing) {
		w.logger.Warn("stop syncing on close", zap.Error(err))
	}
	w.hub.Stop()
}
