// Package syncer drives wallet scanning against a daemon, once in the
// foreground or continuously in the background.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/chain"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/lightningnetwork/lnd/ticker"
	"go.uber.org/zap"
)

// Config tunes a Syncer.
type Config struct {
	// BatchSize is the number of blocks requested per fetch.
	BatchSize int
	// PollInterval paces background passes when no block signal arrives.
	PollInterval time.Duration
	// RetryInterval and MaxRetryInterval bound the background backoff.
	RetryInterval    time.Duration
	MaxRetryInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = defaultRetryInterval
	}
	if c.MaxRetryInterval < c.RetryInterval {
		c.MaxRetryInterval = defaultMaxRetry
	}
	return c
}

// Syncer moves the cursor to the daemon's tip, applying every block to the
// ledger. Only one pass runs at a time.
type Syncer struct {
	logger      *zap.Logger
	daemon      Daemon
	scanner     BlockScanner
	ledger      Ledger
	cursor      *chain.Cursor
	notifier    Notifier
	journal     Journal
	metrics     Metrics
	cfg         Config
	blockSignal <-chan struct{}
	sleep       func(context.Context, time.Duration, <-chan struct{}) error
	newTicker   func(time.Duration) ticker.Ticker

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// New wires a Syncer. journal and blockSignal may be nil.
func New(
	daemon Daemon,
	scanner BlockScanner,
	ledger Ledger,
	cursor *chain.Cursor,
	notifier Notifier,
	journal Journal,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Syncer, error) {
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if notifier == nil {
		return nil, errors.New("syncer notifier is required")
	}
	if journal == nil {
		journal = nopJournal{}
	}
	return &Syncer{
		logger:      logger.Named("syncer"),
		daemon:      daemon,
		scanner:     scanner,
		ledger:      ledger,
		cursor:      cursor,
		notifier:    notifier,
		journal:     journal,
		metrics:     metrics,
		cfg:         cfg.withDefaults(),
		blockSignal: blockSignal,
		sleep:       clock.Sleep,
		newTicker: func(d time.Duration) ticker.Ticker {
			return ticker.New(d)
		},
	}, nil
}

// State reports the current mode.
func (s *Syncer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Sync scans up to the daemon's tip and returns a summary of the pass.
func (s *Syncer) Sync(ctx context.Context) (model.SyncResult, error) {
	s.mu.Lock()
	if s.state != Idle {
		state := s.state
		s.mu.Unlock()
		return model.SyncResult{}, fmt.Errorf("sync while %s: %w", state, model.ErrSyncInProgress)
	}
	s.state = Syncing
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = Idle
		s.mu.Unlock()
	}()

	s.logger.Info("sync started", zap.Uint64("height", s.cursor.Height()))
	res, err := s.pass(ctx)
	if err != nil {
		return res, err
	}
	s.logger.Info("sync finished",
		zap.Uint64("height", res.EndHeight),
		zap.Uint64("blocks", res.BlocksScanned),
		zap.Int("received", res.OutputsReceived),
		zap.Int("spent", res.OutputsSpent),
	)
	return res, nil
}

// WhileIdle runs fn while no pass can start. The syncer reports Syncing
// until fn returns, so concurrent Sync and StartSyncing calls fail with
// ErrSyncInProgress.
func (s *Syncer) WhileIdle(fn func() error) error {
	s.mu.Lock()
	if s.state != Idle {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("exclusive access while %s: %w", state, model.ErrSyncInProgress)
	}
	s.state = Syncing
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = Idle
		s.mu.Unlock()
	}()
	return fn()
}

// StartSyncing runs passes in the background until StopSyncing or until ctx
// ends. Failures are reported through the notifier and retried.
func (s *Syncer) StartSyncing(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Idle {
		return fmt.Errorf("start syncing while %s: %w", s.state, model.ErrSyncInProgress)
	}
	ctx, cancel := context.WithCancel(ctx)
	s.state = BackgroundSyncing
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.background(ctx, s.done)

	s.logger.Info("background syncing started")
	return nil
}

// StopSyncing halts background syncing. The block being scanned is still
// committed; no further block is fetched.
func (s *Syncer) StopSyncing() error {
	s.mu.Lock()
	if s.state != BackgroundSyncing || s.cancel == nil {
		s.mu.Unlock()
		return model.ErrNotSyncing
	}
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	cancel()
	<-done
	s.logger.Info("background syncing stopped")
	return nil
}

func (s *Syncer) background(ctx context.Context, done chan struct{}) {
	defer func() {
		s.mu.Lock()
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
		s.state = Idle
		s.mu.Unlock()
		close(done)
	}()

	tick := s.newTicker(s.cfg.PollInterval)
	tick.Resume()
	defer tick.Stop()

	retry := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(s.cfg.RetryInterval),
		backoff.WithMaxInterval(s.cfg.MaxRetryInterval),
		backoff.WithMaxElapsedTime(0),
	)

	for {
		res, err := s.pass(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			d := retry.NextBackOff()
			s.logger.Warn("background pass failed, backing off", zap.Error(err), zap.Duration("sleep", d))
			s.notifier.NotifySyncError(err)
			if sleepErr := s.sleep(ctx, d, s.blockSignal); sleepErr != nil {
				return
			}
			continue
		}
		retry.Reset()
		if res.BlocksScanned > 0 {
			s.logger.Info("background pass finished",
				zap.Uint64("height", res.EndHeight),
				zap.Uint64("blocks", res.BlocksScanned),
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-tick.Ticks():
		case <-s.blockSignal:
			s.logger.Debug("block signal received")
		}
	}
}

// pass scans until the cursor reaches the daemon height.
func (s *Syncer) pass(ctx context.Context) (res model.SyncResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObservePass(err, res.BlocksScanned, started)
	}()

	res.StartHeight = s.cursor.Height()
	res.EndHeight = res.StartHeight
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		daemonHeight, err := s.daemon.Height(ctx)
		if err != nil {
			return res, fmt.Errorf("daemon height: %w", err)
		}
		s.cursor.SetDaemonHeight(daemonHeight)
		res.EndHeight = daemonHeight

		if _, err := s.reorg(ctx, daemonHeight, &res); err != nil {
			return res, err
		}

		height := s.cursor.Height()
		if height >= daemonHeight {
			res.EndHeight = height
			s.progress(res, height, "synchronized")
			return res, nil
		}

		count := s.cfg.BatchSize
		if remaining := daemonHeight - height; remaining < uint64(count) {
			count = int(remaining)
		}
		blocks, err := s.daemon.BlocksByRange(ctx, height, count)
		if err != nil {
			return res, fmt.Errorf("fetch blocks from %d: %w", height, err)
		}
		if len(blocks) == 0 {
			return res, fmt.Errorf("daemon at height %d returned no blocks from %d: %w", daemonHeight, height, model.ErrConnection)
		}

		for _, block := range blocks {
			if tip, ok := s.cursor.Tip(); ok && block.PrevHash != tip.Hash {
				s.logger.Info("block does not extend scanned tip",
					zap.Uint64("height", block.Height),
					zap.Stringer("prev", block.PrevHash),
					zap.Stringer("tip", tip.Hash),
				)
				rolled, err := s.reorg(ctx, daemonHeight, &res)
				if err != nil {
					return res, err
				}
				if !rolled {
					return res, fmt.Errorf("block %d prev %s, tip %s: %w", block.Height, block.PrevHash, tip.Hash, model.ErrChainMismatch)
				}
				break
			}
			if err := s.applyBlock(ctx, block, &res); err != nil {
				return res, err
			}
			s.progress(res, block.Height+1, "")
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
		}
	}
}

// applyBlock scans and commits one block. The scan itself is not cancelled
// so that a block is either fully committed or untouched.
func (s *Syncer) applyBlock(ctx context.Context, block model.Block, res *model.SyncResult) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBlock(err, block.Height, started)
	}()

	scanned, err := s.scanner.ScanBlock(context.WithoutCancel(ctx), block, s.ledger)
	if err != nil {
		return fmt.Errorf("scan block %d: %w", block.Height, err)
	}
	changes, err := s.ledger.ApplyScanResult(scanned)
	if err != nil {
		return fmt.Errorf("apply block %d: %w", block.Height, err)
	}
	if err := s.cursor.AdvanceTo(block.Height, block.Hash); err != nil {
		return fmt.Errorf("advance cursor: %w", err)
	}
	s.journal.RecordBlock(ctx, block.Ref(), changes)

	res.BlocksScanned++
	res.OutputsReceived += len(scanned.NewOutputs)
	res.OutputsSpent += len(scanned.Spent)
	for _, out := range scanned.NewOutputs {
		res.ReceivedAmount += out.Amount
	}

	for _, out := range changes.Outputs {
		if out.Height == block.Height {
			s.notifier.NotifyOutputReceived(out)
		}
		if out.State == model.SpentConfirmed && out.SpentHeight == block.Height {
			s.notifier.NotifyOutputSpent(out)
		}
	}
	s.notifier.NotifyNewBlock(block.Height)
	s.notifyBalances(changes)

	if !changes.IsEmpty() {
		s.logger.Debug("block applied",
			zap.Uint64("height", block.Height),
			zap.Int("outputs", len(changes.Outputs)),
			zap.Int("records", len(changes.Records)),
		)
	}
	return nil
}

// reorg rolls the ledger and cursor back when the daemon no longer agrees
// with the scanned tip.
func (s *Syncer) reorg(ctx context.Context, daemonHeight uint64, res *model.SyncResult) (bool, error) {
	tip, ok := s.cursor.Tip()
	if !ok {
		return false, nil
	}
	var atTip chainhash.Hash
	if daemonHeight > tip.Height {
		h, err := s.daemon.BlockHash(ctx, tip.Height)
		if err != nil {
			return false, fmt.Errorf("daemon hash at tip %d: %w", tip.Height, err)
		}
		atTip = h
	}

	target, reorg, err := s.cursor.DetectReorg(ctx, daemonHeight, atTip, s.daemon.BlockHash)
	if err != nil {
		return false, fmt.Errorf("detect reorg: %w", err)
	}
	if !reorg {
		return false, nil
	}

	depth := s.cursor.Height() - target
	s.logger.Warn("chain reorganization, rolling back",
		zap.Uint64("tip", tip.Height),
		zap.Uint64("resume_height", target),
		zap.Uint64("depth", depth),
	)
	changes := s.ledger.ApplyRollback(target)
	s.cursor.Rollback(target)
	s.journal.RecordRollback(ctx, target, changes)
	s.metrics.ObserveRollback(depth)
	res.Rollbacks++
	s.notifyBalances(changes)
	return true, nil
}

func (s *Syncer) notifyBalances(changes model.LedgerChanges) {
	touched := make(map[uint32]struct{})
	for _, out := range changes.Outputs {
		touched[out.Subaddress.Account] = struct{}{}
	}
	for _, rec := range changes.Records {
		touched[rec.Account] = struct{}{}
	}
	if len(touched) == 0 {
		return
	}
	accounts := make([]uint32, 0, len(touched))
	for a := range touched {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })

	height := s.cursor.Height()
	for _, a := range accounts {
		s.notifier.NotifyBalancesChanged(a, s.ledger.Balance(a), s.ledger.UnlockedBalance(a, height))
	}
}

func (s *Syncer) progress(res model.SyncResult, height uint64, msg string) {
	fraction := 1.0
	if res.EndHeight > res.StartHeight {
		fraction = (float64(height) - float64(res.StartHeight)) / float64(res.EndHeight-res.StartHeight)
	}
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	s.notifier.NotifySyncProgress(model.SyncProgress{
		Height:      height,
		StartHeight: res.StartHeight,
		EndHeight:   res.EndHeight,
		Fraction:    fraction,
		Message:     msg,
	})
}

type nopJournal struct{}

func (nopJournal) RecordBlock(context.Context, model.BlockRef, model.LedgerChanges) {}
func (nopJournal) RecordRollback(context.Context, uint64, model.LedgerChanges)      {}
