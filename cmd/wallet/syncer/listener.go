package main

import (
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"go.uber.org/zap"
)

// eventLogger writes every wallet event to the log.
type eventLogger struct {
	logger *zap.Logger
}

func newEventLogger(logger *zap.Logger) *eventLogger {
	return &eventLogger{logger: logger.Named("events")}
}

func (l *eventLogger) OnSyncProgress(p model.SyncProgress) error {
	l.logger.Debug("sync progress",
		zap.Uint64("height", p.Height),
		zap.Uint64("end_height", p.EndHeight),
		zap.Float64("fraction", p.Fraction),
		zap.String("message", p.Message),
	)
	return nil
}

func (l *eventLogger) OnOutputReceived(out model.Output) error {
	l.logger.Info("output received",
		zap.Stringer("output", out.ID),
		zap.Uint32("account", out.Subaddress.Account),
		zap.Uint32("minor", out.Subaddress.Minor),
		zap.String("amount", model.FormatAmount(out.Amount)),
		zap.Uint64("height", out.Height),
		zap.Uint64("unlock_height", out.UnlockHeight),
	)
	return nil
}

func (l *eventLogger) OnOutputSpent(out model.Output) error {
	l.logger.Info("output spent",
		zap.Stringer("output", out.ID),
		zap.Stringer("spent_by", out.SpentBy),
		zap.String("amount", model.FormatAmount(out.Amount)),
	)
	return nil
}

func (l *eventLogger) OnNewBlock(height uint64) error {
	l.logger.Debug("new block", zap.Uint64("height", height))
	return nil
}

func (l *eventLogger) OnBalancesChanged(account uint32, balance, unlocked uint64) error {
	l.logger.Info("balance changed",
		zap.Uint32("account", account),
		zap.String("balance", model.FormatAmount(balance)),
		zap.String("unlocked", model.FormatAmount(unlocked)),
	)
	return nil
}

func (l *eventLogger) OnSyncError(err error) error {
	l.logger.Warn("sync error", zap.Error(err))
	return nil
}
