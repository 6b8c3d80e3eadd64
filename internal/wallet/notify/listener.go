package notify

import "github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"

// Listener observes wallet events. A returned error is logged and never
// affects other listeners.
type Listener interface {
	OnSyncProgress(p model.SyncProgress) error
	OnOutputReceived(out model.Output) error
	OnOutputSpent(out model.Output) error
	OnNewBlock(height uint64) error
	OnBalancesChanged(account uint32, balance, unlocked uint64) error
	OnSyncError(err error) error
}

// BaseListener implements Listener with no-ops. Embed it to observe a subset
// of events.
type BaseListener struct{}

func (BaseListener) OnSyncProgress(model.SyncProgress) error        { return nil }
func (BaseListener) OnOutputReceived(model.Output) error            { return nil }
func (BaseListener) OnOutputSpent(model.Output) error               { return nil }
func (BaseListener) OnNewBlock(uint64) error                        { return nil }
func (BaseListener) OnBalancesChanged(uint32, uint64, uint64) error { return nil }
func (BaseListener) OnSyncError(error) error                        { return nil }
