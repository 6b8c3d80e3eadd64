package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConnection reports an unreachable daemon, a timed out call or an open circuit.
	ErrConnection = errors.New("daemon connection failed")
	// ErrDecode reports malformed block or transaction data.
	ErrDecode = errors.New("malformed chain data")
	// ErrChainMismatch reports a hash that disagrees with one already recorded for the same height.
	ErrChainMismatch = errors.New("chain mismatch")
	// ErrRollbackTooDeep reports a divergence deeper than the configured rollback depth.
	ErrRollbackTooDeep = errors.New("rollback too deep")
	// ErrInsufficientFunds reports that unlocked outputs cannot cover the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidDestination reports a malformed address or a non-positive amount.
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrRelayRejected reports a transaction the daemon refused to relay.
	ErrRelayRejected = errors.New("relay rejected")
	// ErrSyncInProgress reports an attempt to start a second sync activity.
	ErrSyncInProgress = errors.New("sync already in progress")
	// ErrNotSyncing reports a stop request without a running background sync.
	ErrNotSyncing = errors.New("background sync not running")
)

// RelayRejectedError carries the daemon's reason for refusing a transaction.
type RelayRejectedError struct {
	Reason string
}

func (e *RelayRejectedError) Error() string {
	if e.Reason == "" {
		return ErrRelayRejected.Error()
	}
	return fmt.Sprintf("%s: %s", ErrRelayRejected, e.Reason)
}

// Is makes errors.Is(err, ErrRelayRejected) match.
func (e *RelayRejectedError) Is(target error) bool {
	return target == ErrRelayRejected
}
