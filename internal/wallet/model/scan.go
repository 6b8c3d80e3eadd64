package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// SpentOutput marks an owned output as consumed by a scanned transaction.
type SpentOutput struct {
	ID      OutputID
	SpentBy chainhash.Hash
	Height  uint64
}

// ScanResult is everything one block contributes to the wallet.
type ScanResult struct {
	Block       BlockRef
	NewOutputs  []Output
	Spent       []SpentOutput
	IncomingTxs []TxRecord
	OutgoingTxs []TxRecord
}

// IsEmpty reports whether the block touched the wallet at all.
func (r ScanResult) IsEmpty() bool {
	return len(r.NewOutputs) == 0 && len(r.Spent) == 0 && len(r.IncomingTxs) == 0 && len(r.OutgoingTxs) == 0
}

// LedgerChanges is the delta produced by a ledger mutation.
type LedgerChanges struct {
	Outputs        []Output
	RemovedOutputs []OutputID
	Records        []TxRecord
	RemovedRecords []RecordKey
}

// IsEmpty reports whether nothing changed.
func (c LedgerChanges) IsEmpty() bool {
	return len(c.Outputs) == 0 && len(c.RemovedOutputs) == 0 && len(c.Records) == 0 && len(c.RemovedRecords) == 0
}

// SyncProgress is emitted while a sync pass advances.
type SyncProgress struct {
	Height      uint64
	StartHeight uint64
	EndHeight   uint64
	Fraction    float64
	Message     string
}

// SyncResult summarises a completed sync pass.
type SyncResult struct {
	StartHeight     uint64
	EndHeight       uint64
	BlocksScanned   uint64
	OutputsReceived int
	OutputsSpent    int
	ReceivedAmount  uint64
	Rollbacks       int
}

// Add folds another pass into r.
func (r *SyncResult) Add(other SyncResult) {
	r.EndHeight = other.EndHeight
	r.BlocksScanned += other.BlocksScanned
	r.OutputsReceived += other.OutputsReceived
	r.OutputsSpent += other.OutputsSpent
	r.ReceivedAmount += other.ReceivedAmount
	r.Rollbacks += other.Rollbacks
}
