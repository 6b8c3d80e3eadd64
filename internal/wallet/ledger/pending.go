package ledger

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// ReservePending marks ids spent-pending by rec and stores rec as a pending
// outgoing record. Either every output is reserved or none is.
func (l *Ledger) ReservePending(rec model.TxRecord, ids []model.OutputID) (model.LedgerChanges, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(ids) == 0 {
		return model.LedgerChanges{}, fmt.Errorf("reserve %s without inputs: %w", rec.Hash, ErrInconsistent)
	}
	if _, ok := l.records[rec.Key()]; ok {
		return model.LedgerChanges{}, fmt.Errorf("transaction %s already recorded: %w", rec.Hash, ErrInconsistent)
	}
	seen := make(map[model.OutputID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return model.LedgerChanges{}, fmt.Errorf("output %s reserved twice: %w", id, ErrInconsistent)
		}
		seen[id] = struct{}{}
		out, ok := l.outputs[id]
		if !ok {
			return model.LedgerChanges{}, fmt.Errorf("reserve unknown output %s: %w", id, ErrInconsistent)
		}
		if out.State != model.Unspent {
			return model.LedgerChanges{}, fmt.Errorf("output %s is %s: %w", id, out.State, ErrInconsistent)
		}
	}

	cs := newChangeSet()
	for _, id := range ids {
		out := l.outputs[id]
		out.State = model.SpentPending
		out.SpentBy = rec.Hash
		l.outputs[id] = out
		cs.touchOutput(id)
	}
	rec = rec.Clone()
	rec.Direction = model.Outgoing
	rec.Pending = true
	rec.Height = 0
	rec.Inputs = append([]model.OutputID(nil), ids...)
	l.records[rec.Key()] = rec
	cs.touchRecord(rec.Key())
	return cs.resolve(l), nil
}

// ReleasePending forgets a pending transaction and returns its inputs to
// the unspent set.
func (l *Ledger) ReleasePending(hash chainhash.Hash) (model.LedgerChanges, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	found := false
	for k, rec := range l.records {
		if k.Hash == hash && rec.Pending {
			found = true
			break
		}
	}
	if !found {
		return model.LedgerChanges{}, fmt.Errorf("release %s: %w", hash, ErrUnknownTransaction)
	}
	cs := newChangeSet()
	l.dropPending(hash, cs)
	return cs.resolve(l), nil
}
