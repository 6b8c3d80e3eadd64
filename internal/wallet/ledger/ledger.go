// Package ledger holds the wallet's owned outputs and transfer history.
//
// A Ledger is mutated only through scan results, rollbacks and pending
// spends. Every mutation returns the resulting LedgerChanges so that callers
// can journal or publish the delta. Balances are always recomputed from the
// output set.
package ledger

import (
	"errors"
	"sort"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

var (
	// ErrInconsistent is returned when a mutation contradicts the ledger.
	ErrInconsistent = errors.New("ledger inconsistency")
	// ErrUnknownTransaction is returned when no pending record has the given hash.
	ErrUnknownTransaction = errors.New("unknown pending transaction")
)

// Ledger is safe for concurrent use. A single RWMutex guards all state.
type Ledger struct {
	mu         sync.RWMutex
	outputs    map[model.OutputID]model.Output
	byKeyImage map[model.KeyImage]model.OutputID
	records    map[model.RecordKey]model.TxRecord
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		outputs:    make(map[model.OutputID]model.Output),
		byKeyImage: make(map[model.KeyImage]model.OutputID),
		records:    make(map[model.RecordKey]model.TxRecord),
	}
}

// OwnedOutput resolves a key image to an owned output.
func (l *Ledger) OwnedOutput(ki model.KeyImage) (model.Output, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	id, ok := l.byKeyImage[ki]
	if !ok {
		return model.Output{}, false
	}
	return l.outputs[id], true
}

// Output returns a single output by id.
func (l *Ledger) Output(id model.OutputID) (model.Output, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out, ok := l.outputs[id]
	return out, ok
}

// Balance sums the unspent outputs of an account. Spent-pending outputs are
// excluded.
func (l *Ledger) Balance(account uint32) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total uint64
	for _, out := range l.outputs {
		if out.Subaddress.Account == account && out.State == model.Unspent {
			total += out.Amount
		}
	}
	return total
}

// UnlockedBalance sums the outputs of an account that are spendable at height.
func (l *Ledger) UnlockedBalance(account uint32, height uint64) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total uint64
	for _, out := range l.outputs {
		if out.Subaddress.Account == account && out.Spendable(height) {
			total += out.Amount
		}
	}
	return total
}

// Outputs lists every output of an account, oldest first.
func (l *Ledger) Outputs(account uint32) []model.Output {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var res []model.Output
	for _, out := range l.outputs {
		if out.Subaddress.Account == account {
			res = append(res, out)
		}
	}
	sortByAge(res)
	return res
}

// Transfers lists the records of an account. Confirmed records come first in
// height order, pending ones last.
func (l *Ledger) Transfers(account uint32) []model.TxRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var res []model.TxRecord
	for _, rec := range l.records {
		if rec.Account == account {
			res = append(res, rec.Clone())
		}
	}
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.Pending != b.Pending {
			return !a.Pending
		}
		if a.Height != b.Height {
			return a.Height < b.Height
		}
		return recordKeyLess(a.Key(), b.Key())
	})
	return res
}

// Len reports the number of outputs and records held.
func (l *Ledger) Len() (outputs, records int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.outputs), len(l.records)
}

func sortByAge(outs []model.Output) {
	sort.Slice(outs, func(i, j int) bool {
		if outs[i].Height != outs[j].Height {
			return outs[i].Height < outs[j].Height
		}
		return outs[i].ID.Less(outs[j].ID)
	})
}
