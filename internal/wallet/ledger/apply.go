package ledger

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// ApplyScanResult commits one block's scan result. The whole result is
// validated before anything is mutated. Re-applying a result that is already
// part of the ledger changes nothing.
func (l *Ledger) ApplyScanResult(res model.ScanResult) (model.LedgerChanges, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.validateScan(res); err != nil {
		return model.LedgerChanges{}, fmt.Errorf("apply block %d: %w", res.Block.Height, err)
	}

	cs := newChangeSet()
	for _, out := range res.NewOutputs {
		if _, ok := l.outputs[out.ID]; ok {
			continue
		}
		out.State = model.Unspent
		out.SpentBy = chainhash.Hash{}
		out.SpentHeight = 0
		l.outputs[out.ID] = out
		l.byKeyImage[out.KeyImage] = out.ID
		cs.touchOutput(out.ID)
	}

	// A pending transaction whose input was consumed by another transaction
	// can no longer confirm.
	for _, s := range res.Spent {
		if out := l.outputs[s.ID]; out.State == model.SpentPending && out.SpentBy != s.SpentBy {
			l.dropPending(out.SpentBy, cs)
		}
	}
	for _, s := range res.Spent {
		out := l.outputs[s.ID]
		if out.State == model.SpentConfirmed {
			continue
		}
		out.State = model.SpentConfirmed
		out.SpentBy = s.SpentBy
		out.SpentHeight = s.Height
		l.outputs[s.ID] = out
		cs.touchOutput(s.ID)
	}

	for _, rec := range res.IncomingTxs {
		l.applyRecord(rec, cs)
	}
	for _, rec := range res.OutgoingTxs {
		l.applyRecord(rec, cs)
	}
	return cs.resolve(l), nil
}

func (l *Ledger) applyRecord(rec model.TxRecord, cs *changeSet) {
	key := rec.Key()
	existing, ok := l.records[key]
	switch {
	case !ok:
		rec = rec.Clone()
		rec.Pending = false
		l.records[key] = rec
	case existing.Pending:
		existing.Pending = false
		existing.Height = rec.Height
		if !rec.Timestamp.IsZero() {
			existing.Timestamp = rec.Timestamp
		}
		l.records[key] = existing
	default:
		return
	}
	cs.touchRecord(key)
}

func (l *Ledger) validateScan(res model.ScanResult) error {
	fresh := make(map[model.OutputID]model.Output, len(res.NewOutputs))
	images := make(map[model.KeyImage]model.OutputID, len(res.NewOutputs))
	for _, out := range res.NewOutputs {
		if out.Height != res.Block.Height {
			return fmt.Errorf("output %s at height %d in block %d: %w", out.ID, out.Height, res.Block.Height, ErrInconsistent)
		}
		if _, dup := fresh[out.ID]; dup {
			return fmt.Errorf("output %s listed twice: %w", out.ID, ErrInconsistent)
		}
		if id, dup := images[out.KeyImage]; dup {
			return fmt.Errorf("outputs %s and %s share a key image: %w", id, out.ID, ErrInconsistent)
		}
		if existing, ok := l.outputs[out.ID]; ok && (existing.Height != out.Height || existing.KeyImage != out.KeyImage) {
			return fmt.Errorf("output %s already recorded at height %d: %w", out.ID, existing.Height, ErrInconsistent)
		}
		if id, ok := l.byKeyImage[out.KeyImage]; ok && id != out.ID {
			return fmt.Errorf("key image of %s already owned by %s: %w", out.ID, id, ErrInconsistent)
		}
		fresh[out.ID] = out
		images[out.KeyImage] = out.ID
	}

	spenders := make(map[chainhash.Hash]struct{}, len(res.OutgoingTxs))
	for _, rec := range res.OutgoingTxs {
		spenders[rec.Hash] = struct{}{}
	}
	seen := make(map[model.OutputID]struct{}, len(res.Spent))
	for _, s := range res.Spent {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("output %s spent twice: %w", s.ID, ErrInconsistent)
		}
		seen[s.ID] = struct{}{}

		out, ok := l.outputs[s.ID]
		if !ok {
			if _, ok = fresh[s.ID]; !ok {
				return fmt.Errorf("spent output %s is unknown: %w", s.ID, ErrInconsistent)
			}
		}
		if out.State == model.SpentConfirmed && out.SpentBy != s.SpentBy {
			return fmt.Errorf("output %s already spent by %s: %w", s.ID, out.SpentBy, ErrInconsistent)
		}
		if _, ok := spenders[s.SpentBy]; !ok && !l.hasOutgoing(s.SpentBy) {
			return fmt.Errorf("spend of %s has no transaction record: %w", s.ID, ErrInconsistent)
		}
	}
	return nil
}

func (l *Ledger) hasOutgoing(hash chainhash.Hash) bool {
	for k, rec := range l.records {
		if k.Hash == hash && rec.Direction == model.Outgoing {
			return true
		}
	}
	return false
}

// ApplyRollback removes everything recorded at or above height. Spends that
// confirmed at or above height are undone and their outputs return to the
// unspent set, including inputs of locally relayed transactions.
func (l *Ledger) ApplyRollback(height uint64) model.LedgerChanges {
	l.mu.Lock()
	defer l.mu.Unlock()

	cs := newChangeSet()
	for k, rec := range l.records {
		if rec.Pending || rec.Height < height {
			continue
		}
		delete(l.records, k)
		cs.removeRecord(k)
	}

	removed := make(map[model.OutputID]struct{})
	for id, out := range l.outputs {
		if out.Height >= height {
			delete(l.outputs, id)
			delete(l.byKeyImage, out.KeyImage)
			removed[id] = struct{}{}
			cs.removeOutput(id)
			continue
		}
		if out.State == model.SpentConfirmed && out.SpentHeight >= height {
			out.State = model.Unspent
			out.SpentBy = chainhash.Hash{}
			out.SpentHeight = 0
			l.outputs[id] = out
			cs.touchOutput(id)
		}
	}

	for _, rec := range l.records {
		if !rec.Pending {
			continue
		}
		for _, in := range rec.Inputs {
			if _, ok := removed[in]; ok {
				l.dropPending(rec.Hash, cs)
				break
			}
		}
	}
	return cs.resolve(l)
}

// dropPending deletes the pending records of hash and releases the outputs
// they hold.
func (l *Ledger) dropPending(hash chainhash.Hash, cs *changeSet) {
	for k, rec := range l.records {
		if k.Hash == hash && rec.Pending {
			delete(l.records, k)
			cs.removeRecord(k)
		}
	}
	for id, out := range l.outputs {
		if out.State == model.SpentPending && out.SpentBy == hash {
			out.State = model.Unspent
			out.SpentBy = chainhash.Hash{}
			l.outputs[id] = out
			cs.touchOutput(id)
		}
	}
}
