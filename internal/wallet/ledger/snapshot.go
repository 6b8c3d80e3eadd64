package ledger

import (
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// Snapshot is a deterministic copy of the ledger.
type Snapshot struct {
	Outputs []model.Output
	Records []model.TxRecord
}

// Snapshot returns outputs ordered by id and records ordered by key.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Snapshot{
		Outputs: make([]model.Output, 0, len(l.outputs)),
		Records: make([]model.TxRecord, 0, len(l.records)),
	}
	for _, out := range l.outputs {
		s.Outputs = append(s.Outputs, out)
	}
	for _, rec := range l.records {
		s.Records = append(s.Records, rec.Clone())
	}
	sort.Slice(s.Outputs, func(i, j int) bool { return s.Outputs[i].ID.Less(s.Outputs[j].ID) })
	sort.Slice(s.Records, func(i, j int) bool { return recordKeyLess(s.Records[i].Key(), s.Records[j].Key()) })
	return s
}

// Restore replaces the ledger contents with s.
func (l *Ledger) Restore(s Snapshot) error {
	outputs := make(map[model.OutputID]model.Output, len(s.Outputs))
	byKeyImage := make(map[model.KeyImage]model.OutputID, len(s.Outputs))
	for _, out := range s.Outputs {
		if _, dup := outputs[out.ID]; dup {
			return fmt.Errorf("restore: output %s listed twice: %w", out.ID, ErrInconsistent)
		}
		if id, dup := byKeyImage[out.KeyImage]; dup {
			return fmt.Errorf("restore: outputs %s and %s share a key image: %w", id, out.ID, ErrInconsistent)
		}
		outputs[out.ID] = out
		byKeyImage[out.KeyImage] = out.ID
	}
	records := make(map[model.RecordKey]model.TxRecord, len(s.Records))
	for _, rec := range s.Records {
		if _, dup := records[rec.Key()]; dup {
			return fmt.Errorf("restore: record %s listed twice: %w", rec.Hash, ErrInconsistent)
		}
		records[rec.Key()] = rec.Clone()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputs = outputs
	l.byKeyImage = byKeyImage
	l.records = records
	return nil
}
