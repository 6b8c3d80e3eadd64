package journal

import (
	"bytes"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// write is a batch of entries collapsed to the last state of every key.
type write struct {
	outputs        []model.Output
	removedOutputs []model.OutputID
	records        []model.TxRecord
	removedRecords []model.RecordKey
	blocks         []model.BlockRef
	rolledBack     bool
	rollbackFrom   uint64
}

func merge(entries []entry) write {
	var (
		w       write
		outputs = make(map[model.OutputID]*model.Output)
		records = make(map[model.RecordKey]*model.TxRecord)
		blocks  = make(map[uint64]model.BlockRef)
	)
	for _, e := range entries {
		if e.rollback != nil {
			h := *e.rollback
			for height := range blocks {
				if height >= h {
					delete(blocks, height)
				}
			}
			if !w.rolledBack || h < w.rollbackFrom {
				w.rollbackFrom = h
			}
			w.rolledBack = true
		}
		for i := range e.changes.Outputs {
			out := e.changes.Outputs[i]
			outputs[out.ID] = &out
		}
		for _, id := range e.changes.RemovedOutputs {
			outputs[id] = nil
		}
		for i := range e.changes.Records {
			rec := e.changes.Records[i].Clone()
			records[rec.Key()] = &rec
		}
		for _, k := range e.changes.RemovedRecords {
			records[k] = nil
		}
		if e.block != nil {
			blocks[e.block.Height] = *e.block
		}
	}

	for id, out := range outputs {
		if out == nil {
			w.removedOutputs = append(w.removedOutputs, id)
		} else {
			w.outputs = append(w.outputs, *out)
		}
	}
	for k, rec := range records {
		if rec == nil {
			w.removedRecords = append(w.removedRecords, k)
		} else {
			w.records = append(w.records, *rec)
		}
	}
	for _, ref := range blocks {
		w.blocks = append(w.blocks, ref)
	}

	sort.Slice(w.outputs, func(i, j int) bool { return w.outputs[i].ID.Less(w.outputs[j].ID) })
	sort.Slice(w.removedOutputs, func(i, j int) bool { return w.removedOutputs[i].Less(w.removedOutputs[j]) })
	sort.Slice(w.records, func(i, j int) bool { return keyLess(w.records[i].Key(), w.records[j].Key()) })
	sort.Slice(w.removedRecords, func(i, j int) bool { return keyLess(w.removedRecords[i], w.removedRecords[j]) })
	sort.Slice(w.blocks, func(i, j int) bool { return w.blocks[i].Height < w.blocks[j].Height })
	return w
}

func keyLess(a, b model.RecordKey) bool {
	if c := bytes.Compare(a.Hash[:], b.Hash[:]); c != 0 {
		return c < 0
	}
	return a.Account < b.Account
}
