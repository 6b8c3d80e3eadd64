package ledger

import (
	"bytes"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// changeSet collects the ids touched by one mutation. It is resolved against
// the ledger while the write lock is still held.
type changeSet struct {
	outputs        map[model.OutputID]struct{}
	removedOutputs map[model.OutputID]struct{}
	records        map[model.RecordKey]struct{}
	removedRecords map[model.RecordKey]struct{}
}

func newChangeSet() *changeSet {
	return &changeSet{
		outputs:        make(map[model.OutputID]struct{}),
		removedOutputs: make(map[model.OutputID]struct{}),
		records:        make(map[model.RecordKey]struct{}),
		removedRecords: make(map[model.RecordKey]struct{}),
	}
}

func (c *changeSet) touchOutput(id model.OutputID) {
	delete(c.removedOutputs, id)
	c.outputs[id] = struct{}{}
}

func (c *changeSet) removeOutput(id model.OutputID) {
	delete(c.outputs, id)
	c.removedOutputs[id] = struct{}{}
}

func (c *changeSet) touchRecord(k model.RecordKey) {
	delete(c.removedRecords, k)
	c.records[k] = struct{}{}
}

func (c *changeSet) removeRecord(k model.RecordKey) {
	delete(c.records, k)
	c.removedRecords[k] = struct{}{}
}

func (c *changeSet) resolve(l *Ledger) model.LedgerChanges {
	var res model.LedgerChanges
	for id := range c.outputs {
		res.Outputs = append(res.Outputs, l.outputs[id])
	}
	for id := range c.removedOutputs {
		res.RemovedOutputs = append(res.RemovedOutputs, id)
	}
	for k := range c.records {
		res.Records = append(res.Records, l.records[k].Clone())
	}
	for k := range c.removedRecords {
		res.RemovedRecords = append(res.RemovedRecords, k)
	}

	sort.Slice(res.Outputs, func(i, j int) bool { return res.Outputs[i].ID.Less(res.Outputs[j].ID) })
	sort.Slice(res.RemovedOutputs, func(i, j int) bool { return res.RemovedOutputs[i].Less(res.RemovedOutputs[j]) })
	sort.Slice(res.Records, func(i, j int) bool { return recordKeyLess(res.Records[i].Key(), res.Records[j].Key()) })
	sort.Slice(res.RemovedRecords, func(i, j int) bool { return recordKeyLess(res.RemovedRecords[i], res.RemovedRecords[j]) })
	return res
}

func recordKeyLess(a, b model.RecordKey) bool {
	if c := bytes.Compare(a.Hash[:], b.Hash[:]); c != 0 {
		return c < 0
	}
	return a.Account < b.Account
}
