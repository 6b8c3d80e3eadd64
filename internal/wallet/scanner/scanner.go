// Package scanner finds the wallet's outputs and spends in a block.
package scanner

import (
	"context"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes a Scanner.
type Config struct {
	Workers      int
	SpendableAge uint64
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = defaultWorkerCount
	}
	if c.SpendableAge == 0 {
		c.SpendableAge = DefaultSpendableAge
	}
	return c
}

// Scanner turns blocks into ScanResults. It never touches wallet state.
type Scanner struct {
	deriver KeyDeriver
	cfg     Config
	logger  *zap.Logger
}

// New binds a Scanner to the wallet's key material.
func New(deriver KeyDeriver, cfg Config, logger *zap.Logger) *Scanner {
	return &Scanner{
		deriver: deriver,
		cfg:     cfg.withDefaults(),
		logger:  logger.Named("scanner"),
	}
}

type match struct {
	index uint32
	model.OutputMatch
}

// ScanBlock derives ownership for every output of the block and matches
// inputs against known key images. The result depends only on the block,
// the key material and the key images known beforehand.
func (s *Scanner) ScanBlock(ctx context.Context, block model.Block, known KeyImageIndex) (model.ScanResult, error) {
	if err := validate(block); err != nil {
		return model.ScanResult{}, err
	}

	matches, err := workerpool.Map(ctx, s.cfg.Workers, block.Txs, func(_ context.Context, _ int, tx model.Transaction) ([]match, error) {
		var found []match
		for k := range tx.Outputs {
			m, owned, err := s.deriver.MatchOutput(&tx, k)
			if err != nil {
				return nil, fmt.Errorf("tx %s output %d: %w", tx.Hash, k, err)
			}
			if owned {
				idx, err := safe.Uint32(k)
				if err != nil {
					return nil, err
				}
				found = append(found, match{index: idx, OutputMatch: m})
			}
		}
		return found, nil
	})
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("scan block %d: %w", block.Height, err)
	}

	res := model.ScanResult{Block: block.Ref()}
	inBlock := make(map[model.KeyImage]model.Output)
	for i := range block.Txs {
		tx := &block.Txs[i]

		var spent []model.Output
		for _, in := range tx.Inputs {
			out, ok := inBlock[in.KeyImage]
			if !ok {
				out, ok = known.OwnedOutput(in.KeyImage)
			}
			if !ok {
				continue
			}
			spent = append(spent, out)
			res.Spent = append(res.Spent, model.SpentOutput{ID: out.ID, SpentBy: tx.Hash, Height: block.Height})
		}

		received := make([]model.Output, 0, len(matches[i]))
		for _, m := range matches[i] {
			out := model.Output{
				ID:           model.OutputID{TxHash: tx.Hash, Index: m.index},
				Subaddress:   m.Subaddress,
				Amount:       tx.Outputs[m.index].Amount,
				State:        model.Unspent,
				Height:       block.Height,
				UnlockHeight: s.unlockHeight(block.Height, tx.UnlockTime),
				Key:          tx.Outputs[m.index].Key,
				KeyImage:     m.KeyImage,
				TxPublicKey:  m.TxPublicKey,
			}
			received = append(received, out)
			inBlock[out.KeyImage] = out
		}
		res.NewOutputs = append(res.NewOutputs, received...)

		switch {
		case len(spent) > 0:
			res.OutgoingTxs = append(res.OutgoingTxs, outgoing(block, tx, spent, received))
		case len(received) > 0:
			res.IncomingTxs = append(res.IncomingTxs, incoming(block, tx, received)...)
		}
	}

	if !res.IsEmpty() {
		s.logger.Debug("block touches wallet",
			zap.Uint64("height", block.Height),
			zap.Int("received", len(res.NewOutputs)),
			zap.Int("spent", len(res.Spent)),
		)
	}
	return res, nil
}

func (s *Scanner) unlockHeight(height, unlockTime uint64) uint64 {
	unlock := height + s.cfg.SpendableAge
	if unlockTime < unlockTimeHeightLimit && unlockTime > unlock {
		unlock = unlockTime
	}
	return unlock
}

func outgoing(block model.Block, tx *model.Transaction, spent, change []model.Output) model.TxRecord {
	var in, back uint64
	inputs := make([]model.OutputID, 0, len(spent))
	for _, o := range spent {
		in += o.Amount
		inputs = append(inputs, o.ID)
	}
	for _, o := range change {
		back += o.Amount
	}
	var amount uint64
	if in > back+tx.Fee {
		amount = in - back - tx.Fee
	}
	return model.TxRecord{
		Hash:      tx.Hash,
		Direction: model.Outgoing,
		Account:   spent[0].Subaddress.Account,
		Amount:    amount,
		Fee:       tx.Fee,
		Height:    block.Height,
		Inputs:    inputs,
		Timestamp: block.Timestamp,
	}
}

// incoming yields one record per receiving account, ordered by account.
func incoming(block model.Block, tx *model.Transaction, received []model.Output) []model.TxRecord {
	byAccount := make(map[uint32]uint64)
	for _, o := range received {
		byAccount[o.Subaddress.Account] += o.Amount
	}
	accounts := make([]uint32, 0, len(byAccount))
	for a := range byAccount {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })

	records := make([]model.TxRecord, 0, len(accounts))
	for _, a := range accounts {
		records = append(records, model.TxRecord{
			Hash:      tx.Hash,
			Direction: model.Incoming,
			Account:   a,
			Amount:    byAccount[a],
			Height:    block.Height,
			Timestamp: block.Timestamp,
		})
	}
	return records
}

func validate(block model.Block) error {
	if block.Hash == (chainhash.Hash{}) {
		return fmt.Errorf("block %d has no hash: %w", block.Height, model.ErrDecode)
	}
	seen := make(map[chainhash.Hash]struct{}, len(block.Txs))
	for i := range block.Txs {
		tx := &block.Txs[i]
		if tx.Hash == (chainhash.Hash{}) {
			return fmt.Errorf("block %d tx %d has no hash: %w", block.Height, i, model.ErrDecode)
		}
		if _, dup := seen[tx.Hash]; dup {
			return fmt.Errorf("block %d repeats tx %s: %w", block.Height, tx.Hash, model.ErrDecode)
		}
		seen[tx.Hash] = struct{}{}

		keys := make(map[model.PublicKey]struct{}, len(tx.Outputs))
		for k, out := range tx.Outputs {
			if _, dup := keys[out.Key]; dup {
				return fmt.Errorf("tx %s repeats output key at %d: %w", tx.Hash, k, model.ErrDecode)
			}
			keys[out.Key] = struct{}{}
		}
	}
	return nil
}
