// Package chaintest runs an in-memory daemon that mines blocks in the real
// wire format. It backs end-to-end wallet tests.
package chaintest

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/codec"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/daemon"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/keys"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const (
	// DefaultFeePerByte is the fee estimate served when Config leaves it unset.
	DefaultFeePerByte = 1000

	RejectDoubleSpend = "double spend"
	RejectMalformed   = "malformed transaction"
)

var genesisTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrNotFound is returned for heights past the tip.
var ErrNotFound = errors.New("block not found")

// Config tunes a Daemon.
type Config struct {
	FeePerByte uint64
	// Network is the address version byte of the funding account.
	Network byte
}

// Daemon is a single-node chain. Block 0 is mined on creation.
type Daemon struct {
	fee   uint64
	miner *keys.Account

	mu      sync.Mutex
	blocks  []model.Block
	mempool []model.Transaction
	// spent holds key images consumed on chain or in the mempool.
	spent map[model.KeyImage]struct{}
	mined int
	down  bool
}

// New starts a chain with an empty genesis block.
func New(cfg Config) (*Daemon, error) {
	if cfg.FeePerByte == 0 {
		cfg.FeePerByte = DefaultFeePerByte
	}
	seed := sha256.Sum256([]byte("chaintest funding account"))
	miner, err := keys.NewAccount(keys.Config{
		Network:  cfg.Network,
		SpendKey: seed[:],
		Accounts: 1,
		Minors:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("funding account: %w", err)
	}

	d := &Daemon{
		fee:   cfg.FeePerByte,
		miner: miner,
		spent: make(map[model.KeyImage]struct{}),
	}
	if _, err := d.Mine(); err != nil {
		return nil, fmt.Errorf("mine genesis: %w", err)
	}
	return d, nil
}

// SetDown makes every daemon call fail with model.ErrConnection while down is set.
func (d *Daemon) SetDown(down bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.down = down
}

func (d *Daemon) checkUp(op string) error {
	if d.down {
		return fmt.Errorf("%s: %w", op, model.ErrConnection)
	}
	return nil
}

// Height returns the number of blocks on chain.
func (d *Daemon) Height(context.Context) (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkUp("height"); err != nil {
		return 0, err
	}
	return uint64(len(d.blocks)), nil
}

// BlocksByRange returns up to count blocks from start, decoded from their wire form.
func (d *Daemon) BlocksByRange(_ context.Context, start uint64, count int) ([]model.Block, error) {
	blobs, err := d.encodedRange(start, count)
	if err != nil {
		return nil, err
	}
	blocks := make([]model.Block, 0, len(blobs))
	for _, blob := range blobs {
		b, err := codec.DecodeBlock(blob)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (d *Daemon) encodedRange(start uint64, count int) ([][]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkUp("blocks by range"); err != nil {
		return nil, err
	}

	var blobs [][]byte
	for h := start; h < uint64(len(d.blocks)) && len(blobs) < count; h++ {
		raw, err := codec.EncodeBlock(d.blocks[h])
		if err != nil {
			return nil, fmt.Errorf("encode block %d: %w", h, err)
		}
		blobs = append(blobs, raw)
	}
	return blobs, nil
}

// BlockHash returns the hash of the block at height.
func (d *Daemon) BlockHash(_ context.Context, height uint64) (chainhash.Hash, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkUp("block hash"); err != nil {
		return chainhash.Hash{}, err
	}
	if height >= uint64(len(d.blocks)) {
		return chainhash.Hash{}, fmt.Errorf("height %d: %w", height, ErrNotFound)
	}
	return d.blocks[height].Hash, nil
}

// FeePerByte returns the configured fee estimate.
func (d *Daemon) FeePerByte(context.Context) (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkUp("fee estimate"); err != nil {
		return 0, err
	}
	return d.fee, nil
}

// SubmitTransaction puts a signed transaction in the mempool unless one of
// its key images was already spent.
func (d *Daemon) SubmitTransaction(_ context.Context, raw []byte) (daemon.SubmitResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkUp("submit"); err != nil {
		return daemon.SubmitResult{}, err
	}

	tx, err := codec.DecodeTransaction(raw)
	if err != nil {
		return daemon.SubmitResult{Reason: RejectMalformed}, nil
	}
	seen := make(map[model.KeyImage]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if _, ok := d.spent[in.KeyImage]; ok {
			return daemon.SubmitResult{Reason: RejectDoubleSpend}, nil
		}
		if _, ok := seen[in.KeyImage]; ok {
			return daemon.SubmitResult{Reason: RejectDoubleSpend}, nil
		}
		seen[in.KeyImage] = struct{}{}
	}
	for ki := range seen {
		d.spent[ki] = struct{}{}
	}
	d.mempool = append(d.mempool, tx)
	return daemon.SubmitResult{Accepted: true}, nil
}

// Pay builds an unmined transaction that pays amounts to addr from the
// funding account. It has no inputs.
func (d *Daemon) Pay(addr model.Address, amounts ...uint64) (model.Transaction, error) {
	payments := make([]model.Payment, 0, len(amounts))
	for _, a := range amounts {
		payments = append(payments, model.Payment{Address: addr, Amount: a})
	}
	tx, err := d.miner.ConstructOutputs(payments)
	if err != nil {
		return model.Transaction{}, err
	}
	tx.Version = 1
	if tx.Hash, err = codec.PrefixHash(tx); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// Mine appends a block holding the mempool followed by txs.
func (d *Daemon) Mine(txs ...model.Transaction) (model.Block, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	block := model.Block{
		Version:   1,
		Height:    uint64(len(d.blocks)),
		Timestamp: genesisTime.Add(time.Duration(d.mined) * time.Minute),
		Txs:       append(append([]model.Transaction(nil), d.mempool...), txs...),
	}
	if n := len(d.blocks); n > 0 {
		block.PrevHash = d.blocks[n-1].Hash
	}
	for i := range block.Txs {
		hash, err := codec.PrefixHash(block.Txs[i])
		if err != nil {
			return model.Block{}, fmt.Errorf("tx %d: %w", i, err)
		}
		block.Txs[i].Hash = hash
	}
	hash, err := codec.BlockHash(block)
	if err != nil {
		return model.Block{}, err
	}
	block.Hash = hash

	for _, tx := range txs {
		for _, in := range tx.Inputs {
			d.spent[in.KeyImage] = struct{}{}
		}
	}
	d.blocks = append(d.blocks, block)
	d.mempool = nil
	d.mined++
	return block, nil
}

// MineEmpty appends n blocks without transactions.
func (d *Daemon) MineEmpty(n int) error {
	for i := 0; i < n; i++ {
		if _, err := d.Mine(); err != nil {
			return err
		}
	}
	return nil
}

// Reorg discards every block at or above height together with the mempool.
// Blocks mined afterwards get new hashes.
func (d *Daemon) Reorg(height uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if height < uint64(len(d.blocks)) {
		d.blocks = d.blocks[:height]
	}
	d.mempool = nil
	d.spent = make(map[model.KeyImage]struct{})
	for _, b := range d.blocks {
		for _, tx := range b.Txs {
			for _, in := range tx.Inputs {
				d.spent[in.KeyImage] = struct{}{}
			}
		}
	}
}

// Mempool returns the hashes of accepted, unmined transactions.
func (d *Daemon) Mempool() []chainhash.Hash {
	d.mu.Lock()
	defer d.mu.Unlock()
	hashes := make([]chainhash.Hash, 0, len(d.mempool))
	for _, tx := range d.mempool {
		hashes = append(hashes, tx.Hash)
	}
	return hashes
}

// Block returns the block at height.
func (d *Daemon) Block(height uint64) (model.Block, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if height >= uint64(len(d.blocks)) {
		return model.Block{}, false
	}
	return d.blocks[height], true
}
