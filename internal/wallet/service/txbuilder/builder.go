// Package txbuilder selects outputs, builds and signs transactions, and
// relays them through the daemon.
package txbuilder

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"go.uber.org/zap"
)

// Result is a built transaction.
type Result struct {
	Record model.TxRecord
	Tx     model.Transaction
	Raw    []byte
}

// Builder creates transactions. Calls are serialized.
type Builder struct {
	logger  *zap.Logger
	ledger  Ledger
	keys    Keys
	daemon  Daemon
	sizer   Sizer
	height  ChainHeight
	journal Journal
	metrics Metrics
	now     func() time.Time

	mu sync.Mutex
}

// New wires a Builder. journal may be nil.
func New(
	ledger Ledger,
	keys Keys,
	daemon Daemon,
	sizer Sizer,
	height ChainHeight,
	journal Journal,
	metrics Metrics,
	logger *zap.Logger,
) (*Builder, error) {
	if metrics == nil {
		return nil, errors.New("tx builder metrics is required")
	}
	if journal == nil {
		journal = nopJournal{}
	}
	return &Builder{
		logger:  logger.Named("txbuilder"),
		ledger:  ledger,
		keys:    keys,
		daemon:  daemon,
		sizer:   sizer,
		height:  height,
		journal: journal,
		metrics: metrics,
		now:     time.Now,
	}, nil
}

type plan struct {
	payments []model.Payment
	total    uint64
	inputs   []model.Output
	fee      uint64
	change   uint64
}

// CreateTx pays destinations from account. With relay set the selected
// outputs are reserved, the transaction is submitted and the reservation is
// released again if the daemon refuses it or cannot be reached.
func (b *Builder) CreateTx(ctx context.Context, account uint32, destinations []model.Destination, relay bool) (res Result, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	started := time.Now()
	defer func() {
		b.metrics.ObserveCreateTx(err, relay, len(res.Record.Inputs), started)
	}()

	p, err := b.validate(destinations)
	if err != nil {
		return Result{}, err
	}
	if err := b.selectInputs(ctx, account, &p); err != nil {
		return Result{}, err
	}

	tx, raw, err := b.build(account, p)
	if err != nil {
		return Result{}, err
	}

	ids := make([]model.OutputID, 0, len(p.inputs))
	for _, in := range p.inputs {
		ids = append(ids, in.ID)
	}
	rec := model.TxRecord{
		Hash:         tx.Hash,
		Direction:    model.Outgoing,
		Account:      account,
		Amount:       p.total,
		Fee:          p.fee,
		Pending:      true,
		Inputs:       ids,
		Destinations: append([]model.Destination(nil), destinations...),
		Relayed:      relay,
		Timestamp:    b.now().UTC(),
	}
	res = Result{Record: rec, Tx: tx, Raw: raw}
	if !relay {
		return res, nil
	}

	if err := b.relay(ctx, rec, raw); err != nil {
		return Result{}, err
	}
	b.logger.Info("transaction relayed",
		zap.Stringer("hash", tx.Hash),
		zap.Uint32("account", account),
		zap.Uint64("amount", p.total),
		zap.Uint64("fee", p.fee),
		zap.Int("inputs", len(ids)),
	)
	return res, nil
}

func (b *Builder) validate(destinations []model.Destination) (plan, error) {
	if len(destinations) == 0 {
		return plan{}, fmt.Errorf("no destinations: %w", model.ErrInvalidDestination)
	}
	var p plan
	for i, d := range destinations {
		if d.Amount == 0 {
			return plan{}, fmt.Errorf("destination %d has zero amount: %w", i, model.ErrInvalidDestination)
		}
		addr, err := b.keys.DecodeAddress(d.Address)
		if err != nil {
			return plan{}, fmt.Errorf("destination %d: %w", i, err)
		}
		if p.total > math.MaxUint64-d.Amount {
			return plan{}, fmt.Errorf("destination amounts overflow: %w", model.ErrInvalidDestination)
		}
		p.total += d.Amount
		p.payments = append(p.payments, model.Payment{Address: addr, Amount: d.Amount})
	}
	return p, nil
}

// selectInputs picks inputs until they cover the amount plus the fee for a
// transaction of that many inputs.
func (b *Builder) selectInputs(ctx context.Context, account uint32, p *plan) error {
	feePerByte, err := b.daemon.FeePerByte(ctx)
	if err != nil {
		return fmt.Errorf("fee estimate: %w", err)
	}

	additional := 0
	change := b.keys.Address(model.SubaddressIndex{Account: account})
	outputs := len(p.payments) + 1
	for _, pay := range p.payments {
		if pay.Address.Subaddress || change.Subaddress {
			additional = outputs
			break
		}
	}
	feeFor := func(inputs int) (uint64, error) {
		size := uint64(b.sizer.EstimateTxSize(inputs, outputs, additional))
		if size > 0 && feePerByte > math.MaxUint64/size {
			return 0, fmt.Errorf("fee of %d per byte for %d bytes overflows: %w", feePerByte, size, model.ErrInsufficientFunds)
		}
		return feePerByte * size, nil
	}

	height := b.height.Height()
	fee, err := feeFor(1)
	if err != nil {
		return err
	}
	for round := 0; round < maxFeeRounds; round++ {
		if p.total > math.MaxUint64-fee {
			return fmt.Errorf("amount plus fee overflows: %w", model.ErrInsufficientFunds)
		}
		inputs, err := b.ledger.SelectOutputsForSpend(account, p.total+fee, height)
		if err != nil {
			return err
		}
		need, err := feeFor(len(inputs))
		if err != nil {
			return err
		}
		if p.total > math.MaxUint64-need {
			return fmt.Errorf("amount plus fee overflows: %w", model.ErrInsufficientFunds)
		}
		var sum uint64
		for _, in := range inputs {
			sum += in.Amount
		}
		if sum >= p.total+need {
			p.inputs = inputs
			p.fee = need
			p.change = sum - p.total - need
			return nil
		}
		fee = need
	}
	return fmt.Errorf("fee did not settle after %d rounds: %w", maxFeeRounds, model.ErrInsufficientFunds)
}

func (b *Builder) build(account uint32, p plan) (model.Transaction, []byte, error) {
	payments := p.payments
	if p.change > 0 {
		payments = append(payments[:len(payments):len(payments)], model.Payment{
			Address: b.keys.Address(model.SubaddressIndex{Account: account}),
			Amount:  p.change,
		})
	}
	tx, err := b.keys.ConstructOutputs(payments)
	if err != nil {
		return model.Transaction{}, nil, fmt.Errorf("construct outputs: %w", err)
	}
	tx.Version = txVersion
	tx.Fee = p.fee
	tx.Inputs = make([]model.TxInput, 0, len(p.inputs))
	for _, in := range p.inputs {
		tx.Inputs = append(tx.Inputs, model.TxInput{Amount: in.Amount, KeyImage: in.KeyImage})
	}

	raw, err := b.keys.SignTransaction(&tx, p.inputs)
	if err != nil {
		return model.Transaction{}, nil, fmt.Errorf("sign transaction: %w", err)
	}
	return tx, raw, nil
}

func (b *Builder) relay(ctx context.Context, rec model.TxRecord, raw []byte) error {
	changes, err := b.ledger.ReservePending(rec, rec.Inputs)
	if err != nil {
		return fmt.Errorf("reserve inputs: %w", err)
	}
	b.journal.RecordChanges(ctx, changes)

	verdict, err := b.daemon.SubmitTransaction(ctx, raw)
	switch {
	case err != nil:
		b.release(ctx, rec)
		return fmt.Errorf("submit %s: %w", rec.Hash, err)
	case !verdict.Accepted:
		b.release(ctx, rec)
		b.logger.Warn("transaction rejected", zap.Stringer("hash", rec.Hash), zap.String("reason", verdict.Reason))
		return &model.RelayRejectedError{Reason: verdict.Reason}
	}
	return nil
}

func (b *Builder) release(ctx context.Context, rec model.TxRecord) {
	changes, err := b.ledger.ReleasePending(rec.Hash)
	if err != nil {
		b.logger.Error("release reserved inputs", zap.Stringer("hash", rec.Hash), zap.Error(err))
		return
	}
	b.journal.RecordChanges(context.WithoutCancel(ctx), changes)
}

type nopJournal struct{}

func (nopJournal) RecordChanges(context.Context, model.LedgerChanges) {}
