package txbuilder

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/daemon"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		SelectOutputsForSpend(account uint32, amount, height uint64) ([]model.Output, error)
		ReservePending(rec model.TxRecord, ids []model.OutputID) (model.LedgerChanges, error)
		ReleasePending(hash chainhash.Hash) (model.LedgerChanges, error)
	}
	// Keys decodes addresses, derives outputs and signs inputs.
	Keys interface {
		DecodeAddress(s string) (model.Address, error)
		Address(idx model.SubaddressIndex) model.Address
		ConstructOutputs(payments []model.Payment) (model.Transaction, error)
		SignTransaction(tx *model.Transaction, inputs []model.Output) ([]byte, error)
	}
	Daemon interface {
		FeePerByte(ctx context.Context) (uint64, error)
		SubmitTransaction(ctx context.Context, tx []byte) (daemon.SubmitResult, error)
	}
	Sizer interface {
		EstimateTxSize(inputs, outputs, additionalKeys int) int
	}
	ChainHeight interface {
		Height() uint64
	}
	Journal interface {
		RecordChanges(ctx context.Context, changes model.LedgerChanges)
	}
	Metrics interface {
		ObserveCreateTx(err error, relay bool, inputs int, started time.Time)
	}
)
