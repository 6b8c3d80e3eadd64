package wallet

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/scanner"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/journal"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/syncer"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/txbuilder"
)

type (
	// Daemon is the wallet's view of the daemon connection.
	Daemon interface {
		syncer.Daemon
		txbuilder.Daemon
	}
	// Keys is the wallet's key material.
	Keys interface {
		scanner.KeyDeriver
		txbuilder.Keys
		EncodeAddress(addr model.Address) string
	}
	// Journal persists ledger deltas.
	Journal interface {
		syncer.Journal
		txbuilder.Journal
	}
	// Restorer loads persisted state into the ledger and cursor.
	Restorer interface {
		Restore(ctx context.Context, loader journal.SnapshotLoader, l journal.LedgerRestorer, c journal.CursorRestorer, maxBlocks uint64) error
	}
	Metrics interface {
		syncer.Metrics
		txbuilder.Metrics
	}
)
