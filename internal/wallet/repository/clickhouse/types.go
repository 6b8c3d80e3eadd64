package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Conn interface {
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Exec(ctx context.Context, query string, args ...any) error
		Close() error
	}
	// Batch and Rows restate the driver interfaces so they can be mocked.
	Batch interface {
		driver.Batch
	}
	Rows interface {
		driver.Rows
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
