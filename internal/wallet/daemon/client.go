// Package daemon talks to a wallet daemon over JSON-RPC.
package daemon

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/safe"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config tunes a Client.
type Config struct {
	// CallTimeout bounds each RPC call.
	CallTimeout time.Duration
	// RPS caps outgoing requests per second.
	RPS int
	// BreakerTrips is the number of consecutive transport failures that open the circuit.
	BreakerTrips uint32
	// BreakerTimeout is how long the circuit stays open.
	BreakerTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.CallTimeout <= 0 {
		c.CallTimeout = defaultCallTimeout
	}
	if c.RPS <= 0 {
		c.RPS = defaultRPS
	}
	if c.BreakerTrips == 0 {
		c.BreakerTrips = defaultBreakerTrips
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = defaultBreakerTimeout
	}
	return c
}

// SubmitResult is the daemon's verdict on a relayed transaction.
type SubmitResult struct {
	Accepted bool
	Reason   string
}

// Client is the wallet's daemon connection. Transport failures, timeouts and
// an open circuit surface as model.ErrConnection.
type Client struct {
	rpc     RawRequester
	decoder BlockDecoder
	limiter ratelimit.Limiter
	breaker *gobreaker.CircuitBreaker
	cfg     Config
	logger  *zap.Logger
}

// New wraps rpc. Blocks are decoded with decoder.
func New(rpc RawRequester, decoder BlockDecoder, cfg Config, logger *zap.Logger) *Client {
	cfg = cfg.withDefaults()
	logger = logger.Named("daemon")
	trips := cfg.BreakerTrips
	return &Client{
		rpc:     rpc,
		decoder: decoder,
		limiter: ratelimit.New(cfg.RPS),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "daemon",
			MaxRequests: 1,
			Timeout:     cfg.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= trips
			},
			IsSuccessful: countsAsSuccess,
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					zap.String("breaker", name),
					zap.Stringer("from", from),
					zap.Stringer("to", to),
				)
			},
		}),
		cfg:    cfg,
		logger: logger,
	}
}

// countsAsSuccess keeps daemon-side errors and caller cancellation from
// tripping the breaker.
func countsAsSuccess(err error) bool {
	var rpcErr *btcjson.RPCError
	return err == nil || errors.As(err, &rpcErr) || errors.Is(err, context.Canceled)
}

func (c *Client) call(ctx context.Context, method string, result any, params ...any) error {
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("%s: marshal params: %w", method, err)
		}
		raw = append(raw, b)
	}

	c.limiter.Take()
	res, err := c.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
		defer cancel()
		return c.rpc.RawRequest(callCtx, method, raw)
	})
	if err != nil {
		var rpcErr *btcjson.RPCError
		if errors.As(err, &rpcErr) {
			return fmt.Errorf("%s: %w", method, err)
		}
		return fmt.Errorf("%s: %w: %w", method, model.ErrConnection, err)
	}

	msg, _ := res.(json.RawMessage)
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(msg, result); err != nil {
		return fmt.Errorf("%s: unmarshal result: %w: %w", method, model.ErrDecode, err)
	}
	return nil
}

// Height returns the number of blocks in the daemon's chain.
func (c *Client) Height(ctx context.Context) (uint64, error) {
	var res struct {
		Height int64 `json:"height"`
	}
	if err := c.call(ctx, methodGetHeight, &res); err != nil {
		return 0, err
	}
	h, err := safe.Uint64(res.Height)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", methodGetHeight, model.ErrDecode, err)
	}
	return h, nil
}

// BlocksByRange fetches up to count consecutive blocks starting at start.
// The daemon may return fewer blocks near its tip.
func (c *Client) BlocksByRange(ctx context.Context, start uint64, count int) ([]model.Block, error) {
	if count <= 0 {
		return nil, nil
	}
	if count > maxBlocksPerRequest {
		count = maxBlocksPerRequest
	}
	from, err := safe.Int64(start)
	if err != nil {
		return nil, fmt.Errorf("%s: start height: %w", methodGetBlocks, err)
	}

	var res struct {
		Blocks []string `json:"blocks"`
	}
	if err := c.call(ctx, methodGetBlocks, &res, from, count); err != nil {
		return nil, err
	}
	if len(res.Blocks) > count {
		return nil, fmt.Errorf("%s: asked for %d blocks, got %d: %w", methodGetBlocks, count, len(res.Blocks), model.ErrDecode)
	}

	blocks := make([]model.Block, 0, len(res.Blocks))
	for i, blob := range res.Blocks {
		raw, err := hex.DecodeString(blob)
		if err != nil {
			return nil, fmt.Errorf("%s: block %d hex: %w: %w", methodGetBlocks, i, model.ErrDecode, err)
		}
		block, err := c.decoder.DecodeBlock(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: block %d: %w", methodGetBlocks, i, err)
		}
		if want := start + uint64(i); block.Height != want {
			return nil, fmt.Errorf("%s: block at position %d has height %d, want %d: %w",
				methodGetBlocks, i, block.Height, want, model.ErrDecode)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// BlockHash returns the hash of the daemon's block at height.
func (c *Client) BlockHash(ctx context.Context, height uint64) (chainhash.Hash, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%s: %w", methodGetBlockHash, err)
	}
	var res string
	if err := c.call(ctx, methodGetBlockHash, &res, h); err != nil {
		return chainhash.Hash{}, err
	}
	hash, err := chainhash.NewHashFromStr(res)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%s: %w: %w", methodGetBlockHash, model.ErrDecode, err)
	}
	return *hash, nil
}

// SubmitTransaction relays a signed transaction. A refusal by the daemon is
// reported in the result, not as an error.
func (c *Client) SubmitTransaction(ctx context.Context, tx []byte) (SubmitResult, error) {
	var res struct {
		Accepted bool   `json:"accepted"`
		Reason   string `json:"reason"`
	}
	err := c.call(ctx, methodSendRawTx, &res, hex.EncodeToString(tx))
	var rpcErr *btcjson.RPCError
	switch {
	case errors.As(err, &rpcErr):
		return SubmitResult{Reason: rpcErr.Message}, nil
	case err != nil:
		return SubmitResult{}, err
	}
	return SubmitResult{Accepted: res.Accepted, Reason: res.Reason}, nil
}

// FeePerByte returns the daemon's fee estimate in atomic units per byte.
func (c *Client) FeePerByte(ctx context.Context) (uint64, error) {
	var res struct {
		FeePerByte uint64 `json:"fee_per_byte"`
	}
	if err := c.call(ctx, methodGetFeeEstimate, &res); err != nil {
		return 0, err
	}
	return res.FeePerByte, nil
}
