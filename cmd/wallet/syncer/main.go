package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/metrics"
	rpcclient2 "github.com/goodnatureofminers/blockinsight7000-walletsync/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/codec"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/daemon"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/keys"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/scanner"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/journal"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/service/syncer"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/batcher"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	WalletID         string        `long:"wallet-id" env:"WALLET_SYNCER_WALLET_ID" description:"wallet id used in logs and storage" default:"default"`
	SpendKey         string        `long:"spend-key" env:"WALLET_SYNCER_SPEND_KEY" description:"hex private spend key" required:"true"`
	AddressVersion   uint8         `long:"address-version" env:"WALLET_SYNCER_ADDRESS_VERSION" description:"primary address version byte" default:"53"`
	Network          string        `long:"network" env:"WALLET_SYNCER_NETWORK" description:"network name for metrics" default:"mainnet"`
	Accounts         uint32        `long:"accounts" env:"WALLET_SYNCER_ACCOUNTS" description:"accounts to scan for" default:"4"`
	Minors           uint32        `long:"minors" env:"WALLET_SYNCER_MINORS" description:"subaddresses per account to scan for" default:"50"`
	RestoreHeight    uint64        `long:"restore-height" env:"WALLET_SYNCER_RESTORE_HEIGHT" description:"first block height to scan"`
	MaxRollbackDepth uint64        `long:"max-rollback-depth" env:"WALLET_SYNCER_MAX_ROLLBACK_DEPTH" description:"deepest reorg handled" default:"100"`
	RPCURL           string        `long:"rpc-url" env:"WALLET_SYNCER_RPC_URL" description:"daemon RPC URL" default:"http://127.0.0.1:18081"`
	RPCUser          string        `long:"rpc-user" env:"WALLET_SYNCER_RPC_USER" description:"daemon RPC username"`
	RPCPassword      string        `long:"rpc-password" env:"WALLET_SYNCER_RPC_PASSWORD" description:"daemon RPC password"`
	RPCTimeout       time.Duration `long:"rpc-timeout" env:"WALLET_SYNCER_RPC_TIMEOUT" description:"timeout of one RPC call" default:"30s"`
	RPCRPS           int           `long:"rpc-rps" env:"WALLET_SYNCER_RPC_RPS" description:"RPC requests per second" default:"50"`
	ScanWorkers      int           `long:"scan-workers" env:"WALLET_SYNCER_SCAN_WORKERS" description:"goroutines deriving output ownership" default:"8"`
	BatchSize        int           `long:"batch-size" env:"WALLET_SYNCER_BATCH_SIZE" description:"blocks fetched per request" default:"100"`
	PollInterval     time.Duration `long:"poll-interval" env:"WALLET_SYNCER_POLL_INTERVAL" description:"background poll interval" default:"20s"`
	ZMQAddr          string        `long:"zmq-addr" env:"WALLET_SYNCER_ZMQ_ADDR" description:"daemon ZMQ endpoint for block announcements"`
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"WALLET_SYNCER_CLICKHOUSE_DSN" description:"ClickHouse DSN; journaling is off when empty"`
	JournalFlushSize int           `long:"journal-flush-size" env:"WALLET_SYNCER_JOURNAL_FLUSH_SIZE" description:"journal entries per ClickHouse write" default:"100"`
	MetricsAddr      string        `long:"metrics-addr" env:"WALLET_SYNCER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("wallet syncer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runMetricsServer(ctx, cfg.MetricsAddr, logger)
	})

	spendKey, err := hex.DecodeString(cfg.SpendKey)
	if err != nil {
		return fmt.Errorf("decode spend key: %w", err)
	}
	account, err := keys.NewAccount(keys.Config{
		Network:  cfg.AddressVersion,
		SpendKey: spendKey,
		Accounts: cfg.Accounts,
		Minors:   cfg.Minors,
	})
	if err != nil {
		return fmt.Errorf("init keys: %w", err)
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init daemon rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := rpcclient2.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Network))
	conn := daemon.New(rpc, codec.Codec{}, daemon.Config{CallTimeout: cfg.RPCTimeout, RPS: cfg.RPCRPS}, logger)

	var (
		repo *clickhouse.Repository
		j    *journal.Journal
		wj   wallet.Journal
	)
	if cfg.ClickhouseDSN != "" {
		repo, err = clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		j, err = journal.New(cfg.WalletID, repo, metrics.NewWalletJournal(), batcher.Config{FlushSize: cfg.JournalFlushSize}, logger)
		if err != nil {
			return fmt.Errorf("init journal: %w", err)
		}
		j.Start(context.WithoutCancel(ctx))
		defer j.Stop()
		wj = j
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return fmt.Errorf("init block signal: %w", err)
	}

	w, err := wallet.New(wallet.Config{
		ID:               cfg.WalletID,
		RestoreHeight:    cfg.RestoreHeight,
		MaxRollbackDepth: cfg.MaxRollbackDepth,
		Scanner:          scanner.Config{Workers: cfg.ScanWorkers},
		Syncer: syncer.Config{
			BatchSize:    cfg.BatchSize,
			PollInterval: cfg.PollInterval,
		},
	}, account, conn, wj, metrics.NewWallet(cfg.Network), logger, blockSignal)
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}
	defer w.Close()

	if j != nil {
		if err := w.Restore(ctx, j, repo); err != nil {
			return err
		}
	}
	if err := w.Subscribe(newEventLogger(logger)); err != nil {
		return fmt.Errorf("subscribe event logger: %w", err)
	}
	logger.Info("wallet ready",
		zap.String("wallet", w.ID()),
		zap.String("address", w.Address(model.SubaddressIndex{})),
		zap.Uint64("height", w.Height()),
	)

	res, err := w.Sync(ctx)
	if err != nil {
		logger.Error("initial sync failed, continuing in background", zap.Error(err))
	} else {
		logger.Info("initial sync finished",
			zap.Uint64("height", res.EndHeight),
			zap.Uint64("blocks", res.BlocksScanned),
			zap.String("balance", model.FormatAmount(w.Balance(0))),
			zap.String("unlocked", model.FormatAmount(w.UnlockedBalance(0))),
		)
	}

	if err := w.StartSyncing(ctx); err != nil {
		return fmt.Errorf("start syncing: %w", err)
	}
	g.Go(func() error {
		<-ctx.Done()
		if err := w.StopSyncing(); err != nil && !errors.Is(err, model.ErrNotSyncing) {
			return err
		}
		return nil
	})
	return g.Wait()
}

func runMetricsServer(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("starting metrics server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
