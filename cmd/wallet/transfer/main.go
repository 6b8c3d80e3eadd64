package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
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
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	SpendKey       string        `long:"spend-key" env:"WALLET_TRANSFER_SPEND_KEY" description:"hex private spend key" required:"true"`
	AddressVersion uint8         `long:"address-version" env:"WALLET_TRANSFER_ADDRESS_VERSION" description:"primary address version byte" default:"53"`
	Network        string        `long:"network" env:"WALLET_TRANSFER_NETWORK" description:"network name for metrics" default:"mainnet"`
	RestoreHeight  uint64        `long:"restore-height" env:"WALLET_TRANSFER_RESTORE_HEIGHT" description:"first block height to scan"`
	Account        uint32        `long:"account" env:"WALLET_TRANSFER_ACCOUNT" description:"account paying the transfer"`
	Destinations   []string      `long:"destination" description:"address:amount, repeatable" required:"true"`
	Relay          bool          `long:"relay" env:"WALLET_TRANSFER_RELAY" description:"submit the transaction to the daemon"`
	RPCURL         string        `long:"rpc-url" env:"WALLET_TRANSFER_RPC_URL" description:"daemon RPC URL" default:"http://127.0.0.1:18081"`
	RPCUser        string        `long:"rpc-user" env:"WALLET_TRANSFER_RPC_USER" description:"daemon RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"WALLET_TRANSFER_RPC_PASSWORD" description:"daemon RPC password"`
	RPCTimeout     time.Duration `long:"rpc-timeout" env:"WALLET_TRANSFER_RPC_TIMEOUT" description:"timeout of one RPC call" default:"30s"`
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
		logger.Fatal("transfer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	destinations, err := parseDestinations(cfg.Destinations)
	if err != nil {
		return err
	}

	spendKey, err := hex.DecodeString(cfg.SpendKey)
	if err != nil {
		return fmt.Errorf("decode spend key: %w", err)
	}
	account, err := keys.NewAccount(keys.Config{Network: cfg.AddressVersion, SpendKey: spendKey})
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
	conn := daemon.New(rpc, codec.Codec{}, daemon.Config{CallTimeout: cfg.RPCTimeout}, logger)

	w, err := wallet.New(wallet.Config{ID: "transfer", RestoreHeight: cfg.RestoreHeight},
		account, conn, nil, metrics.NewWallet(cfg.Network), logger, nil)
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}
	defer w.Close()

	res, err := w.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	logger.Info("wallet synced",
		zap.Uint64("height", res.EndHeight),
		zap.String("balance", model.FormatAmount(w.Balance(cfg.Account))),
		zap.String("unlocked", model.FormatAmount(w.UnlockedBalance(cfg.Account))),
	)

	tx, err := w.CreateTx(ctx, cfg.Account, destinations, cfg.Relay)
	if err != nil {
		return fmt.Errorf("create tx: %w", err)
	}

	rec := tx.Record
	fmt.Printf("hash:    %s\n", rec.Hash)
	fmt.Printf("amount:  %s\n", model.FormatAmount(rec.Amount))
	fmt.Printf("fee:     %s\n", model.FormatAmount(rec.Fee))
	fmt.Printf("inputs:  %d\n", len(rec.Inputs))
	fmt.Printf("relayed: %t\n", rec.Relayed)
	if !cfg.Relay {
		fmt.Printf("raw:     %s\n", hex.EncodeToString(tx.Raw))
	}
	return nil
}

// parseDestinations reads address:amount pairs with decimal coin amounts.
func parseDestinations(raw []string) ([]model.Destination, error) {
	out := make([]model.Destination, 0, len(raw))
	for _, s := range raw {
		i := strings.LastIndexByte(s, ':')
		if i <= 0 || i == len(s)-1 {
			return nil, fmt.Errorf("destination %q: want address:amount", s)
		}
		amount, err := model.ParseAmount(s[i+1:])
		if err != nil {
			return nil, fmt.Errorf("destination %q: %w", s, err)
		}
		out = append(out, model.Destination{Address: s[:i], Amount: amount})
	}
	return out, nil
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
