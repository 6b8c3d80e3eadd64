//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startBlockSignal needs the zmq build tag. Without it the wallet polls.
func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("built without zmq support, polling instead", zap.String("zmq_addr", addr))
	}
	return nil, nil
}
