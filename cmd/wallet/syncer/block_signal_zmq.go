//go:build zmq

package main

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const (
	hashBlockTopic = "hashblock"
	zmqRecvTimeout = time.Second
)

// startBlockSignal fires whenever the daemon announces a new block. Bursts
// collapse into a single pending signal.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sub, err := newSubscriber(addr, hashBlockTopic)
	if err != nil {
		return nil, fmt.Errorf("connect zmq %s: %w", addr, err)
	}
	logger = logger.Named("zmq").With(zap.String("addr", addr))

	signal := make(chan struct{}, 1)
	go func() {
		defer func() {
			if err := sub.Close(); err != nil {
				logger.Warn("close zmq socket", zap.Error(err))
			}
		}()
		for ctx.Err() == nil {
			parts, err := sub.RecvMessageBytes(0)
			if err != nil {
				if zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN) {
					continue
				}
				logger.Warn("zmq receive failed", zap.Error(err))
				time.Sleep(zmqRecvTimeout)
				continue
			}
			if len(parts) < 2 || string(parts[0]) != hashBlockTopic {
				logger.Debug("skip zmq message", zap.Int("parts", len(parts)))
				continue
			}

			select {
			case signal <- struct{}{}:
			default:
			}
		}
	}()

	logger.Info("subscribed to block announcements")
	return signal, nil
}

func newSubscriber(addr string, topics ...string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}
	if err := sub.SetRcvtimeo(zmqRecvTimeout); err != nil {
		sub.Close()
		return nil, err
	}
	for _, topic := range topics {
		if err := sub.SetSubscribe(topic); err != nil {
			sub.Close()
			return nil, err
		}
	}
	if err := sub.Connect(addr); err != nil {
		sub.Close()
		return nil, err
	}
	return sub, nil
}
