package rpcclient

import (
	"context"
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient issues raw JSON-RPC requests through btcd's client and
// records every call.
type ObservedClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

type rawReply struct {
	result json.RawMessage
	err    error
}

// RawRequest sends method and waits for the reply or for ctx to end. A
// request abandoned on ctx still completes in the background.
func (r *ObservedClient) RawRequest(ctx context.Context, method string, params []json.RawMessage) (res json.RawMessage, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe(method, err, started)
	}()

	future := r.client.RawRequestAsync(method, params)
	done := make(chan rawReply, 1)
	go func() {
		res, err := future.Receive()
		done <- rawReply{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case reply := <-done:
		return reply.result, reply.err
	}
}

// Shutdown stops the underlying client.
func (r *ObservedClient) Shutdown() {
	r.client.Shutdown()
}
