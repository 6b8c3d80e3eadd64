package chaintest

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/btcsuite/btcd/btcjson"
)

type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     json.RawMessage   `json:"id"`
}

type rpcResponse struct {
	Result any               `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
	ID     json.RawMessage   `json:"id"`
}

// ServeHTTP answers the daemon's JSON-RPC methods over HTTP POST. While the
// daemon is down every request gets 503.
func (d *Daemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := d.handle(r, req)
	if errors.Is(err, errUnavailable) {
		http.Error(w, "daemon unavailable", http.StatusServiceUnavailable)
		return
	}
	var rpcErr *btcjson.RPCError
	if err != nil && !errors.As(err, &rpcErr) {
		rpcErr = btcjson.NewRPCError(btcjson.ErrRPCMisc, err.Error())
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rpcResponse{Result: result, Error: rpcErr, ID: req.ID})
}

var errUnavailable = errors.New("unavailable")

func (d *Daemon) handle(r *http.Request, req rpcRequest) (any, error) {
	d.mu.Lock()
	down := d.down
	d.mu.Unlock()
	if down {
		return nil, errUnavailable
	}

	ctx := r.Context()
	switch req.Method {
	case "get_height":
		h, err := d.Height(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]uint64{"height": h}, nil

	case "get_blocks_by_height":
		var start uint64
		var count int
		if err := params(req, &start, &count); err != nil {
			return nil, err
		}
		raw, err := d.encodedRange(start, count)
		if err != nil {
			return nil, err
		}
		blobs := make([]string, 0, len(raw))
		for _, b := range raw {
			blobs = append(blobs, hex.EncodeToString(b))
		}
		return map[string][]string{"blocks": blobs}, nil

	case "get_block_hash":
		var height uint64
		if err := params(req, &height); err != nil {
			return nil, err
		}
		hash, err := d.BlockHash(ctx, height)
		if errors.Is(err, ErrNotFound) {
			return nil, btcjson.NewRPCError(btcjson.ErrRPCBlockNotFound, err.Error())
		}
		if err != nil {
			return nil, err
		}
		return hash.String(), nil

	case "send_raw_transaction":
		var blob string
		if err := params(req, &blob); err != nil {
			return nil, err
		}
		raw, err := hex.DecodeString(blob)
		if err != nil {
			return nil, btcjson.NewRPCError(btcjson.ErrRPCDeserialization, err.Error())
		}
		res, err := d.SubmitTransaction(ctx, raw)
		if err != nil {
			return nil, err
		}
		return map[string]any{"accepted": res.Accepted, "reason": res.Reason}, nil

	case "get_fee_estimate":
		fee, err := d.FeePerByte(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]uint64{"fee_per_byte": fee}, nil

	default:
		return nil, btcjson.ErrRPCMethodNotFound
	}
}

func params(req rpcRequest, dst ...any) error {
	if len(req.Params) != len(dst) {
		return btcjson.NewRPCError(btcjson.ErrRPCInvalidParams.Code, "wrong number of params")
	}
	for i, p := range req.Params {
		if err := json.Unmarshal(p, dst[i]); err != nil {
			return btcjson.NewRPCError(btcjson.ErrRPCInvalidParams.Code, err.Error())
		}
	}
	return nil
}
