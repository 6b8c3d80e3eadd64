package daemon

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RawRequester performs one JSON-RPC call.
	RawRequester interface {
		RawRequest(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error)
	}
	// BlockDecoder turns a block blob into a block.
	BlockDecoder interface {
		DecodeBlock(b []byte) (model.Block, error)
	}
)
