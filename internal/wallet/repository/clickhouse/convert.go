package clickhouse

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

func parseHash(s string) (chainhash.Hash, error) {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("parse hash %q: %w", s, err)
	}
	return *h, nil
}

func parseKey(s string) ([model.PublicKeySize]byte, error) {
	var k [model.PublicKeySize]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return k, fmt.Errorf("parse key %q: %w", s, err)
	}
	if len(b) != len(k) {
		return k, fmt.Errorf("parse key %q: want %d bytes, got %d", s, len(k), len(b))
	}
	copy(k[:], b)
	return k, nil
}

func formatOutputIDs(ids []model.OutputID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func parseOutputID(s string) (model.OutputID, error) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return model.OutputID{}, fmt.Errorf("parse output id %q: missing index", s)
	}
	h, err := parseHash(s[:i])
	if err != nil {
		return model.OutputID{}, err
	}
	idx, err := strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil {
		return model.OutputID{}, fmt.Errorf("parse output id %q: %w", s, err)
	}
	return model.OutputID{TxHash: h, Index: uint32(idx)}, nil
}
