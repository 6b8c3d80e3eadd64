package model

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// PublicKeySize is the length of a compressed curve point.
	PublicKeySize = 33
	// SignatureSize is the length of a serialized Schnorr signature.
	SignatureSize = 64
)

type (
	// PublicKey is a compressed secp256k1 point.
	PublicKey [PublicKeySize]byte
	// KeyImage is the compressed point that links an output to the transaction spending it.
	KeyImage [PublicKeySize]byte
	// Signature is a serialized Schnorr signature.
	Signature [SignatureSize]byte
)

func (k PublicKey) String() string { return hex.EncodeToString(k[:]) }
func (k KeyImage) String() string  { return hex.EncodeToString(k[:]) }

// IsZero reports whether the key is unset.
func (k PublicKey) IsZero() bool { return k == PublicKey{} }

// BlockRef pins a block hash to its height.
type BlockRef struct {
	Height uint64
	Hash   chainhash.Hash
}

// TxInput spends a previous output identified by its key image.
type TxInput struct {
	Amount   uint64
	KeyImage KeyImage
}

// TxOutput pays an amount to a one-time key.
type TxOutput struct {
	Amount  uint64
	Key     PublicKey
	ViewTag byte
}

// Transaction is a decoded chain transaction.
type Transaction struct {
	Hash           chainhash.Hash
	Version        uint64
	UnlockTime     uint64
	Inputs         []TxInput
	Outputs        []TxOutput
	PublicKey      PublicKey
	AdditionalKeys []PublicKey
	Fee            uint64
	Signatures     []Signature
}

// Block is a decoded chain block.
type Block struct {
	Version   uint8
	Height    uint64
	Hash      chainhash.Hash
	PrevHash  chainhash.Hash
	Timestamp time.Time
	Txs       []Transaction
}

// Ref returns the block's height and hash.
func (b Block) Ref() BlockRef {
	return BlockRef{Height: b.Height, Hash: b.Hash}
}
