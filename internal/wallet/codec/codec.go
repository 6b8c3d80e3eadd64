// Package codec implements the daemon's binary block and transaction format.
//
// Integers are Bitcoin-style varints, keys and key images are 33-byte
// compressed points, hashes are Keccak-256. A transaction hash covers the
// prefix only, so signing never changes the id being signed.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/safe"
	"golang.org/x/crypto/sha3"
)

// varints are protocol-version independent here.
const pver = 0

const (
	MaxTxsPerBlock     = 10_000
	MaxInputsPerTx     = 1_024
	MaxOutputsPerTx    = 1_024
	MaxBlockSize       = 32 << 20
	blockHeaderVersion = 1
)

// Codec satisfies the decoder/encoder interfaces consumers declare.
type Codec struct{}

func (Codec) DecodeBlock(b []byte) (model.Block, error)             { return DecodeBlock(b) }
func (Codec) EncodeBlock(b model.Block) ([]byte, error)             { return EncodeBlock(b) }
func (Codec) DecodeTransaction(b []byte) (model.Transaction, error) { return DecodeTransaction(b) }
func (Codec) EncodeTransaction(tx model.Transaction) ([]byte, error) {
	return EncodeTransaction(tx)
}
func (Codec) PrefixHash(tx model.Transaction) (chainhash.Hash, error) { return PrefixHash(tx) }
func (Codec) EstimateTxSize(inputs, outputs, additionalKeys int) int {
	return EstimateTxSize(inputs, outputs, additionalKeys)
}

// Keccak256 hashes the concatenation of parts.
func Keccak256(parts ...[]byte) chainhash.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var out chainhash.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// DecodeBlock parses a serialized block and computes its hash and the hash of every transaction.
func DecodeBlock(b []byte) (model.Block, error) {
	if len(b) > MaxBlockSize {
		return model.Block{}, decodeErr("block", fmt.Errorf("size %d exceeds %d", len(b), MaxBlockSize))
	}
	r := bytes.NewReader(b)

	var block model.Block
	version, err := r.ReadByte()
	if err != nil {
		return model.Block{}, decodeErr("block version", err)
	}
	if version != blockHeaderVersion {
		return model.Block{}, decodeErr("block version", fmt.Errorf("unsupported version %d", version))
	}
	block.Version = version

	if block.Height, err = wire.ReadVarInt(r, pver); err != nil {
		return model.Block{}, decodeErr("block height", err)
	}
	if _, err = io.ReadFull(r, block.PrevHash[:]); err != nil {
		return model.Block{}, decodeErr("prev hash", err)
	}
	ts, err := wire.ReadVarInt(r, pver)
	if err != nil {
		return model.Block{}, decodeErr("timestamp", err)
	}
	unix, err := safe.Int64(ts)
	if err != nil {
		return model.Block{}, decodeErr("timestamp", err)
	}
	block.Timestamp = time.Unix(unix, 0).UTC()

	count, err := readCount(r, MaxTxsPerBlock)
	if err != nil {
		return model.Block{}, decodeErr("tx count", err)
	}
	header := b[:len(b)-r.Len()]

	block.Txs = make([]model.Transaction, 0, count)
	hashes := make([][]byte, 0, count+1)
	hashes = append(hashes, header)
	for i := 0; i < count; i++ {
		tx, err := readTransaction(r)
		if err != nil {
			return model.Block{}, fmt.Errorf("tx %d: %w", i, err)
		}
		block.Txs = append(block.Txs, tx)
		hashes = append(hashes, tx.Hash[:])
	}
	if r.Len() != 0 {
		return model.Block{}, decodeErr("block", fmt.Errorf("%d trailing bytes", r.Len()))
	}

	block.Hash = Keccak256(hashes...)
	return block, nil
}

// EncodeBlock serializes b. Transaction and block hashes in b are ignored.
func EncodeBlock(b model.Block) ([]byte, error) {
	if len(b.Txs) > MaxTxsPerBlock {
		return nil, fmt.Errorf("block has %d transactions, limit %d", len(b.Txs), MaxTxsPerBlock)
	}
	unix := b.Timestamp.Unix()
	if unix < 0 {
		return nil, fmt.Errorf("block timestamp %s before epoch", b.Timestamp)
	}

	var buf bytes.Buffer
	buf.WriteByte(blockHeaderVersion)
	if err := wire.WriteVarInt(&buf, pver, b.Height); err != nil {
		return nil, err
	}
	buf.Write(b.PrevHash[:])
	if err := wire.WriteVarInt(&buf, pver, uint64(unix)); err != nil {
		return nil, err
	}
	if err := wire.WriteVarInt(&buf, pver, uint64(len(b.Txs))); err != nil {
		return nil, err
	}
	for i, tx := range b.Txs {
		if err := writeTransaction(&buf, tx, true); err != nil {
			return nil, fmt.Errorf("encode tx %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

// BlockHash computes the hash DecodeBlock would assign to b.
func BlockHash(b model.Block) (chainhash.Hash, error) {
	raw, err := EncodeBlock(b)
	if err != nil {
		return chainhash.Hash{}, err
	}
	decoded, err := DecodeBlock(raw)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return decoded.Hash, nil
}

// DecodeTransaction parses one signed transaction.
func DecodeTransaction(b []byte) (model.Transaction, error) {
	r := bytes.NewReader(b)
	tx, err := readTransaction(r)
	if err != nil {
		return model.Transaction{}, err
	}
	if r.Len() != 0 {
		return model.Transaction{}, decodeErr("transaction", fmt.Errorf("%d trailing bytes", r.Len()))
	}
	return tx, nil
}

// EncodeTransaction serializes a signed transaction.
func EncodeTransaction(tx model.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTransaction(&buf, tx, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PrefixHash is the transaction hash: Keccak-256 over everything but the signatures.
func PrefixHash(tx model.Transaction) (chainhash.Hash, error) {
	var buf bytes.Buffer
	if err := writeTransaction(&buf, tx, false); err != nil {
		return chainhash.Hash{}, err
	}
	return Keccak256(buf.Bytes()), nil
}

// EstimateTxSize returns the serialized size of a transaction with the given
// shape, assuming worst-case varints for amounts.
func EstimateTxSize(inputs, outputs, additionalKeys int) int {
	const (
		amount = 9
		fixed  = 9 + 9 + 3 + 3 + model.PublicKeySize + 3 + 9 + 3
		input  = amount + model.PublicKeySize + model.SignatureSize
		output = amount + model.PublicKeySize + 1
	)
	return fixed + inputs*input + outputs*output + additionalKeys*model.PublicKeySize
}

func readTransaction(r *bytes.Reader) (model.Transaction, error) {
	start := r.Size() - int64(r.Len())
	var tx model.Transaction
	var err error

	if tx.Version, err = wire.ReadVarInt(r, pver); err != nil {
		return tx, decodeErr("tx version", err)
	}
	if tx.UnlockTime, err = wire.ReadVarInt(r, pver); err != nil {
		return tx, decodeErr("unlock time", err)
	}

	inputs, err := readCount(r, MaxInputsPerTx)
	if err != nil {
		return tx, decodeErr("input count", err)
	}
	tx.Inputs = make([]model.TxInput, inputs)
	for i := range tx.Inputs {
		if tx.Inputs[i].Amount, err = wire.ReadVarInt(r, pver); err != nil {
			return tx, decodeErr("input amount", err)
		}
		if _, err = io.ReadFull(r, tx.Inputs[i].KeyImage[:]); err != nil {
			return tx, decodeErr("key image", err)
		}
	}

	outputs, err := readCount(r, MaxOutputsPerTx)
	if err != nil {
		return tx, decodeErr("output count", err)
	}
	tx.Outputs = make([]model.TxOutput, outputs)
	for i := range tx.Outputs {
		if tx.Outputs[i].Amount, err = wire.ReadVarInt(r, pver); err != nil {
			return tx, decodeErr("output amount", err)
		}
		if _, err = io.ReadFull(r, tx.Outputs[i].Key[:]); err != nil {
			return tx, decodeErr("output key", err)
		}
		if tx.Outputs[i].ViewTag, err = r.ReadByte(); err != nil {
			return tx, decodeErr("view tag", err)
		}
	}

	if _, err = io.ReadFull(r, tx.PublicKey[:]); err != nil {
		return tx, decodeErr("tx public key", err)
	}
	additional, err := readCount(r, MaxOutputsPerTx)
	if err != nil {
		return tx, decodeErr("additional key count", err)
	}
	if additional != 0 && additional != outputs {
		return tx, decodeErr("additional keys", fmt.Errorf("%d keys for %d outputs", additional, outputs))
	}
	if additional > 0 {
		tx.AdditionalKeys = make([]model.PublicKey, additional)
		for i := range tx.AdditionalKeys {
			if _, err = io.ReadFull(r, tx.AdditionalKeys[i][:]); err != nil {
				return tx, decodeErr("additional key", err)
			}
		}
	}
	if tx.Fee, err = wire.ReadVarInt(r, pver); err != nil {
		return tx, decodeErr("fee", err)
	}
	prefixEnd := r.Size() - int64(r.Len())

	sigs, err := readCount(r, MaxInputsPerTx)
	if err != nil {
		return tx, decodeErr("signature count", err)
	}
	if sigs != inputs {
		return tx, decodeErr("signatures", fmt.Errorf("%d signatures for %d inputs", sigs, inputs))
	}
	tx.Signatures = make([]model.Signature, sigs)
	for i := range tx.Signatures {
		if _, err = io.ReadFull(r, tx.Signatures[i][:]); err != nil {
			return tx, decodeErr("signature", err)
		}
	}

	prefix := make([]byte, prefixEnd-start)
	if _, err = r.ReadAt(prefix, start); err != nil {
		return tx, decodeErr("tx prefix", err)
	}
	tx.Hash = Keccak256(prefix)
	return tx, nil
}

func writeTransaction(w *bytes.Buffer, tx model.Transaction, withSignatures bool) error {
	if len(tx.Inputs) > MaxInputsPerTx || len(tx.Outputs) > MaxOutputsPerTx {
		return fmt.Errorf("transaction shape %d/%d exceeds limits", len(tx.Inputs), len(tx.Outputs))
	}
	if len(tx.AdditionalKeys) != 0 && len(tx.AdditionalKeys) != len(tx.Outputs) {
		return fmt.Errorf("%d additional keys for %d outputs", len(tx.AdditionalKeys), len(tx.Outputs))
	}
	if withSignatures && len(tx.Signatures) != len(tx.Inputs) {
		return fmt.Errorf("%d signatures for %d inputs", len(tx.Signatures), len(tx.Inputs))
	}

	ints := func(vals ...uint64) error {
		for _, v := range vals {
			if err := wire.WriteVarInt(w, pver, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := ints(tx.Version, tx.UnlockTime, uint64(len(tx.Inputs))); err != nil {
		return err
	}
	for _, in := range tx.Inputs {
		if err := ints(in.Amount); err != nil {
			return err
		}
		w.Write(in.KeyImage[:])
	}
	if err := ints(uint64(len(tx.Outputs))); err != nil {
		return err
	}
	for _, out := range tx.Outputs {
		if err := ints(out.Amount); err != nil {
			return err
		}
		w.Write(out.Key[:])
		w.WriteByte(out.ViewTag)
	}
	w.Write(tx.PublicKey[:])
	if err := ints(uint64(len(tx.AdditionalKeys))); err != nil {
		return err
	}
	for _, k := range tx.AdditionalKeys {
		w.Write(k[:])
	}
	if err := ints(tx.Fee); err != nil {
		return err
	}
	if !withSignatures {
		return nil
	}
	if err := ints(uint64(len(tx.Signatures))); err != nil {
		return err
	}
	for _, sig := range tx.Signatures {
		w.Write(sig[:])
	}
	return nil
}

func readCount(r io.Reader, limit int) (int, error) {
	n, err := wire.ReadVarInt(r, pver)
	if err != nil {
		return 0, err
	}
	if n > uint64(limit) {
		return 0, fmt.Errorf("count %d exceeds limit %d", n, limit)
	}
	return int(n), nil
}

func decodeErr(field string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("decode %s: %w: %w", field, model.ErrDecode, err)
}
