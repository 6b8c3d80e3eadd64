package keys

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/codec"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// hashToScalar reduces Keccak-256 of the concatenated parts modulo the group order.
func hashToScalar(parts ...[]byte) btcec.ModNScalar {
	h := codec.Keccak256(parts...)
	var s btcec.ModNScalar
	s.SetBytes((*[32]byte)(h[:]))
	return s
}

// hashToPoint maps data onto the curve by try-and-increment over even-y candidates.
func hashToPoint(data []byte) btcec.JacobianPoint {
	candidate := make([]byte, model.PublicKeySize)
	candidate[0] = 0x02
	for ctr := uint32(0); ; ctr++ {
		var c [4]byte
		binary.LittleEndian.PutUint32(c[:], ctr)
		h := codec.Keccak256([]byte("key_image"), data, c[:])
		copy(candidate[1:], h[:])
		if p, err := btcec.ParseJacobian(candidate); err == nil {
			return p
		}
	}
}

func parsePoint(k []byte) (btcec.JacobianPoint, error) {
	if len(k) != model.PublicKeySize || (k[0] != 0x02 && k[0] != 0x03) {
		return btcec.JacobianPoint{}, fmt.Errorf("invalid point encoding: %w", model.ErrDecode)
	}
	p, err := btcec.ParseJacobian(k)
	if err != nil {
		return btcec.JacobianPoint{}, fmt.Errorf("invalid point: %w: %w", model.ErrDecode, err)
	}
	return p, nil
}

func serialize(p btcec.JacobianPoint) model.PublicKey {
	var out model.PublicKey
	copy(out[:], btcec.JacobianToByteSlice(p))
	return out
}

func baseMult(k *btcec.ModNScalar) btcec.JacobianPoint {
	var p btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(k, &p)
	return p
}

func mult(k *btcec.ModNScalar, p *btcec.JacobianPoint) btcec.JacobianPoint {
	var out btcec.JacobianPoint
	btcec.ScalarMultNonConst(k, p, &out)
	out.ToAffine()
	return out
}

func add(p, q *btcec.JacobianPoint) btcec.JacobianPoint {
	var out btcec.JacobianPoint
	btcec.AddNonConst(p, q, &out)
	out.ToAffine()
	return out
}

func sub(p, q *btcec.JacobianPoint) btcec.JacobianPoint {
	neg := *q
	neg.ToAffine()
	neg.Y.Negate(1).Normalize()
	return add(p, &neg)
}

func scalarBytes(s *btcec.ModNScalar) []byte {
	b := s.Bytes()
	return b[:]
}

func uint32Bytes(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}
