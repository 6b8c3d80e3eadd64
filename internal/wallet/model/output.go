package model

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// SubaddressIndex addresses a subaddress inside an account. Minor 0 is the account's primary address.
type SubaddressIndex struct {
	Account uint32
	Minor   uint32
}

// IsPrimary reports whether the index is the wallet's main address.
func (i SubaddressIndex) IsPrimary() bool {
	return i.Account == 0 && i.Minor == 0
}

// OutputID identifies an output by transaction hash and position.
type OutputID struct {
	TxHash chainhash.Hash
	Index  uint32
}

func (id OutputID) String() string {
	return fmt.Sprintf("%s:%d", id.TxHash, id.Index)
}

// Less orders ids by transaction hash bytes, then index.
func (id OutputID) Less(other OutputID) bool {
	if c := bytes.Compare(id.TxHash[:], other.TxHash[:]); c != 0 {
		return c < 0
	}
	return id.Index < other.Index
}

// SpentState tracks whether an output can still be selected.
type SpentState uint8

const (
	Unspent SpentState = iota
	SpentPending
	SpentConfirmed
)

func (s SpentState) String() string {
	switch s {
	case Unspent:
		return "unspent"
	case SpentPending:
		return "spent_pending"
	case SpentConfirmed:
		return "spent_confirmed"
	default:
		return fmt.Sprintf("spent_state(%d)", uint8(s))
	}
}

// ParseSpentState is the inverse of SpentState.String.
func ParseSpentState(s string) (SpentState, error) {
	switch s {
	case "unspent":
		return Unspent, nil
	case "spent_pending":
		return SpentPending, nil
	case "spent_confirmed":
		return SpentConfirmed, nil
	default:
		return 0, fmt.Errorf("unknown spent state %q", s)
	}
}

// Output is an output owned by the wallet.
type Output struct {
	ID           OutputID
	Subaddress   SubaddressIndex
	Amount       uint64
	State        SpentState
	Height       uint64
	UnlockHeight uint64
	Key          PublicKey
	KeyImage     KeyImage
	TxPublicKey  PublicKey
	// SpentBy is set while State is SpentPending or SpentConfirmed.
	SpentBy     chainhash.Hash
	SpentHeight uint64
}

// Spendable reports whether the output can fund a transaction built at the given chain height.
func (o Output) Spendable(height uint64) bool {
	return o.State == Unspent && o.UnlockHeight <= height
}

// OutputMatch is what key derivation learns about an owned output.
type OutputMatch struct {
	Subaddress SubaddressIndex
	KeyImage   KeyImage
	// TxPublicKey is the transaction key the match was derived from.
	TxPublicKey PublicKey
}
