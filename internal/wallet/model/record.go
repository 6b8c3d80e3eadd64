package model

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Direction tells incoming transfers from outgoing ones.
type Direction uint8

const (
	Incoming Direction = iota
	Outgoing
)

func (d Direction) String() string {
	switch d {
	case Incoming:
		return "in"
	case Outgoing:
		return "out"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "in":
		return Incoming, nil
	case "out":
		return Outgoing, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// Destination is a payment target.
type Destination struct {
	Address string
	Amount  uint64
}

// Address is a decoded wallet address.
type Address struct {
	Network    byte
	Spend      PublicKey
	View       PublicKey
	Subaddress bool
}

// Payment is a destination with its address already decoded.
type Payment struct {
	Address Address
	Amount  uint64
}

// TxRecord is one entry of the wallet's transfer history.
type TxRecord struct {
	Hash      chainhash.Hash
	Direction Direction
	Account   uint32
	Amount    uint64
	Fee       uint64
	// Height is meaningful only when Pending is false.
	Height       uint64
	Pending      bool
	Inputs       []OutputID
	Destinations []Destination
	Relayed      bool
	Timestamp    time.Time
}

// RecordKey identifies a record. One transaction may credit several accounts.
type RecordKey struct {
	Hash    chainhash.Hash
	Account uint32
}

// Key returns the record's identity in the ledger.
func (r TxRecord) Key() RecordKey {
	return RecordKey{Hash: r.Hash, Account: r.Account}
}

// Clone returns a copy that shares no slices with r.
func (r TxRecord) Clone() TxRecord {
	r.Inputs = append([]OutputID(nil), r.Inputs...)
	r.Destinations = append([]Destination(nil), r.Destinations...)
	return r
}
