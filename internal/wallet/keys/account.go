// Package keys holds a wallet's key material and implements output
// ownership checks, key images, subaddresses, one-time output construction and
// input signing on secp256k1.
package keys

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/codec"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const (
	defaultAccounts   = 4
	defaultMinors     = 50
	addressPayloadLen = 2 * model.PublicKeySize
)

// Config describes the key material and the subaddress range to scan for.
type Config struct {
	// Network is the address version byte of primary addresses; subaddresses use Network+1.
	Network byte
	// SpendKey is the 32-byte private spend key. The view key is derived from it.
	SpendKey []byte
	// Accounts and Minors bound the precomputed subaddress table.
	Accounts uint32
	Minors   uint32
	// Rand supplies transaction key randomness; crypto/rand when nil.
	Rand io.Reader
}

// Account is one wallet's key material. Everything except ConstructOutputs
// is read-only after NewAccount and safe for concurrent use.
type Account struct {
	network   byte
	spend     btcec.ModNScalar
	view      btcec.ModNScalar
	spendPub  btcec.JacobianPoint
	viewPub   btcec.JacobianPoint
	spendKeys map[model.PublicKey]model.SubaddressIndex

	randMu sync.Mutex
	rand   io.Reader
}

// NewAccount derives the view key and subaddress table from cfg.
func NewAccount(cfg Config) (*Account, error) {
	if len(cfg.SpendKey) != 32 {
		return nil, fmt.Errorf("spend key must be 32 bytes, got %d", len(cfg.SpendKey))
	}
	if cfg.Accounts == 0 {
		cfg.Accounts = defaultAccounts
	}
	if cfg.Minors == 0 {
		cfg.Minors = defaultMinors
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Reader
	}

	a := &Account{network: cfg.Network, rand: cfg.Rand}
	if overflow := a.spend.SetByteSlice(cfg.SpendKey); overflow || a.spend.IsZero() {
		return nil, errors.New("spend key out of range")
	}
	a.view = hashToScalar([]byte("view_key"), scalarBytes(&a.spend))
	a.spendPub = baseMult(&a.spend)
	a.viewPub = baseMult(&a.view)

	a.spendKeys = make(map[model.PublicKey]model.SubaddressIndex, int(cfg.Accounts*cfg.Minors))
	for i := uint32(0); i < cfg.Accounts; i++ {
		for j := uint32(0); j < cfg.Minors; j++ {
			idx := model.SubaddressIndex{Account: i, Minor: j}
			d := a.subaddressSpend(idx)
			a.spendKeys[serialize(d)] = idx
		}
	}
	return a, nil
}

// Network returns the primary address version byte.
func (a *Account) Network() byte { return a.network }

// SubaddressCount is the number of precomputed subaddresses.
func (a *Account) SubaddressCount() int { return len(a.spendKeys) }

func (a *Account) subaddressScalar(idx model.SubaddressIndex) btcec.ModNScalar {
	if idx.IsPrimary() {
		return btcec.ModNScalar{}
	}
	return hashToScalar([]byte("SubAddr\x00"), scalarBytes(&a.view), uint32Bytes(idx.Account), uint32Bytes(idx.Minor))
}

func (a *Account) subaddressSpend(idx model.SubaddressIndex) btcec.JacobianPoint {
	if idx.IsPrimary() {
		return a.spendPub
	}
	m := a.subaddressScalar(idx)
	mG := baseMult(&m)
	return add(&a.spendPub, &mG)
}

// Address returns the decoded address of a subaddress index.
func (a *Account) Address(idx model.SubaddressIndex) model.Address {
	if idx.IsPrimary() {
		return model.Address{
			Network: a.network,
			Spend:   serialize(a.spendPub),
			View:    serialize(a.viewPub),
		}
	}
	d := a.subaddressSpend(idx)
	c := mult(&a.view, &d)
	return model.Address{
		Network:    a.network,
		Spend:      serialize(d),
		View:       serialize(c),
		Subaddress: true,
	}
}

// EncodeAddress renders an address as base58check text.
func (a *Account) EncodeAddress(addr model.Address) string {
	payload := make([]byte, 0, addressPayloadLen)
	payload = append(payload, addr.Spend[:]...)
	payload = append(payload, addr.View[:]...)
	version := addr.Network
	if addr.Subaddress {
		version++
	}
	return base58.CheckEncode(payload, version)
}

// DecodeAddress parses and validates an address of this account's network.
func (a *Account) DecodeAddress(s string) (model.Address, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return model.Address{}, fmt.Errorf("decode address: %w: %w", model.ErrInvalidDestination, err)
	}
	if len(payload) != addressPayloadLen {
		return model.Address{}, fmt.Errorf("address payload is %d bytes: %w", len(payload), model.ErrInvalidDestination)
	}

	addr := model.Address{Network: a.network}
	switch version {
	case a.network:
	case a.network + 1:
		addr.Subaddress = true
	default:
		return model.Address{}, fmt.Errorf("address version %d not on network %d: %w", version, a.network, model.ErrInvalidDestination)
	}
	copy(addr.Spend[:], payload[:model.PublicKeySize])
	copy(addr.View[:], payload[model.PublicKeySize:])
	if _, err := parsePoint(addr.Spend[:]); err != nil {
		return model.Address{}, fmt.Errorf("spend key: %w", model.ErrInvalidDestination)
	}
	if _, err := parsePoint(addr.View[:]); err != nil {
		return model.Address{}, fmt.Errorf("view key: %w", model.ErrInvalidDestination)
	}
	return addr, nil
}

// derivation returns Hs(S || index) and the view tag for shared secret S.
func derivation(shared btcec.JacobianPoint, index uint32) (btcec.ModNScalar, byte) {
	s := serialize(shared)
	tag := codec.Keccak256([]byte("view_tag"), s[:], uint32Bytes(index))
	return hashToScalar([]byte("output"), s[:], uint32Bytes(index)), tag[0]
}

// MatchOutput reports whether output index of tx belongs to the wallet and,
// if so, which subaddress received it and the key image that will spend it.
func (a *Account) MatchOutput(tx *model.Transaction, index int) (model.OutputMatch, bool, error) {
	if index < 0 || index >= len(tx.Outputs) {
		return model.OutputMatch{}, false, fmt.Errorf("output %d out of range: %w", index, model.ErrDecode)
	}
	out := tx.Outputs[index]
	candidates := []model.PublicKey{tx.PublicKey}
	if len(tx.AdditionalKeys) > index {
		candidates = append(candidates, tx.AdditionalKeys[index])
	}

	var p btcec.JacobianPoint
	parsed := false
	for _, txKey := range candidates {
		r, err := parsePoint(txKey[:])
		if err != nil {
			return model.OutputMatch{}, false, fmt.Errorf("tx %s key: %w", tx.Hash, err)
		}
		h, tag := derivation(mult(&a.view, &r), uint32(index))
		if tag != out.ViewTag {
			continue
		}
		if !parsed {
			if p, err = parsePoint(out.Key[:]); err != nil {
				return model.OutputMatch{}, false, fmt.Errorf("tx %s output %d: %w", tx.Hash, index, err)
			}
			parsed = true
		}
		hG := baseMult(&h)
		idx, ok := a.spendKeys[serialize(sub(&p, &hG))]
		if !ok {
			continue
		}
		x := a.outputSecret(h, idx)
		return model.OutputMatch{Subaddress: idx, KeyImage: keyImage(&x, out.Key), TxPublicKey: txKey}, true, nil
	}
	return model.OutputMatch{}, false, nil
}

// outputSecret is x = Hs(S||k) + b + m.
func (a *Account) outputSecret(h btcec.ModNScalar, idx model.SubaddressIndex) btcec.ModNScalar {
	m := a.subaddressScalar(idx)
	var x btcec.ModNScalar
	x.Add2(&h, &a.spend).Add(&m)
	return x
}

func keyImage(x *btcec.ModNScalar, outputKey model.PublicKey) model.KeyImage {
	hp := hashToPoint(outputKey[:])
	var ki model.KeyImage
	copy(ki[:], btcec.JacobianToByteSlice(mult(x, &hp)))
	return ki
}

// ConstructOutputs derives one-time keys for payments. The returned
// transaction carries PublicKey, AdditionalKeys and Outputs in payment order.
func (a *Account) ConstructOutputs(payments []model.Payment) (model.Transaction, error) {
	a.randMu.Lock()
	defer a.randMu.Unlock()

	r, err := a.randomScalar()
	if err != nil {
		return model.Transaction{}, err
	}
	tx := model.Transaction{PublicKey: serialize(baseMult(&r))}

	additional := false
	for _, p := range payments {
		additional = additional || p.Address.Subaddress
	}

	for k, p := range payments {
		spend, err := parsePoint(p.Address.Spend[:])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("payment %d: %w", k, model.ErrInvalidDestination)
		}
		view, err := parsePoint(p.Address.View[:])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("payment %d: %w", k, model.ErrInvalidDestination)
		}

		secret := r
		if additional {
			if secret, err = a.randomScalar(); err != nil {
				return model.Transaction{}, err
			}
			var rk btcec.JacobianPoint
			if p.Address.Subaddress {
				rk = mult(&secret, &spend)
			} else {
				rk = baseMult(&secret)
			}
			tx.AdditionalKeys = append(tx.AdditionalKeys, serialize(rk))
		}

		h, tag := derivation(mult(&secret, &view), uint32(k))
		hG := baseMult(&h)
		tx.Outputs = append(tx.Outputs, model.TxOutput{
			Amount:  p.Amount,
			Key:     serialize(add(&hG, &spend)),
			ViewTag: tag,
		})
	}
	return tx, nil
}

func (a *Account) randomScalar() (btcec.ModNScalar, error) {
	var buf [32]byte
	for {
		if _, err := io.ReadFull(a.rand, buf[:]); err != nil {
			return btcec.ModNScalar{}, fmt.Errorf("read randomness: %w", err)
		}
		var s btcec.ModNScalar
		if overflow := s.SetBytes(&buf); overflow == 0 && !s.IsZero() {
			return s, nil
		}
	}
}

// SignTransaction signs every input of tx with the one-time key of the
// matching owned output, sets tx.Signatures and tx.Hash, and returns the
// serialized transaction.
func (a *Account) SignTransaction(tx *model.Transaction, inputs []model.Output) ([]byte, error) {
	if len(inputs) != len(tx.Inputs) {
		return nil, fmt.Errorf("%d owned outputs for %d inputs", len(inputs), len(tx.Inputs))
	}
	tx.Signatures = nil
	hash, err := codec.PrefixHash(*tx)
	if err != nil {
		return nil, fmt.Errorf("prefix hash: %w", err)
	}

	sigs := make([]model.Signature, len(inputs))
	for i, in := range inputs {
		x, err := a.spendSecret(in)
		if err != nil {
			return nil, fmt.Errorf("input %d (%s): %w", i, in.ID, err)
		}
		if ki := keyImage(&x, in.Key); ki != tx.Inputs[i].KeyImage {
			return nil, fmt.Errorf("input %d (%s): key image mismatch", i, in.ID)
		}
		sig, err := schnorr.Sign(btcec.PrivKeyFromScalar(&x), hash[:])
		if err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		copy(sigs[i][:], sig.Serialize())
	}
	tx.Signatures = sigs
	tx.Hash = hash
	return codec.EncodeTransaction(*tx)
}

func (a *Account) spendSecret(out model.Output) (btcec.ModNScalar, error) {
	r, err := parsePoint(out.TxPublicKey[:])
	if err != nil {
		return btcec.ModNScalar{}, err
	}
	h, _ := derivation(mult(&a.view, &r), out.ID.Index)
	x := a.outputSecret(h, out.Subaddress)
	if got := serialize(baseMult(&x)); !bytes.Equal(got[:], out.Key[:]) {
		return btcec.ModNScalar{}, errors.New("output key not derivable from wallet keys")
	}
	return x, nil
}

// VerifyInputSignature checks input i of a signed tx against the output key it spends.
func VerifyInputSignature(tx model.Transaction, i int, outputKey model.PublicKey) bool {
	if i < 0 || i >= len(tx.Signatures) {
		return false
	}
	sig, err := schnorr.ParseSignature(tx.Signatures[i][:])
	if err != nil {
		return false
	}
	pub, err := btcec.ParsePubKey(outputKey[:])
	if err != nil {
		return false
	}
	hash, err := codec.PrefixHash(tx)
	if err != nil {
		return false
	}
	return sig.Verify(hash[:], pub)
}
