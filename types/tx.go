package types

import (
	"bytes"
	"io"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// Transaction type tags, the EIP-2718 reserved leading bytes. There is no
// tag for legacy transactions: a legacy transaction is a plain RLP list and
// is never prefixed.
const (
	LegacyTxType     = 0x00 // not a wire tag; used internally as Transaction.Type()'s legacy value
	AccessListTxType = 0x01
	FeeMarketTxType  = 0x02
	BlobTxType       = 0x03
	SetCodeTxType    = 0x04
)

// TxData is the consensus content of one of the five transaction variants.
// The set is closed: the unexported methods mean only this package can
// implement the interface, and a new variant must provide every method
// below. The type switch in RecoverSender (signer.go) is not checked for
// exhaustiveness by the compiler; an unhandled variant reaches its default
// branch and is reported as a TransactionTypeError.
type TxData interface {
	txType() byte
	copy() TxData

	chainID() *uint256.Int
	nonce() uint64
	gas() uint64
	to() To
	value() *uint256.Int
	data() []byte

	// hasAccessList is the single introspection capability the domain
	// model exposes across variants: true for every non-legacy type.
	hasAccessList() bool
	accessList() AccessList

	gasPrice() *uint256.Int
	gasTipCap() *uint256.Int
	gasFeeCap() *uint256.Int

	rawSignatureValues() (v, r, s *uint256.Int)
	setSignatureValues(chainID, v, r, s *uint256.Int)
}

// Transaction wraps exactly one of the five TxData variants. NewTx and
// WithSignature copy the variant and return a new value rather than
// mutating their input; decoding (UnmarshalBinary, DecodeRLP) replaces the
// receiver's variant in place and resets its hash cache.
type Transaction struct {
	inner TxData

	// hash is a per-instance, identity-scoped cache: never populated until
	// asked for, never shared across Transaction values.
	hash atomic.Pointer[Hash32]
}

// NewTx wraps a TxData value in a Transaction envelope.
func NewTx(inner TxData) *Transaction {
	return &Transaction{inner: inner.copy()}
}

// Type returns the wire tag of the transaction: one of
// {LegacyTxType, AccessListTxType, FeeMarketTxType, BlobTxType, SetCodeTxType}.
func (tx *Transaction) Type() byte { return tx.inner.txType() }

// ChainID returns the replay-protection chain id. Unprotected legacy
// transactions return zero.
func (tx *Transaction) ChainID() *uint256.Int { return tx.inner.chainID() }

// Nonce returns the sender account nonce.
func (tx *Transaction) Nonce() uint64 { return tx.inner.nonce() }

// Gas returns the gas limit supplied with the transaction.
func (tx *Transaction) Gas() uint64 { return tx.inner.gas() }

// To returns the recipient, or the creation sentinel.
func (tx *Transaction) To() To { return tx.inner.to() }

// Value returns the wei value transferred.
func (tx *Transaction) Value() *uint256.Int { return tx.inner.value() }

// Data returns the calldata / init code.
func (tx *Transaction) Data() []byte { return tx.inner.data() }

// HasAccessList reports whether this variant carries an access list: false
// only for Legacy.
func (tx *Transaction) HasAccessList() bool { return tx.inner.hasAccessList() }

// AccessList returns the access list, or nil for Legacy.
func (tx *Transaction) AccessList() AccessList { return tx.inner.accessList() }

// GasPrice returns the legacy/EIP-2930 gas price, or the EIP-1559-and-later
// fee cap for typed fee-market variants.
func (tx *Transaction) GasPrice() *uint256.Int { return tx.inner.gasPrice() }

// GasTipCap returns max_priority_fee_per_gas for fee-market variants.
func (tx *Transaction) GasTipCap() *uint256.Int { return tx.inner.gasTipCap() }

// GasFeeCap returns max_fee_per_gas for fee-market variants.
func (tx *Transaction) GasFeeCap() *uint256.Int { return tx.inner.gasFeeCap() }

// RawSignatureValues returns the raw (v, r, s) triple as stored on the
// variant. For typed transactions v holds y_parity (0 or 1); for legacy it
// holds the full EIP-155-or-not v value.
func (tx *Transaction) RawSignatureValues() (v, r, s *uint256.Int) {
	return tx.inner.rawSignatureValues()
}

// BlobTxFields returns the blob-specific fields and whether the transaction
// is a Blob transaction at all.
func (tx *Transaction) BlobTxFields() (blobFeeCap *uint256.Int, hashes []VersionedHash, ok bool) {
	b, ok := tx.inner.(*BlobTx)
	if !ok {
		return nil, nil, false
	}
	return b.MaxFeePerBlobGas, b.BlobVersionedHashes, true
}

// Authorizations returns the EIP-7702 authorization list, or nil if this is
// not a SetCode transaction.
func (tx *Transaction) Authorizations() []Authorization {
	s, ok := tx.inner.(*SetCodeTx)
	if !ok {
		return nil
	}
	return s.Authorizations
}

// WithSignature returns a copy of tx with (v, r, s) replaced. chainID is
// only consulted by variants that bind it into the signature (legacy
// EIP-155); typed variants carry their own chain id field already.
func (tx *Transaction) WithSignature(chainID, v, r, s *uint256.Int) *Transaction {
	cpy := tx.inner.copy()
	cpy.setSignatureValues(chainID, v, r, s)
	return &Transaction{inner: cpy}
}

// rlpHash keccak256-hashes the RLP encoding of x.
func rlpHash(x interface{}) Hash32 {
	var buf bytes.Buffer
	if err := rlp.Encode(&buf, x); err != nil {
		panic(err) // encoding a well-formed in-memory value cannot fail
	}
	return crypto.Keccak256Hash(buf.Bytes())
}

// prefixedRlpHash keccak256-hashes `prefix || rlp(x)`, the EIP-2718
// typed-envelope preimage shape. The prefix byte is raw concatenation,
// never itself RLP-encoded — encoding it as a one-byte RLP string would
// change the preimage and break every typed signature.
func prefixedRlpHash(prefix byte, x interface{}) Hash32 {
	var buf bytes.Buffer
	buf.WriteByte(prefix)
	if err := rlp.Encode(&buf, x); err != nil {
		panic(err)
	}
	return crypto.Keccak256Hash(buf.Bytes())
}

// EncodeRLP implements rlp.Encoder. Legacy transactions encode as a plain
// RLP list; typed transactions encode as an RLP string wrapping
// tag||rlp(fields), matching how a typed envelope nests inside a block body.
func (tx *Transaction) EncodeRLP(w io.Writer) error {
	if tx.Type() == LegacyTxType {
		return rlp.Encode(w, tx.inner)
	}
	buf := new(bytes.Buffer)
	if err := tx.encodeTyped(buf); err != nil {
		return err
	}
	return rlp.Encode(w, buf.Bytes())
}

func (tx *Transaction) encodeTyped(w *bytes.Buffer) error {
	w.WriteByte(tx.Type())
	return rlp.Encode(w, tx.inner)
}

// MarshalBinary returns the canonical EIP-2718 encoding: the bare RLP for
// legacy, or tag_byte||rlp(fields) for typed transactions.
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	if tx.Type() == LegacyTxType {
		return rlp.EncodeToBytes(tx.inner)
	}
	var buf bytes.Buffer
	if err := tx.encodeTyped(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeRLP implements rlp.Decoder, dispatching on the outer RLP kind: a
// list is a legacy transaction, a string is a typed envelope.
func (tx *Transaction) DecodeRLP(s *rlp.Stream) error {
	kind, _, err := s.Kind()
	if err != nil {
		return err
	}
	switch kind {
	case rlp.List:
		var inner LegacyTx
		if err := s.Decode(&inner); err != nil {
			return err
		}
		tx.setDecoded(&inner)
		return nil
	case rlp.String:
		b, err := s.Bytes()
		if err != nil {
			return err
		}
		inner, err := decodeTyped(b)
		if err != nil {
			return err
		}
		tx.setDecoded(inner)
		return nil
	default:
		return rlp.ErrExpectedList
	}
}

// UnmarshalBinary is the inverse of MarshalBinary. A leading byte in
// [0xc0,0xff] marks a legacy RLP list; any other leading byte is an
// EIP-2718 type tag followed by the variant's RLP fields.
func (tx *Transaction) UnmarshalBinary(b []byte) error {
	if len(b) > 0 && b[0] >= 0xc0 {
		var inner LegacyTx
		if err := rlp.DecodeBytes(b, &inner); err != nil {
			return err
		}
		tx.setDecoded(&inner)
		return nil
	}
	inner, err := decodeTyped(b)
	if err != nil {
		return err
	}
	tx.setDecoded(inner)
	return nil
}

func decodeTyped(b []byte) (TxData, error) {
	if len(b) == 0 {
		return nil, &TransactionTypeError{Type: 0}
	}
	var inner TxData
	switch b[0] {
	case AccessListTxType:
		inner = new(AccessListTx)
	case FeeMarketTxType:
		inner = new(FeeMarketTx)
	case BlobTxType:
		inner = new(BlobTx)
	case SetCodeTxType:
		inner = new(SetCodeTx)
	default:
		return nil, &TransactionTypeError{Type: b[0]}
	}
	if err := rlp.DecodeBytes(b[1:], inner); err != nil {
		return nil, err
	}
	return inner, nil
}

func (tx *Transaction) setDecoded(inner TxData) {
	tx.inner = inner
	tx.hash.Store(nil)
}

// Hash returns keccak256 of the canonical encoding: bare RLP for legacy,
// tag||rlp(...) for typed transactions.
func (tx *Transaction) Hash() Hash32 {
	if h := tx.hash.Load(); h != nil {
		return *h
	}
	var h Hash32
	if tx.Type() == LegacyTxType {
		h = rlpHash(tx.inner)
	} else {
		h = prefixedRlpHash(tx.Type(), tx.inner)
	}
	tx.hash.Store(&h)
	return h
}

// TransactionHash computes keccak256 over an already-encoded envelope,
// for callers that only have the wire bytes and not a decoded Transaction.
func TransactionHash(encoded []byte) Hash32 {
	return crypto.Keccak256Hash(encoded)
}
