// Package types implements the Prague transaction core: the five
// transaction shapes, their typed-envelope codec, and sender recovery.
//
// The package deliberately treats RLP and secp256k1/keccak256 as external
// collaborators (github.com/ethereum/go-ethereum/rlp and
// github.com/ethereum/go-ethereum/crypto) rather than reimplementing them,
// the way github.com/vechain/thor builds its own tx package on top of
// go-ethereum's primitives instead of a fork of go-ethereum itself.
package types

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// Address is a 20-byte account address.
type Address = common.Address

// Hash32, Bytes32 and VersionedHash are all 32-byte values; they are kept
// distinct at the call-site level (a versioned hash is never interchangeable
// with an arbitrary hash) even though they share the same underlying wire
// representation. VersionedHash commitments are computed by the KZG
// collaborator (github.com/ethereum/go-ethereum/crypto/kzg4844); this core
// only stores and hashes them.
type (
	Hash32        = common.Hash
	Bytes32       = common.Hash
	VersionedHash = common.Hash
)

// To represents the `to` field of a transaction: either a 20-byte address,
// or the creation sentinel (the empty byte string on the wire). It is a
// closed sum type rather than a nullable pointer, per the wire duality
// called out in the design notes: Legacy/AccessList/FeeMarket transactions
// may carry either; Blob and SetCode transactions are always an address.
type To struct {
	addr     Address
	creation bool
}

// CreationTo returns the contract-creation sentinel.
func CreationTo() To { return To{creation: true} }

// AddressTo wraps a concrete recipient address.
func AddressTo(addr Address) To { return To{addr: addr} }

// IsCreation reports whether this `to` value is the creation sentinel.
func (t To) IsCreation() bool { return t.creation }

// Address returns the wrapped address. It is the zero address when
// IsCreation is true.
func (t To) Address() Address { return t.addr }

func (t To) String() string {
	if t.creation {
		return "<creation>"
	}
	return t.addr.Hex()
}

// EncodeRLP reproduces the wire duality of a nilable *common.Address: the
// empty string for the creation sentinel, 20 bytes for a concrete address.
func (t To) EncodeRLP(w io.Writer) error {
	if t.creation {
		return rlp.Encode(w, []byte{})
	}
	return rlp.Encode(w, t.addr[:])
}

// DecodeRLP is the inverse of EncodeRLP: a zero-length string decodes to the
// creation sentinel, a 20-byte string to a concrete address. Any other
// length is malformed.
func (t *To) DecodeRLP(s *rlp.Stream) error {
	b, err := s.Bytes()
	if err != nil {
		return err
	}
	switch len(b) {
	case 0:
		*t = To{creation: true}
	case common.AddressLength:
		*t = To{addr: common.BytesToAddress(b)}
	default:
		return fmt.Errorf("invalid to field: %d bytes", len(b))
	}
	return nil
}

// Access is an EIP-2930 access-list entry: an account and the ordered,
// possibly-duplicated storage slots pre-warmed for it. Slot order
// participates in hashing and is preserved.
type Access struct {
	Address Address   `json:"address"`
	Slots   []Bytes32 `json:"storageKeys"`
}

// AccessList is an ordered sequence of Access entries.
type AccessList []Access

// StorageKeys returns the number of storage keys across every entry,
// counting duplicates.
func (al AccessList) StorageKeys() int {
	n := 0
	for _, a := range al {
		n += len(a.Slots)
	}
	return n
}

// TransactionTypeError reports an envelope leading byte this core does not
// recognize (EIP-2718). An empty envelope and any leading byte below 0xc0
// other than {0x01..0x04} surface here; a leading byte in [0xc0,0xff] is
// decoded as a legacy RLP list instead. Malformed RLP after a recognized
// tag is reported by the RLP codec's own error, not by this type.
type TransactionTypeError struct {
	Type byte
}

func (e *TransactionTypeError) Error() string {
	return fmt.Sprintf("transaction type not supported: %#x", e.Type)
}

// InvalidTransactionError reports a structural or accounting failure found
// by the intrinsic gas calculator. Reason is one of a closed set of
// strings; callers must branch on the error type, never on Reason.
type InvalidTransactionError struct {
	Reason string
}

func (e *InvalidTransactionError) Error() string {
	return "invalid transaction: " + e.Reason
}

// InvalidSignatureError reports a signature component out of range,
// malleable (EIP-2), or unrecoverable.
type InvalidSignatureError struct {
	Reason string
}

func (e *InvalidSignatureError) Error() string {
	return "invalid signature: " + e.Reason
}
