package types

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
)

func TestToRLPRoundTrip(t *testing.T) {
	cases := []To{
		CreationTo(),
		AddressTo(Address{0x01, 0x02, 0x03}),
	}
	for _, want := range cases {
		encoded, err := rlp.EncodeToBytes(want)
		if err != nil {
			t.Fatalf("EncodeToBytes: %v", err)
		}
		var got To
		if err := rlp.DecodeBytes(encoded, &got); err != nil {
			t.Fatalf("DecodeBytes: %v", err)
		}
		if got != want {
			t.Fatalf("round-trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestToRLPCreationIsEmptyString(t *testing.T) {
	encoded, err := rlp.EncodeToBytes(CreationTo())
	if err != nil {
		t.Fatalf("EncodeToBytes: %v", err)
	}
	if len(encoded) != 1 || encoded[0] != 0x80 {
		t.Fatalf("creation sentinel must encode as the empty RLP string 0x80, got %x", encoded)
	}
}

func TestAccessListStorageKeys(t *testing.T) {
	al := AccessList{
		{Address: Address{0x01}, Slots: []Bytes32{{0x01}, {0x02}}},
		{Address: Address{0x02}, Slots: []Bytes32{{0x03}}},
	}
	if got := al.StorageKeys(); got != 3 {
		t.Fatalf("StorageKeys() = %d, want 3", got)
	}
}

func TestErrorTypesImplementError(t *testing.T) {
	var errs = []error{
		&TransactionTypeError{Type: 0x09},
		&InvalidTransactionError{Reason: "Insufficient gas"},
		&InvalidSignatureError{Reason: "bad r"},
	}
	for _, err := range errs {
		if err.Error() == "" {
			t.Fatalf("%T produced empty error string", err)
		}
	}
}
