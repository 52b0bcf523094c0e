package types

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

func TestAuthorizationRecoverRoundTrip(t *testing.T) {
	key := testKey(t)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	auth := Authorization{
		ChainID: uint256.NewInt(1),
		Address: Address{0x01, 0x02},
		Nonce:   5,
	}
	hash := AuthorizationSigningHash(auth)
	r, s, yParity := sign(t, hash, key)
	auth.R, auth.S, auth.YParity = r, s, yParity

	got, err := RecoverAuthority(auth)
	if err != nil {
		t.Fatalf("RecoverAuthority: %v", err)
	}
	if got != addr {
		t.Fatalf("recovered %x, want %x", got, addr)
	}
}

func TestAuthorizationSigningHashDistinctFromTxHash(t *testing.T) {
	auth := Authorization{ChainID: uint256.NewInt(1), Address: Address{0x01}, Nonce: 0}
	authHash := AuthorizationSigningHash(auth)

	tx := sampleSetCode()
	txHash := SigningHashSetCode(tx)

	if authHash == txHash {
		t.Fatalf("authorization and transaction signing hashes must use distinct domain separators")
	}
}

func TestAuthorizationBadYParityRejected(t *testing.T) {
	auth := Authorization{
		ChainID: uint256.NewInt(1),
		Address: Address{0x01},
		Nonce:   0,
		YParity: uint256.NewInt(2),
		R:       uint256.NewInt(1),
		S:       uint256.NewInt(1),
	}
	_, err := RecoverAuthority(auth)
	sigErr, ok := err.(*InvalidSignatureError)
	if !ok || sigErr.Reason != "bad y_parity" {
		t.Fatalf("expected bad y_parity, got %v", err)
	}
}
