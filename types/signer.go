package types

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// secp256k1N is the secp256k1 group order, read off the curve
// go-ethereum/crypto already embeds rather than hard-coded twice.
var secp256k1N = uint256.MustFromBig(crypto.S256().Params().N)

var secp256k1HalfN = new(uint256.Int).Rsh(secp256k1N, 1)

// legacy (chain-id-less) and pre/post-EIP-155 signing preimages.
type legacyUnprotectedSigningFields struct {
	Nonce    uint64
	GasPrice *uint256.Int
	Gas      uint64
	To       To
	Value    *uint256.Int
	Data     []byte
}

type legacyEIP155SigningFields struct {
	Nonce    uint64
	GasPrice *uint256.Int
	Gas      uint64
	To       To
	Value    *uint256.Int
	Data     []byte
	ChainID  *uint256.Int
	Zero1    uint64
	Zero2    uint64
}

type accessListSigningFields struct {
	ChainID    *uint256.Int
	Nonce      uint64
	GasPrice   *uint256.Int
	Gas        uint64
	To         To
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
}

type feeMarketSigningFields struct {
	ChainID    *uint256.Int
	Nonce      uint64
	GasTipCap  *uint256.Int
	GasFeeCap  *uint256.Int
	Gas        uint64
	To         To
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
}

type blobSigningFields struct {
	ChainID             *uint256.Int
	Nonce               uint64
	GasTipCap           *uint256.Int
	GasFeeCap           *uint256.Int
	Gas                 uint64
	To                  Address
	Value               *uint256.Int
	Data                []byte
	AccessList          AccessList
	MaxFeePerBlobGas    *uint256.Int
	BlobVersionedHashes []VersionedHash
}

type setCodeSigningFields struct {
	ChainID        *uint256.Int
	Nonce          uint64
	GasTipCap      *uint256.Int
	GasFeeCap      *uint256.Int
	Gas            uint64
	To             Address
	Value          *uint256.Int
	Data           []byte
	AccessList     AccessList
	Authorizations []Authorization
}

// SigningHashLegacyUnprotected is the pre-EIP-155 preimage hash:
// keccak256(rlp([nonce, gas_price, gas, to, value, data])).
func SigningHashLegacyUnprotected(tx *LegacyTx) Hash32 {
	return rlpHash(legacyUnprotectedSigningFields{
		Nonce: tx.Nonce, GasPrice: tx.GasPrice, Gas: tx.Gas,
		To: tx.To, Value: tx.Value, Data: tx.Data,
	})
}

// SigningHashLegacyEIP155 is the EIP-155 preimage hash:
// keccak256(rlp([nonce, gas_price, gas, to, value, data, chain_id, 0, 0])).
func SigningHashLegacyEIP155(tx *LegacyTx, chainID *uint256.Int) Hash32 {
	return rlpHash(legacyEIP155SigningFields{
		Nonce: tx.Nonce, GasPrice: tx.GasPrice, Gas: tx.Gas,
		To: tx.To, Value: tx.Value, Data: tx.Data,
		ChainID: chainID,
	})
}

// SigningHashAccessList is the EIP-2930 preimage hash:
// keccak256(0x01 || rlp([chain_id, nonce, gas_price, gas, to, value, data, access_list])).
func SigningHashAccessList(tx *AccessListTx) Hash32 {
	return prefixedRlpHash(AccessListTxType, accessListSigningFields{
		ChainID: tx.ChainID, Nonce: tx.Nonce, GasPrice: tx.GasPrice, Gas: tx.Gas,
		To: tx.To, Value: tx.Value, Data: tx.Data, AccessList: tx.AccessList,
	})
}

// SigningHashFeeMarket is the EIP-1559 preimage hash.
func SigningHashFeeMarket(tx *FeeMarketTx) Hash32 {
	return prefixedRlpHash(FeeMarketTxType, feeMarketSigningFields{
		ChainID: tx.ChainID, Nonce: tx.Nonce, GasTipCap: tx.GasTipCap, GasFeeCap: tx.GasFeeCap,
		Gas: tx.Gas, To: tx.To, Value: tx.Value, Data: tx.Data, AccessList: tx.AccessList,
	})
}

// SigningHashBlob is the EIP-4844 preimage hash.
func SigningHashBlob(tx *BlobTx) Hash32 {
	return prefixedRlpHash(BlobTxType, blobSigningFields{
		ChainID: tx.ChainID, Nonce: tx.Nonce, GasTipCap: tx.GasTipCap, GasFeeCap: tx.GasFeeCap,
		Gas: tx.Gas, To: tx.To, Value: tx.Value, Data: tx.Data, AccessList: tx.AccessList,
		MaxFeePerBlobGas: tx.MaxFeePerBlobGas, BlobVersionedHashes: tx.BlobVersionedHashes,
	})
}

// SigningHashSetCode is the EIP-7702 preimage hash.
func SigningHashSetCode(tx *SetCodeTx) Hash32 {
	return prefixedRlpHash(SetCodeTxType, setCodeSigningFields{
		ChainID: tx.ChainID, Nonce: tx.Nonce, GasTipCap: tx.GasTipCap, GasFeeCap: tx.GasFeeCap,
		Gas: tx.Gas, To: tx.To, Value: tx.Value, Data: tx.Data, AccessList: tx.AccessList,
		Authorizations: tx.Authorizations,
	})
}

// validateRS enforces the EIP-2 low-s and non-zero range checks shared by
// every variant: 0 < r < N, 0 < s <= N/2.
func validateRS(r, s *uint256.Int) error {
	if r == nil || r.IsZero() || r.Cmp(secp256k1N) >= 0 {
		return &InvalidSignatureError{Reason: "bad r"}
	}
	if s == nil || s.IsZero() || s.Cmp(secp256k1HalfN) > 0 {
		return &InvalidSignatureError{Reason: "bad s"}
	}
	return nil
}

// isLegacyUnprotectedV reports whether v is the pre-EIP-155 recovery byte
// ({27, 28}), as opposed to an EIP-155-protected v
// ({35+2*chain_id, 36+2*chain_id}). EIP-155 v values fit comfortably in a
// single byte for any chain id below ~110 — mainnet's chain id of 1 yields
// v in {37, 38} — so bit width can never be used to tell the two apart;
// only an exact match against {27, 28} does.
func isLegacyUnprotectedV(v *uint256.Int) bool {
	return v != nil && (v.Eq(uint256.NewInt(27)) || v.Eq(uint256.NewInt(28)))
}

// recoveryIDFromLegacyV picks apart a legacy transaction's v: {27, 28} is
// the pre-EIP-155 path, and {35, 36} offset by 2*chain_id is the EIP-155
// path. Any other value is rejected.
func recoveryIDFromLegacyV(v *uint256.Int, chainID *uint256.Int) (byte, error) {
	if v == nil {
		return 0, &InvalidSignatureError{Reason: "bad v"}
	}
	if v.Eq(uint256.NewInt(27)) {
		return 0, nil
	}
	if v.Eq(uint256.NewInt(28)) {
		return 1, nil
	}
	chainIDx2 := new(uint256.Int).Lsh(chainID, 1)
	lo := new(uint256.Int).AddUint64(chainIDx2, 35)
	hi := new(uint256.Int).AddUint64(chainIDx2, 36)
	switch {
	case v.Eq(lo):
		return 0, nil
	case v.Eq(hi):
		return 1, nil
	default:
		return 0, &InvalidSignatureError{Reason: "bad v"}
	}
}

// yParityToRecoveryID validates a typed transaction's y_parity: it must be
// exactly 0 or 1, and doubles as the recovery id directly.
func yParityToRecoveryID(yParity *uint256.Int) (byte, error) {
	if yParity == nil || yParity.BitLen() > 8 {
		return 0, &InvalidSignatureError{Reason: "bad y_parity"}
	}
	switch yParity.Uint64() {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	default:
		return 0, &InvalidSignatureError{Reason: "bad y_parity"}
	}
}

// recoverFromHash runs secp256k1 recovery and derives the sender address
// as the low 20 bytes of keccak256(uncompressed pubkey).
func recoverFromHash(hash Hash32, r, s *uint256.Int, recoveryID byte) (Address, error) {
	sig := make([]byte, 65)
	r.WriteToSlice(sig[:32])
	s.WriteToSlice(sig[32:64])
	sig[64] = recoveryID

	pub, err := crypto.SigToPub(hash[:], sig)
	if err != nil {
		return Address{}, &InvalidSignatureError{Reason: "unrecoverable"}
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// RecoverSender validates (r, s), determines the recovery id from v or
// y_parity depending on the variant, computes the variant's signing hash,
// and recovers the secp256k1 sender address. chainID is only consulted for
// the legacy variant, whose chain id is not stored on the transaction
// itself but folded into v.
func RecoverSender(chainID *uint256.Int, tx *Transaction) (Address, error) {
	v, r, s := tx.RawSignatureValues()
	if err := validateRS(r, s); err != nil {
		return Address{}, err
	}

	switch inner := tx.inner.(type) {
	case *LegacyTx:
		recoveryID, err := recoveryIDFromLegacyV(v, chainID)
		if err != nil {
			return Address{}, err
		}
		hash := SigningHashLegacyEIP155(inner, chainID)
		if isLegacyUnprotectedV(v) {
			hash = SigningHashLegacyUnprotected(inner)
		}
		return recoverFromHash(hash, r, s, recoveryID)
	case *AccessListTx:
		recoveryID, err := yParityToRecoveryID(v)
		if err != nil {
			return Address{}, err
		}
		return recoverFromHash(SigningHashAccessList(inner), r, s, recoveryID)
	case *FeeMarketTx:
		recoveryID, err := yParityToRecoveryID(v)
		if err != nil {
			return Address{}, err
		}
		return recoverFromHash(SigningHashFeeMarket(inner), r, s, recoveryID)
	case *BlobTx:
		recoveryID, err := yParityToRecoveryID(v)
		if err != nil {
			return Address{}, err
		}
		return recoverFromHash(SigningHashBlob(inner), r, s, recoveryID)
	case *SetCodeTx:
		recoveryID, err := yParityToRecoveryID(v)
		if err != nil {
			return Address{}, err
		}
		return recoverFromHash(SigningHashSetCode(inner), r, s, recoveryID)
	default:
		return Address{}, &TransactionTypeError{Type: tx.Type()}
	}
}
