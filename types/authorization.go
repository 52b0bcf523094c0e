package types

import "github.com/holiman/uint256"

// setCodeMagic is the EIP-7702 domain-separation byte prepended to an
// authorization tuple before hashing, distinct from any transaction type
// tag so an authorization signature can never be replayed as a transaction
// signature or vice versa.
const setCodeMagic = 0x05

// Authorization is an EIP-7702 delegation tuple: `(chain_id, address,
// nonce, y_parity, r, s)`. A SetCodeTx carries a list of these, and since
// the list participates in the outer transaction's RLP encoding and hash,
// each tuple needs its own well-defined RLP shape and signing hash just
// like a transaction does.
type Authorization struct {
	ChainID *uint256.Int
	Address Address
	Nonce   uint64
	YParity *uint256.Int
	R       *uint256.Int
	S       *uint256.Int
}

// authorizationSigningFields is the RLP-list payload hashed with the
// setCodeMagic prefix: (chain_id, address, nonce). The signature itself
// (y_parity, r, s) is never part of its own preimage.
type authorizationSigningFields struct {
	ChainID *uint256.Int
	Address Address
	Nonce   uint64
}

// AuthorizationSigningHash returns the EIP-7702 preimage hash for auth:
// keccak256(MAGIC || rlp([chain_id, address, nonce])).
func AuthorizationSigningHash(auth Authorization) Hash32 {
	return prefixedRlpHash(setCodeMagic, authorizationSigningFields{
		ChainID: auth.ChainID,
		Address: auth.Address,
		Nonce:   auth.Nonce,
	})
}

// RecoverAuthority recovers the EOA that produced auth's signature, using
// the same secp256k1 recovery path as transaction sender recovery
// (RecoverSender in signer.go): y_parity selects the recovery id, and r and
// s are checked against the same low-s and range bounds (validateRS)
// before recovery.
func RecoverAuthority(auth Authorization) (Address, error) {
	recoveryID, err := yParityToRecoveryID(auth.YParity)
	if err != nil {
		return Address{}, err
	}
	if err := validateRS(auth.R, auth.S); err != nil {
		return Address{}, err
	}
	return recoverFromHash(AuthorizationSigningHash(auth), auth.R, auth.S, recoveryID)
}
