package types

import "github.com/holiman/uint256"

// LegacyTx is the pre-EIP-2718 transaction shape: a bare RLP list, no type
// tag, no access list. Its `v` component doubles as the replay-protection
// signal: either {27,28} (unprotected) or {2*chain_id+35,36} (EIP-155).
type LegacyTx struct {
	Nonce    uint64
	GasPrice *uint256.Int
	Gas      uint64
	To       To
	Value    *uint256.Int
	Data     []byte
	V        *uint256.Int
	R        *uint256.Int
	S        *uint256.Int
}

func (tx *LegacyTx) txType() byte { return LegacyTxType }

func (tx *LegacyTx) copy() TxData {
	cpy := &LegacyTx{
		Nonce: tx.Nonce,
		Gas:   tx.Gas,
		To:    tx.To,
		Data:  append([]byte(nil), tx.Data...),
	}
	copySetUint256(&cpy.GasPrice, tx.GasPrice)
	copySetUint256(&cpy.Value, tx.Value)
	copySetUint256(&cpy.V, tx.V)
	copySetUint256(&cpy.R, tx.R)
	copySetUint256(&cpy.S, tx.S)
	return cpy
}

// chainID returns zero for an unprotected legacy transaction, and the chain
// id recovered from v for an EIP-155-protected one — the legacy variant is
// the only one whose chain id is derived rather than stored.
func (tx *LegacyTx) chainID() *uint256.Int {
	return DeriveLegacyChainID(tx.V)
}

func (tx *LegacyTx) nonce() uint64            { return tx.Nonce }
func (tx *LegacyTx) gas() uint64              { return tx.Gas }
func (tx *LegacyTx) to() To                   { return tx.To }
func (tx *LegacyTx) value() *uint256.Int      { return tx.Value }
func (tx *LegacyTx) data() []byte             { return tx.Data }
func (tx *LegacyTx) hasAccessList() bool      { return false }
func (tx *LegacyTx) accessList() AccessList   { return nil }
func (tx *LegacyTx) gasPrice() *uint256.Int   { return tx.GasPrice }
func (tx *LegacyTx) gasTipCap() *uint256.Int  { return tx.GasPrice }
func (tx *LegacyTx) gasFeeCap() *uint256.Int  { return tx.GasPrice }

func (tx *LegacyTx) rawSignatureValues() (v, r, s *uint256.Int) {
	return tx.V, tx.R, tx.S
}

func (tx *LegacyTx) setSignatureValues(chainID, v, r, s *uint256.Int) {
	tx.V, tx.R, tx.S = v, r, s
}

// DeriveLegacyChainID recovers the chain id encoded into a legacy v value
// under EIP-155, or zero if v indicates an unprotected transaction ({27,28}).
// EIP-155 v values fit in a single byte for any chain id below ~110
// (mainnet included, where v is 37 or 38), so bit width cannot be used to
// tell the two cases apart — only an exact match against {27,28} does.
func DeriveLegacyChainID(v *uint256.Int) *uint256.Int {
	if isLegacyUnprotectedV(v) || v == nil {
		return new(uint256.Int)
	}
	// v = chain_id*2 + 35 + y_parity  =>  chain_id = (v - 35) / 2
	chainID := new(uint256.Int).Sub(v, uint256.NewInt(35))
	chainID.Rsh(chainID, 1)
	return chainID
}

func copySetUint256(dst **uint256.Int, src *uint256.Int) {
	if src == nil {
		*dst = new(uint256.Int)
		return
	}
	*dst = new(uint256.Int).Set(src)
}
