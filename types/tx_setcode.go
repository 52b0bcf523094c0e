package types

import "github.com/holiman/uint256"

// SetCodeTx is the EIP-7702 (type 0x04) transaction: a FeeMarket transaction
// that additionally carries a list of delegation authorizations. `To` is
// always a concrete address, matching Blob's restriction, and `Nonce` is
// bounded to 64 bits per EIP-2681.
type SetCodeTx struct {
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
	YParity        *uint256.Int
	R              *uint256.Int
	S              *uint256.Int
}

func (tx *SetCodeTx) txType() byte { return SetCodeTxType }

func (tx *SetCodeTx) copy() TxData {
	cpy := &SetCodeTx{
		Nonce:          tx.Nonce,
		Gas:            tx.Gas,
		To:             tx.To,
		Data:           append([]byte(nil), tx.Data...),
		AccessList:     copyAccessList(tx.AccessList),
		Authorizations: append([]Authorization(nil), tx.Authorizations...),
	}
	copySetUint256(&cpy.ChainID, tx.ChainID)
	copySetUint256(&cpy.GasTipCap, tx.GasTipCap)
	copySetUint256(&cpy.GasFeeCap, tx.GasFeeCap)
	copySetUint256(&cpy.Value, tx.Value)
	copySetUint256(&cpy.YParity, tx.YParity)
	copySetUint256(&cpy.R, tx.R)
	copySetUint256(&cpy.S, tx.S)
	return cpy
}

func (tx *SetCodeTx) chainID() *uint256.Int   { return tx.ChainID }
func (tx *SetCodeTx) nonce() uint64           { return tx.Nonce }
func (tx *SetCodeTx) gas() uint64             { return tx.Gas }
func (tx *SetCodeTx) to() To                  { return AddressTo(tx.To) }
func (tx *SetCodeTx) value() *uint256.Int     { return tx.Value }
func (tx *SetCodeTx) data() []byte            { return tx.Data }
func (tx *SetCodeTx) hasAccessList() bool     { return true }
func (tx *SetCodeTx) accessList() AccessList  { return tx.AccessList }
func (tx *SetCodeTx) gasPrice() *uint256.Int  { return tx.GasFeeCap }
func (tx *SetCodeTx) gasTipCap() *uint256.Int { return tx.GasTipCap }
func (tx *SetCodeTx) gasFeeCap() *uint256.Int { return tx.GasFeeCap }

func (tx *SetCodeTx) rawSignatureValues() (v, r, s *uint256.Int) {
	return tx.YParity, tx.R, tx.S
}

func (tx *SetCodeTx) setSignatureValues(chainID, v, r, s *uint256.Int) {
	if chainID != nil {
		copySetUint256(&tx.ChainID, chainID)
	}
	tx.YParity, tx.R, tx.S = v, r, s
}
