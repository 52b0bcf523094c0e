package types

import "github.com/holiman/uint256"

// AccessListTx is the EIP-2930 (type 0x01) transaction: a legacy transaction
// plus an access list and an explicit chain id, signed with y_parity instead
// of a chain-id-folded v.
type AccessListTx struct {
	ChainID    *uint256.Int
	Nonce      uint64
	GasPrice   *uint256.Int
	Gas        uint64
	To         To
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	YParity    *uint256.Int
	R          *uint256.Int
	S          *uint256.Int
}

func (tx *AccessListTx) txType() byte { return AccessListTxType }

func (tx *AccessListTx) copy() TxData {
	cpy := &AccessListTx{
		Nonce:      tx.Nonce,
		Gas:        tx.Gas,
		To:         tx.To,
		Data:       append([]byte(nil), tx.Data...),
		AccessList: copyAccessList(tx.AccessList),
	}
	copySetUint256(&cpy.ChainID, tx.ChainID)
	copySetUint256(&cpy.GasPrice, tx.GasPrice)
	copySetUint256(&cpy.Value, tx.Value)
	copySetUint256(&cpy.YParity, tx.YParity)
	copySetUint256(&cpy.R, tx.R)
	copySetUint256(&cpy.S, tx.S)
	return cpy
}

func (tx *AccessListTx) chainID() *uint256.Int    { return tx.ChainID }
func (tx *AccessListTx) nonce() uint64            { return tx.Nonce }
func (tx *AccessListTx) gas() uint64              { return tx.Gas }
func (tx *AccessListTx) to() To                   { return tx.To }
func (tx *AccessListTx) value() *uint256.Int      { return tx.Value }
func (tx *AccessListTx) data() []byte             { return tx.Data }
func (tx *AccessListTx) hasAccessList() bool      { return true }
func (tx *AccessListTx) accessList() AccessList   { return tx.AccessList }
func (tx *AccessListTx) gasPrice() *uint256.Int   { return tx.GasPrice }
func (tx *AccessListTx) gasTipCap() *uint256.Int  { return tx.GasPrice }
func (tx *AccessListTx) gasFeeCap() *uint256.Int  { return tx.GasPrice }

func (tx *AccessListTx) rawSignatureValues() (v, r, s *uint256.Int) {
	return tx.YParity, tx.R, tx.S
}

func (tx *AccessListTx) setSignatureValues(chainID, v, r, s *uint256.Int) {
	if chainID != nil {
		copySetUint256(&tx.ChainID, chainID)
	}
	tx.YParity, tx.R, tx.S = v, r, s
}

func copyAccessList(al AccessList) AccessList {
	if al == nil {
		return nil
	}
	cpy := make(AccessList, len(al))
	for i, a := range al {
		cpy[i] = Access{
			Address: a.Address,
			Slots:   append([]Bytes32(nil), a.Slots...),
		}
	}
	return cpy
}
