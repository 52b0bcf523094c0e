package types

import "github.com/holiman/uint256"

// FeeMarketTx is the EIP-1559 (type 0x02) transaction: replaces a single gas
// price with a priority-fee tip cap and a fee cap.
type FeeMarketTx struct {
	ChainID    *uint256.Int
	Nonce      uint64
	GasTipCap  *uint256.Int
	GasFeeCap  *uint256.Int
	Gas        uint64
	To         To
	Value      *uint256.Int
	Data       []byte
	AccessList AccessList
	YParity    *uint256.Int
	R          *uint256.Int
	S          *uint256.Int
}

func (tx *FeeMarketTx) txType() byte { return FeeMarketTxType }

func (tx *FeeMarketTx) copy() TxData {
	cpy := &FeeMarketTx{
		Nonce:      tx.Nonce,
		Gas:        tx.Gas,
		To:         tx.To,
		Data:       append([]byte(nil), tx.Data...),
		AccessList: copyAccessList(tx.AccessList),
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

func (tx *FeeMarketTx) chainID() *uint256.Int   { return tx.ChainID }
func (tx *FeeMarketTx) nonce() uint64           { return tx.Nonce }
func (tx *FeeMarketTx) gas() uint64             { return tx.Gas }
func (tx *FeeMarketTx) to() To                  { return tx.To }
func (tx *FeeMarketTx) value() *uint256.Int     { return tx.Value }
func (tx *FeeMarketTx) data() []byte            { return tx.Data }
func (tx *FeeMarketTx) hasAccessList() bool     { return true }
func (tx *FeeMarketTx) accessList() AccessList  { return tx.AccessList }
func (tx *FeeMarketTx) gasPrice() *uint256.Int  { return tx.GasFeeCap }
func (tx *FeeMarketTx) gasTipCap() *uint256.Int { return tx.GasTipCap }
func (tx *FeeMarketTx) gasFeeCap() *uint256.Int { return tx.GasFeeCap }

func (tx *FeeMarketTx) rawSignatureValues() (v, r, s *uint256.Int) {
	return tx.YParity, tx.R, tx.S
}

func (tx *FeeMarketTx) setSignatureValues(chainID, v, r, s *uint256.Int) {
	if chainID != nil {
		copySetUint256(&tx.ChainID, chainID)
	}
	tx.YParity, tx.R, tx.S = v, r, s
}
