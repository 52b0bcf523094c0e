package types

import "github.com/holiman/uint256"

// BlobTx is the EIP-4844 (type 0x03) transaction: a FeeMarket transaction
// that additionally carries a blob fee cap and the versioned hashes of the
// blobs it references. `To` is always a concrete address: blob transactions
// cannot create contracts.
//
// The sidecar (the blobs/commitments/proofs themselves) is a network-layer
// concept, not part of this core's consensus model, and is intentionally
// not represented here.
type BlobTx struct {
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
	YParity             *uint256.Int
	R                   *uint256.Int
	S                   *uint256.Int
}

func (tx *BlobTx) txType() byte { return BlobTxType }

func (tx *BlobTx) copy() TxData {
	cpy := &BlobTx{
		Nonce:               tx.Nonce,
		Gas:                 tx.Gas,
		To:                  tx.To,
		Data:                append([]byte(nil), tx.Data...),
		AccessList:          copyAccessList(tx.AccessList),
		BlobVersionedHashes: append([]VersionedHash(nil), tx.BlobVersionedHashes...),
	}
	copySetUint256(&cpy.ChainID, tx.ChainID)
	copySetUint256(&cpy.GasTipCap, tx.GasTipCap)
	copySetUint256(&cpy.GasFeeCap, tx.GasFeeCap)
	copySetUint256(&cpy.Value, tx.Value)
	copySetUint256(&cpy.MaxFeePerBlobGas, tx.MaxFeePerBlobGas)
	copySetUint256(&cpy.YParity, tx.YParity)
	copySetUint256(&cpy.R, tx.R)
	copySetUint256(&cpy.S, tx.S)
	return cpy
}

func (tx *BlobTx) chainID() *uint256.Int   { return tx.ChainID }
func (tx *BlobTx) nonce() uint64           { return tx.Nonce }
func (tx *BlobTx) gas() uint64             { return tx.Gas }
func (tx *BlobTx) to() To                  { return AddressTo(tx.To) }
func (tx *BlobTx) value() *uint256.Int     { return tx.Value }
func (tx *BlobTx) data() []byte            { return tx.Data }
func (tx *BlobTx) hasAccessList() bool     { return true }
func (tx *BlobTx) accessList() AccessList  { return tx.AccessList }
func (tx *BlobTx) gasPrice() *uint256.Int  { return tx.GasFeeCap }
func (tx *BlobTx) gasTipCap() *uint256.Int { return tx.GasTipCap }
func (tx *BlobTx) gasFeeCap() *uint256.Int { return tx.GasFeeCap }

func (tx *BlobTx) rawSignatureValues() (v, r, s *uint256.Int) {
	return tx.YParity, tx.R, tx.S
}

func (tx *BlobTx) setSignatureValues(chainID, v, r, s *uint256.Int) {
	if chainID != nil {
		copySetUint256(&tx.ChainID, chainID)
	}
	tx.YParity, tx.R, tx.S = v, r, s
}
