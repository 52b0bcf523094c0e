// Package params re-exports the handful of upstream go-ethereum protocol
// constants this core's intrinsic gas calculator actually consumes, rather
// than carrying the teacher's full protocol_params.go (SSTORE/EIP-2929
// costs, precompile gas tables, difficulty parameters, system contract
// addresses) unused into this repo.
package params

import eth "github.com/ethereum/go-ethereum/params"

const (
	// TxGas is the base intrinsic gas for a non-contract-creation transaction.
	TxGas = eth.TxGas

	// TxAccessListAddressGas and TxAccessListStorageKeyGas price an EIP-2930
	// access list entry, per address and per storage key respectively.
	TxAccessListAddressGas    = eth.TxAccessListAddressGas
	TxAccessListStorageKeyGas = eth.TxAccessListStorageKeyGas

	// TxTokenPerNonZeroByte and TxCostFloorPerToken are EIP-7623's calldata
	// token accounting and floor-cost-per-token constants.
	TxTokenPerNonZeroByte = eth.TxTokenPerNonZeroByte
	TxCostFloorPerToken   = eth.TxCostFloorPerToken

	// TxCreateCost is billed once per contract-creation transaction, on top
	// of TxGas. It carries the same value as the CREATE opcode's cost.
	TxCreateCost = eth.CreateGas
)
