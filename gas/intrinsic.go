// Package gas implements the EIP-7623 intrinsic gas calculator and
// pre-execution transaction validation. It is pure: no logging, no clocks,
// no shared state, matching the teacher's core/state_transition.go-style
// IntrinsicGas helper but scoped to the intrinsic-cost computation alone.
package gas

import (
	"github.com/ethprague/txcore/eoa"
	"github.com/ethprague/txcore/params"
	"github.com/ethprague/txcore/types"
	"github.com/ethprague/txcore/vm"

	"github.com/holiman/uint256"
)

// Cost is the pair (intrinsic_gas, calldata_floor_gas_cost) returned by
// IntrinsicCost and Validate: the EIP-7623 floor and the classic
// accumulated intrinsic gas, whichever the caller ultimately charges.
type Cost struct {
	IntrinsicGas         uint64
	CalldataFloorGasCost uint64
}

// maxUint64 clamps an intermediate uint256 result that overflows 64 bits,
// rather than silently wrapping it. Running the accumulation in uint256
// means an adversarial calldata length can't wrap a 64-bit accumulator
// back into a small, accepted gas figure.
func maxUint64(x *uint256.Int) uint64 {
	if !x.IsUint64() {
		return ^uint64(0)
	}
	return x.Uint64()
}

// IntrinsicCost computes the EIP-7623 calldata floor cost alongside the
// classic intrinsic gas accumulation (base, calldata, contract creation,
// access list, EIP-7702 authorizations). All arithmetic runs in uint256 so
// that a maximally padded or adversarially large transaction cannot
// overflow a 64-bit accumulator before clamping at the end. It never
// rejects a transaction on its own; Validate layers the gas-limit and
// structural checks on top of it.
func IntrinsicCost(tx *types.Transaction) Cost {
	data := tx.Data()

	var zeroBytes int
	for _, b := range data {
		if b == 0 {
			zeroBytes++
		}
	}
	nonZeroBytes := len(data) - zeroBytes

	tokensInCalldata := uint256.NewInt(uint64(zeroBytes))
	tokensInCalldata.Add(tokensInCalldata, new(uint256.Int).Mul(uint256.NewInt(4), uint256.NewInt(uint64(nonZeroBytes))))

	calldataFloorGasCost := new(uint256.Int).Mul(tokensInCalldata, uint256.NewInt(params.TxCostFloorPerToken))
	calldataFloorGasCost.AddUint64(calldataFloorGasCost, params.TxGas)

	dataCost := new(uint256.Int).Mul(tokensInCalldata, uint256.NewInt(params.TxTokenPerNonZeroByte))

	createCost := new(uint256.Int)
	if tx.To().IsCreation() {
		createCost.AddUint64(createCost, params.TxCreateCost+vm.InitCodeCost(len(data)))
	}

	accessListCost := new(uint256.Int)
	for _, a := range tx.AccessList() {
		entry := new(uint256.Int).Mul(uint256.NewInt(uint64(len(a.Slots))), uint256.NewInt(params.TxAccessListStorageKeyGas))
		entry.AddUint64(entry, params.TxAccessListAddressGas)
		accessListCost.Add(accessListCost, entry)
	}

	authCost := new(uint256.Int)
	if auths := tx.Authorizations(); auths != nil {
		authCost.Mul(uint256.NewInt(eoa.PerEmptyAccountCost), uint256.NewInt(uint64(len(auths))))
	}

	intrinsicGas := new(uint256.Int).AddUint64(new(uint256.Int), params.TxGas)
	intrinsicGas.Add(intrinsicGas, dataCost)
	intrinsicGas.Add(intrinsicGas, createCost)
	intrinsicGas.Add(intrinsicGas, accessListCost)
	intrinsicGas.Add(intrinsicGas, authCost)

	return Cost{
		IntrinsicGas:         maxUint64(intrinsicGas),
		CalldataFloorGasCost: maxUint64(calldataFloorGasCost),
	}
}

// Validate layers the structural pre-execution checks (gas limit, nonce
// bound, init code size) on top of IntrinsicCost, returning the same Cost
// or an error identifying which invariant failed.
func Validate(tx *types.Transaction) (Cost, error) {
	cost := IntrinsicCost(tx)

	required := cost.IntrinsicGas
	if cost.CalldataFloorGasCost > required {
		required = cost.CalldataFloorGasCost
	}
	if required > tx.Gas() {
		return cost, &types.InvalidTransactionError{Reason: "Insufficient gas"}
	}

	if tx.Nonce() >= ^uint64(0) {
		return cost, &types.InvalidTransactionError{Reason: "Nonce too high"}
	}

	if tx.To().IsCreation() && len(tx.Data()) > 2*vm.MaxCodeSize {
		return cost, &types.InvalidTransactionError{Reason: "Code size too large"}
	}

	return cost, nil
}
