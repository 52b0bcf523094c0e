// Package vm is the EVM-interpreter collaborator boundary: the transaction
// core bills init-code cost and the contract-size ceiling, but does not
// itself execute bytecode. It mirrors the boundary the teacher draws at
// core/vm without importing the interpreter, precompiles or
// gas-accounting machinery that live there.
package vm

import "github.com/ethereum/go-ethereum/params"

// MaxCodeSize is the EIP-170 contract code size ceiling. Creation
// transactions whose init code exceeds twice this bound are rejected by
// the intrinsic gas calculator's "Code size too large" check.
const MaxCodeSize = params.MaxCodeSize

// InitCodeCost bills EIP-3860 init-code word cost: InitCodeWordGas per
// 32-byte word of init code, rounded up.
func InitCodeCost(length int) uint64 {
	words := (uint64(length) + 31) / 32
	return words * params.InitCodeWordGas
}
