// Package eoa is the EOA-delegation collaborator boundary: EIP-7702
// authorization accounting bills a flat per-tuple cost here, without this
// core modeling account state or delegation resolution itself.
package eoa

// PerEmptyAccountCost is EIP-7702's PER_EMPTY_ACCOUNT_COST, billed once per
// authorization tuple in a SetCode transaction regardless of whether the
// authority account already exists — distinct from the teacher's
// params.TxAuthTupleGas (12500), which prices a different accounting model.
const PerEmptyAccountCost = 25000
