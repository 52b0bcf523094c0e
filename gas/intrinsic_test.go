package gas

import (
	"bytes"
	"testing"

	"github.com/ethprague/txcore/types"
	"github.com/ethprague/txcore/vm"

	"github.com/holiman/uint256"
)

func legacyTx(data []byte, to types.To, gasLimit uint64) *types.Transaction {
	return types.NewTx(&types.LegacyTx{
		Nonce:    0,
		GasPrice: uint256.NewInt(1),
		Gas:      gasLimit,
		To:       to,
		Value:    uint256.NewInt(0),
		Data:     data,
	})
}

func TestIntrinsicCostBaseline(t *testing.T) {
	tx := legacyTx(nil, types.AddressTo(types.Address{}), 21000)
	cost := IntrinsicCost(tx)
	if cost.IntrinsicGas != 21000 {
		t.Fatalf("intrinsic gas = %d, want 21000", cost.IntrinsicGas)
	}
	if cost.CalldataFloorGasCost != 21000 {
		t.Fatalf("floor = %d, want 21000", cost.CalldataFloorGasCost)
	}
}

func TestIntrinsicCostFloorDominance(t *testing.T) {
	data := bytes.Repeat([]byte{0xff}, 100)
	tx := types.NewTx(&types.FeeMarketTx{
		ChainID:   uint256.NewInt(1),
		Nonce:     0,
		GasTipCap: uint256.NewInt(1),
		GasFeeCap: uint256.NewInt(1),
		Gas:       25000,
		To:        types.AddressTo(types.Address{0x01}),
		Value:     uint256.NewInt(0),
		Data:      data,
	})
	cost := IntrinsicCost(tx)
	if cost.IntrinsicGas != 22600 {
		t.Fatalf("intrinsic gas = %d, want 22600", cost.IntrinsicGas)
	}
	if cost.CalldataFloorGasCost != 25000 {
		t.Fatalf("floor = %d, want 25000", cost.CalldataFloorGasCost)
	}
	if _, err := Validate(tx); err != nil {
		t.Fatalf("Validate with gas=25000 should pass the floor exactly: %v", err)
	}
}

func TestIntrinsicCostCreation(t *testing.T) {
	tx := legacyTx([]byte{0x60, 0x01}, types.CreationTo(), 100000)
	cost := IntrinsicCost(tx)
	want := uint64(21000 + 2*4 + 32000 + vm.InitCodeCost(2))
	if cost.IntrinsicGas != want {
		t.Fatalf("intrinsic gas = %d, want %d", cost.IntrinsicGas, want)
	}
}

func TestValidateOversizedInitCode(t *testing.T) {
	data := make([]byte, 2*vm.MaxCodeSize+1)
	tx := legacyTx(data, types.CreationTo(), 50_000_000)
	_, err := Validate(tx)
	invalidErr, ok := err.(*types.InvalidTransactionError)
	if !ok || invalidErr.Reason != "Code size too large" {
		t.Fatalf("expected Code size too large, got %v", err)
	}
}

func TestValidateNonceTooHigh(t *testing.T) {
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    ^uint64(0),
		GasPrice: uint256.NewInt(1),
		Gas:      21000,
		To:       types.AddressTo(types.Address{0x01}),
		Value:    uint256.NewInt(0),
	})
	_, err := Validate(tx)
	invalidErr, ok := err.(*types.InvalidTransactionError)
	if !ok || invalidErr.Reason != "Nonce too high" {
		t.Fatalf("expected Nonce too high, got %v", err)
	}
}

func TestValidateInsufficientGas(t *testing.T) {
	tx := legacyTx(nil, types.AddressTo(types.Address{0x01}), 20999)
	_, err := Validate(tx)
	invalidErr, ok := err.(*types.InvalidTransactionError)
	if !ok || invalidErr.Reason != "Insufficient gas" {
		t.Fatalf("expected Insufficient gas, got %v", err)
	}
}

func TestGasMonotonicityInCalldata(t *testing.T) {
	prev := IntrinsicCost(legacyTx(nil, types.AddressTo(types.Address{0x01}), 21000)).IntrinsicGas
	data := []byte{}
	for i := 0; i < 16; i++ {
		data = append(data, byte(i))
		cur := IntrinsicCost(legacyTx(data, types.AddressTo(types.Address{0x01}), 21000)).IntrinsicGas
		if cur <= prev {
			t.Fatalf("appending byte %d did not strictly increase intrinsic gas: %d -> %d", i, prev, cur)
		}
		prev = cur
	}
}

func TestAccessListLinearity(t *testing.T) {
	withA := types.NewTx(&types.AccessListTx{
		ChainID:  uint256.NewInt(1),
		Gas:      21000,
		GasPrice: uint256.NewInt(1),
		To:       types.AddressTo(types.Address{0x01}),
		Value:    uint256.NewInt(0),
		AccessList: types.AccessList{
			{Address: types.Address{0xaa}, Slots: []types.Bytes32{{0x01}}},
		},
	})
	extraB := types.Access{Address: types.Address{0xbb}, Slots: []types.Bytes32{{0x01}, {0x02}}}
	withAB := types.NewTx(&types.AccessListTx{
		ChainID:    uint256.NewInt(1),
		Gas:        21000,
		GasPrice:   uint256.NewInt(1),
		To:         types.AddressTo(types.Address{0x01}),
		Value:      uint256.NewInt(0),
		AccessList: append(withA.AccessList(), extraB),
	})

	costA := IntrinsicCost(withA).IntrinsicGas
	costAB := IntrinsicCost(withAB).IntrinsicGas

	bCost := uint64(2400 + 1900*len(extraB.Slots))
	if costAB != costA+bCost {
		t.Fatalf("access-list linearity violated: costAB=%d costA=%d bCost=%d", costAB, costA, bCost)
	}
}
