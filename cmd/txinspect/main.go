// Command txinspect decodes a hex-encoded transaction envelope and prints
// its type, intrinsic gas, calldata floor cost and recovered sender. It is
// the only place in this repository allowed to log or read process
// configuration: the types/gas/vm/eoa packages stay pure.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/ethprague/txcore/gas"
	"github.com/ethprague/txcore/types"
)

var chainIDFlag = &cli.Uint64Flag{
	Name:  "chain-id",
	Value: 1,
	Usage: "chain id used to recover the sender of a legacy EIP-155 transaction",
}

func main() {
	app := &cli.App{
		Name:  "txinspect",
		Usage: "decode and inspect a Prague-era transaction envelope",
		Flags: []cli.Flag{chainIDFlag},
		Args:  true,
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Crit("txinspect failed", "error", err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: txinspect [--chain-id N] <hex-encoded envelope>")
	}
	raw := strings.TrimPrefix(c.Args().First(), "0x")
	encoded, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("decoding hex envelope: %w", err)
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(encoded); err != nil {
		log.Error("failed to decode transaction", "error", err)
		return err
	}

	cost, err := gas.Validate(tx)
	if err != nil {
		log.Warn("transaction fails validation", "error", err)
	}

	chainID := uint256.NewInt(c.Uint64(chainIDFlag.Name))
	sender, err := types.RecoverSender(chainID, tx)
	if err != nil {
		log.Error("failed to recover sender", "error", err)
		return err
	}

	log.Info("decoded transaction",
		"type", tx.Type(),
		"hash", tx.Hash(),
		"sender", sender,
		"intrinsicGas", cost.IntrinsicGas,
		"calldataFloorGasCost", cost.CalldataFloorGasCost,
		"nonce", tx.Nonce(),
		"to", tx.To().String(),
	)
	return nil
}
