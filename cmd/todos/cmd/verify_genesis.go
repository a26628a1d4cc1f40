package cmd

import (
	"os"

	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tendermint/go-amino"
)

var VerifyGenesisCommand = &cobra.Command{
	Use:   "verify-genesis",
	Short: "Check a genesis snapshot against state invariants",
	RunE:  verifyGenesis,
}

func init() {
	VerifyGenesisCommand.Flags().String("genesis", "", "path to genesis file (default is the configured one)")
}

func verifyGenesis(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("genesis")
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.GenesisFile()
	}

	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var appState types.AppState
	if err := amino.NewCodec().UnmarshalJSON(jsonBytes, &appState); err != nil {
		return errors.Wrap(err, "cannot parse genesis file")
	}

	if err := appState.Verify(); err != nil {
		return errors.Wrap(err, "genesis verification failed")
	}

	logger.Info("Verify state OK", "path", path)

	return nil
}
