package cmd

import (
	"os"
	"time"

	"github.com/TodoChain/todos-go-node/core/state"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tendermint/go-amino"
	db "github.com/tendermint/tm-db"
)

var ExportCommand = &cobra.Command{
	Use:   "export",
	Short: "Export blockchain state to a genesis snapshot",
	RunE:  export,
}

func init() {
	ExportCommand.Flags().Uint64("height", 0, "height to export at")
	ExportCommand.Flags().Bool("indent", false, "indent json output")
	ExportCommand.Flags().String("output", "genesis.json", "path to output file")
}

func export(cmd *cobra.Command, args []string) error {
	height, err := cmd.Flags().GetUint64("height")
	if err != nil {
		return err
	}

	indent, err := cmd.Flags().GetBool("indent")
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	logger.Info("Start exporting...", "height", height)

	ldb, err := db.NewGoLevelDB("state", cfg.DBDir())
	if err != nil {
		return errors.Wrap(err, "cannot load db")
	}

	currentState, err := state.NewCheckStateAtHeight(height, ldb)
	if err != nil {
		return errors.Wrapf(err, "cannot create state at height %d", height)
	}

	exportTimeStart := time.Now()
	appState := currentState.Export()
	logger.Info("State has been exported", "took", time.Since(exportTimeStart))

	appState.StartHeight = height

	if err := appState.Verify(); err != nil {
		return errors.Wrap(err, "exported state verification failed")
	}
	logger.Info("Verify state OK")

	var jsonBytes []byte
	if indent {
		jsonBytes, err = amino.NewCodec().MarshalJSONIndent(appState, "", "	")
	} else {
		jsonBytes, err = amino.NewCodec().MarshalJSON(appState)
	}
	if err != nil {
		return errors.Wrap(err, "cannot marshal state to json")
	}

	if err := os.WriteFile(output, jsonBytes, 0644); err != nil {
		return errors.Wrap(err, "cannot write genesis file")
	}

	logger.Info("Exported", "path", output)

	return nil
}
