package cmd

import (
	"github.com/TodoChain/todos-go-node/cmd/utils"
	"github.com/TodoChain/todos-go-node/config"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/TodoChain/todos-go-node/log"
	"github.com/TodoChain/todos-go-node/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	tmLog "github.com/tendermint/tendermint/libs/log"
)

var (
	cfg    *config.Config
	logger tmLog.Logger
)

var RootCmd = &cobra.Command{
	Use:   "todos",
	Short: "Todos Go Node",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		v := viper.New()
		v.SetConfigFile(utils.GetTodosConfigPath())
		cfg = config.GetConfig()

		if err := v.ReadInConfig(); err != nil {
			panic(err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			panic(err)
		}

		if cfg.KeepLastStates < 1 {
			panic("keep_last_states field should be greater than 0")
		}

		logger = log.NewLogger(cfg)

		isTestnet, _ := cmd.Flags().GetBool("testnet")
		if isTestnet {
			types.CurrentChainID = types.ChainTestnet
			version.Version += "-testnet"
		}
	},
}
