package main

import (
	"github.com/TodoChain/todos-go-node/cmd/todos/cmd"
	"github.com/TodoChain/todos-go-node/cmd/utils"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.PersistentFlags().StringVar(&utils.TodosHome, "home-dir", "", "base dir (default is $HOME/.todos)")
	rootCmd.PersistentFlags().Bool("testnet", false, "use testnet chain id")

	rootCmd.AddCommand(
		cmd.ExportCommand,
		cmd.VerifyGenesisCommand,
		cmd.VersionCommand)

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
