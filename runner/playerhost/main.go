package main

import (
	"os"

	"github.com/spf13/cobra"

	"okinoko-test_player/cmd"
)

var mainCmd = &cobra.Command{Use: "playerhost"}

func main() {
	mainCmd.AddCommand(cmd.PlayerCmd())

	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
