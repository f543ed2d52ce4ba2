package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"okinoko-test_player/configuration"
	"okinoko-test_player/host"
	tplog "okinoko-test_player/log"
	"okinoko-test_player/player"
	tpbadger "okinoko-test_player/store/badger"
)

const (
	playerFuncName = "player"
	playerCmdDes   = "Operate local test players: create, turn, get."
)

var configPath string

// withHost loads the configuration, opens the store and runs fn against a
// host that is closed afterwards.
func withHost(cmd *cobra.Command, fn func(h *host.Host, config *configuration.Configuration) error) error {
	// Parsing of the command line is done so silence cmd usage
	cmd.SilenceUsage = true

	config, err := configuration.Load(configPath)
	if err != nil {
		return err
	}
	format, err := tplog.ParseLogFormat(config.Log.Format)
	if err != nil {
		return err
	}
	log, err := tplog.CreateMainLogger(config.Log.Level, format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	store, err := tpbadger.NewBadgerStore(log.Module("store"), config.Store.DataDir, config.Store.CacheSize)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("close store: %v", err)
		}
	}()

	return fn(host.NewHost(log.Module("host"), store), config)
}

func createCmd() *cobra.Command {
	var width, height, start uint32
	c := &cobra.Command{
		Use:   "create <id>",
		Short: "Creates a player instance.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHost(cmd, func(h *host.Host, config *configuration.Configuration) error {
				dims := player.Dimensions{Width: config.Grid.Width, Height: config.Grid.Height}
				if cmd.Flags().Changed("width") {
					dims.Width = width
				}
				if cmd.Flags().Changed("height") {
					dims.Height = height
				}
				creator, _ := os.Hostname()
				s, err := h.Create(args[0], creator, dims, start)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d counter=%d\n", args[0], s.Dimensions.Width, s.Dimensions.Height, s.Counter)
				return nil
			})
		},
	}
	flags := c.Flags()
	flags.Uint32VarP(&width, "width", "W", 0, "grid width (default from config)")
	flags.Uint32VarP(&height, "height", "H", 0, "grid height (default from config)")
	flags.Uint32VarP(&start, "start", "s", 0, "initial counter value")
	return c
}

func turnCmd() *cobra.Command {
	var count int
	c := &cobra.Command{
		Use:   "turn <id>",
		Short: "Plays turns and prints one x,y per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			return withHost(cmd, func(h *host.Host, _ *configuration.Configuration) error {
				coords, err := h.Turns(args[0], count)
				for _, c := range coords {
					fmt.Fprintf(cmd.OutOrStdout(), "%d,%d\n", c.X, c.Y)
				}
				return err
			})
		},
	}
	c.Flags().IntVarP(&count, "count", "n", 1, "number of turns to play")
	return c
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Prints the stored state of a player.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHost(cmd, func(h *host.Host, _ *configuration.Configuration) error {
				info, err := h.Get(args[0])
				if err != nil {
					return err
				}
				s := info.State
				fmt.Fprintf(cmd.OutOrStdout(), "id=%s creator=%s width=%d height=%d counter=%d\n",
					info.ID, info.Creator, s.Dimensions.Width, s.Dimensions.Height, s.Counter)
				return nil
			})
		},
	}
}

func PlayerCmd() *cobra.Command {
	playerCmd := &cobra.Command{
		Use:   playerFuncName,
		Short: playerCmdDes,
		Long:  playerCmdDes,
	}
	playerCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	playerCmd.AddCommand(createCmd(), turnCmd(), getCmd())
	return playerCmd
}
