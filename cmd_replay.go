package main

import (
	"fmt"

	"github.com/dylan/matchdrag/config"
	"github.com/dylan/matchdrag/logging"
	"github.com/dylan/matchdrag/replay"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay scripted drag gestures without a terminal UI",
	Long: `Feeds the drag events in a YAML script through a matching widget and
prints the board after every step. The script's exercise block overrides
the config's exercise section. Steps with an "expect" line fail the
command when the board does not match.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	return replay.Run(cmd.OutOrStdout(), script, cfg, logger)
}
