package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dylan/matchdrag/config"
	"github.com/dylan/matchdrag/logging"
	"github.com/dylan/matchdrag/matching"
	"github.com/dylan/matchdrag/tui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "matchdrag",
	Short: "Drag-and-drop matching exercise in the terminal",
	Long: `matchdrag shows a matching exercise: a pool of choices on the right and a
column of response slots on the left. Drag choices into slots with the mouse
or the keyboard, drag answers back out, or reorder either column.`,
	SilenceUsage: true,
	RunE:         runExercise,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ~/.config/matchdrag/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(replayCmd, initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExercise(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store, err := matching.New(
		cfg.ResolvedChoiceCount(),
		cfg.ResolvedSlotCount(),
		cfg.ResolvedPlaceholderCount(),
		matching.WithShuffleSeed(cfg.Exercise.ShuffleSeed),
	)
	if err != nil {
		return err
	}

	app := tui.NewApp(cfg, store, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
