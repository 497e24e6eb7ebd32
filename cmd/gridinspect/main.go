// Command gridinspect drives a gridbuf.Grid through a scripted sequence of
// operations read from a YAML config and prints the resulting screen, for
// manually poking at reflow/history behavior without writing Go.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nullterm/gridbuf"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var width, height, history int

	cmd := &cobra.Command{
		Use:   "gridinspect <config.yaml>",
		Short: "Run a scripted sequence of grid operations and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return fmt.Errorf("gridinspect: %w", err)
			}

			if cfg.Width > 0 {
				width = cfg.Width
			}
			if cfg.Height > 0 {
				height = cfg.Height
			}
			if cfg.History > 0 {
				history = cfg.History
			}

			runID := uuid.New()
			log.Printf("gridinspect: run %s: %dx%d, history %d, %d steps",
				runID, width, height, history, len(cfg.Steps))

			g := gridbuf.NewGrid(width, height, history)
			cursor := 0
			if err := runSteps(g, &cursor, cfg.Steps); err != nil {
				return fmt.Errorf("gridinspect: run %s: %w", runID, err)
			}

			printScreen(cmd, g)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&width, "width", 80, "initial column width")
	flags.IntVar(&height, "height", 24, "visible row count")
	flags.IntVar(&history, "history", 2000, "scrollback retention limit")

	return cmd
}

func printScreen(cmd *cobra.Command, g *gridbuf.Grid) {
	out := cmd.OutOrStdout()
	for row := g.HSize(); row < g.HSize()+g.SY(); row++ {
		fmt.Fprintln(out, g.StringCells(0, row, g.SX(), nil, false, false, true))
	}
}
