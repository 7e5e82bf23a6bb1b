// lvpath solves grid maps with A* search.
//
// Usage:
//
//	lvpath solve  --map <file> [--conn 4|8] [--max-expansions N] [--render] [--json]
//	lvpath verify --map <file> [--conn 4|8]
//	lvpath render --map <file> [--conn 4|8]
//
// Maps are plain text (one row per line) or YAML files with a "rows" list,
// written in the alphabet '#' wall, '.' open, '1'-'9' weighted, 'S' start, 'G' goal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "lvpath",
	Short: "Best-first path search on grid maps",
	Long:  "lvpath finds minimum-cost paths on grid maps with A* search\nand can check them against an exhaustive Dijkstra search.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
