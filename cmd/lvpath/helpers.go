package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/gridgraph"
)

// mapFlags are shared by every subcommand that reads a map.
type mapFlags struct {
	path string
	conn int
}

func (f *mapFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.path, "map", "", "map file (.txt or .yaml) (required)")
	fl.IntVar(&f.conn, "conn", 4, "connectivity for text maps: 4 or 8")
	_ = cmd.MarkFlagRequired("map")
}

func (f *mapFlags) load() (*gridgraph.GridGraph, error) {
	var conn gridgraph.Connectivity
	switch f.conn {
	case 4:
		conn = gridgraph.Conn4
	case 8:
		conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("--conn must be 4 or 8, got %d", f.conn)
	}
	gg, err := gridgraph.LoadFile(f.path, conn)
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	return gg, nil
}

// newLogger builds the command logger: text on w at the --log-level, tagged
// with a fresh run ID and the subcommand name.
func newLogger(w io.Writer, cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(rootFlags.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown --log-level %q", rootFlags.logLevel)
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(h).With("run_id", uuid.NewString(), "cmd", cmd.Name()), nil
}
