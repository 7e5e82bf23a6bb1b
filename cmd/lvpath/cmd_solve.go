package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/astar"
)

var solveFlags struct {
	mapFlags
	maxExpansions int
	render        bool
	json          bool
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a minimum-cost path from S to G",
	RunE:  runSolve,
}

func init() {
	solveFlags.register(solveCmd)
	f := solveCmd.Flags()
	f.IntVar(&solveFlags.maxExpansions, "max-expansions", 0, "stop after N expansions (0 = unlimited)")
	f.BoolVar(&solveFlags.render, "render", false, "draw the path over the map")
	f.BoolVar(&solveFlags.json, "json", false, "print the result as JSON")
}

// solveOutput is the --json document.
type solveOutput struct {
	Found    bool          `json:"found"`
	Cost     float64       `json:"cost"`
	Expanded int           `json:"expanded"`
	Path     []astar.Point `json:"path"`
}

// errNoPath makes `solve` exit non-zero when the goal is unreachable.
var errNoPath = errors.New("no path from start to goal")

func runSolve(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(cmd.ErrOrStderr(), cmd)
	if err != nil {
		return err
	}
	gg, err := solveFlags.load()
	if err != nil {
		return err
	}
	log.Info("map loaded", "path", solveFlags.path, "width", gg.Width, "height", gg.Height, "conn", gg.Conn)

	res, err := astar.FindPath[astar.Point](gg, gg.Heuristic(),
		astar.WithContext(cmd.Context()),
		astar.WithMaxExpansions(solveFlags.maxExpansions),
		astar.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if !res.Found && !gg.SameComponent(gg.Start, gg.Goal) {
		log.Info("goal lies in a different component than start", "start", gg.Start, "goal", gg.Goal)
	}

	out := cmd.OutOrStdout()
	switch {
	case solveFlags.json:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err = enc.Encode(solveOutput{Found: res.Found, Cost: res.Cost, Expanded: res.Expanded, Path: res.Path}); err != nil {
			return err
		}
	case res.Found:
		fmt.Fprintf(out, "cost:     %g\n", res.Cost)
		fmt.Fprintf(out, "length:   %d\n", len(res.Path))
		fmt.Fprintf(out, "expanded: %d\n", res.Expanded)
		fmt.Fprintf(out, "path:     %v\n", res.Path)
	}
	if solveFlags.render && !solveFlags.json {
		fmt.Fprint(out, gg.Render(res.Path))
	}
	if !res.Found {
		return errNoPath
	}
	return nil
}
