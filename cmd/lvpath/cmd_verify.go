package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/dijkstra"
)

var verifyFlags mapFlags

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the A* path cost against exhaustive Dijkstra search",
	RunE:  runVerify,
}

func init() {
	verifyFlags.register(verifyCmd)
}

var errMismatch = errors.New("A* and Dijkstra disagree")

func runVerify(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(cmd.ErrOrStderr(), cmd)
	if err != nil {
		return err
	}
	gg, err := verifyFlags.load()
	if err != nil {
		return err
	}

	res, err := astar.FindPath[astar.Point](gg, gg.Heuristic(), astar.WithLogger(log))
	if err != nil {
		return fmt.Errorf("astar: %w", err)
	}
	_, want, found, err := dijkstra.Solve[astar.Point](gg)
	if err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}
	log.Info("searches finished", "astar_cost", res.Cost, "astar_found", res.Found,
		"dijkstra_cost", want, "dijkstra_found", found, "astar_expanded", res.Expanded)

	out := cmd.OutOrStdout()
	if found != res.Found || math.Abs(want-res.Cost) > 1e-9 {
		fmt.Fprintf(out, "MISMATCH astar=(found=%t cost=%g) dijkstra=(found=%t cost=%g)\n", res.Found, res.Cost, found, want)
		return errMismatch
	}
	if res.Found {
		if _, err = gg.PathCost(res.Path); err != nil {
			return fmt.Errorf("astar returned an invalid path: %w", err)
		}
	}
	fmt.Fprintf(out, "OK found=%t cost=%g\n", found, want)
	return nil
}
