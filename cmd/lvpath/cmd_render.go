package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderFlags mapFlags

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print a map as parsed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		gg, err := renderFlags.load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%dx%d conn=%s start=%v goal=%v\n", gg.Width, gg.Height, gg.Conn, gg.Start, gg.Goal)
		fmt.Fprint(out, gg.Render(nil))
		return nil
	},
}

func init() {
	renderFlags.register(renderCmd)
}
