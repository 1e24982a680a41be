package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func hitCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "hit <snapshot.json> <x> <y>",
		Short: "Print the node under a screen point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fail(cmd, fmt.Errorf("bad x: %w", err))
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fail(cmd, fmt.Errorf("bad y: %w", err))
			}
			p, err := g.props(args[0])
			if err != nil {
				return fail(cmd, err)
			}
			eng, _, err := g.engine(nil)
			if err != nil {
				return fail(cmd, err)
			}
			defer eng.Close()
			if err := eng.Update(p); err != nil {
				return fail(cmd, err)
			}

			out := cmd.OutOrStdout()
			id := eng.HitTest(x, y)
			if id == "" {
				warn.Fprintln(out, "no node")
				return nil
			}
			good.Fprintln(out, id)
			return nil
		},
	}
}
