package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/memgraph/surface"
)

func renderCmd(g *globals) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <snapshot.json>",
		Short: "Render one frame to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := g.props(args[0])
			if err != nil {
				return fail(cmd, err)
			}
			eng, backing, err := g.engine(nil)
			if err != nil {
				return fail(cmd, err)
			}
			defer eng.Close()

			if err := eng.Update(p); err != nil {
				return fail(cmd, err)
			}
			if err := writePNG(backing, output); err != nil {
				return fail(cmd, err)
			}
			m := eng.Surface()
			good.Fprintf(cmd.OutOrStdout(), "wrote %s ", output)
			subtle.Fprintf(cmd.OutOrStdout(), "(%dx%d px, %d nodes, %d edges)\n", m.PixelWidth, m.PixelHeight, len(p.Nodes), len(p.Edges))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "graph.png", "output file")
	return cmd
}

func writePNG(b *surface.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func fail(cmd *cobra.Command, err error) error {
	bad.Fprintf(cmd.ErrOrStderr(), "memgraph: %v\n", err)
	return err
}
