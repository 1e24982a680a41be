package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/memgraph"
	"github.com/gogpu/memgraph/frame"
	"github.com/gogpu/memgraph/frameloop"
	"github.com/gogpu/memgraph/interact"
	"github.com/gogpu/memgraph/internal/snapshot"
	"github.com/gogpu/memgraph/style"
	"github.com/gogpu/memgraph/surface"
)

var version = "0.1.0"

// globals holds the persistent flags.
type globals struct {
	stylePath string
	logLevel  string
	width     float64
	height    float64
	dpr       float64
	fit       bool
}

func rootCmd() *cobra.Command {
	g := &globals{}
	cmd := &cobra.Command{
		Use:           "memgraph",
		Short:         "Render memory-graph snapshots",
		Long:          brand.Sprint("memgraph") + " draws document and memory graphs to PNG\n" + subtle.Sprint("Snapshots are JSON files of positioned nodes and edges"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogger(g.logLevel)
		},
	}
	cmd.SetVersionTemplate("memgraph {{ .Version }}\n")

	f := cmd.PersistentFlags()
	f.StringVar(&g.stylePath, "style", os.Getenv("MEMGRAPH_STYLE"), "style file (.yaml or .toml)")
	f.StringVar(&g.logLevel, "log-level", envOr("MEMGRAPH_LOG_LEVEL", "warn"), "log level: debug, info, warn or error")
	f.Float64Var(&g.width, "width", 0, "viewport width, overriding the snapshot")
	f.Float64Var(&g.height, "height", 0, "viewport height, overriding the snapshot")
	f.Float64Var(&g.dpr, "dpr", 0, "device pixel ratio, overriding the snapshot")
	f.BoolVar(&g.fit, "fit", false, "pan and zoom so every node is visible")

	cmd.AddCommand(
		renderCmd(g),
		hitCmd(g),
		watchCmd(g),
	)
	cmd.SetErr(os.Stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		bad.Fprintf(c.ErrOrStderr(), "memgraph: %v\n", err)
		return err
	})
	return cmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setupLogger(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("memgraph: bad log level %q: %w", level, err)
	}
	memgraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func (g *globals) style() (style.Style, error) {
	if g.stylePath == "" {
		return style.Default(), nil
	}
	return style.LoadFile(g.stylePath)
}

// props loads the snapshot at path and applies the flag overrides. The
// simulation flag is cleared: a snapshot is a still frame.
func (g *globals) props(path string) (memgraph.Props, error) {
	f, err := snapshot.Load(path)
	if err != nil {
		return memgraph.Props{}, err
	}
	p := f.Props()
	if g.width > 0 {
		p.Viewport.Width = g.width
	}
	if g.height > 0 {
		p.Viewport.Height = g.height
	}
	if p.Viewport.Width <= 0 || p.Viewport.Height <= 0 {
		p.Viewport.Width, p.Viewport.Height = 800, 600
	}
	if g.dpr > 0 {
		p.DPR = g.dpr
	}
	if g.fit {
		if v, ok := interact.Fit(p.Nodes, p.Viewport.Width, p.Viewport.Height, 0); ok {
			p.Viewport.PanX, p.Viewport.PanY, p.Viewport.Zoom = v.PanX, v.PanY, v.Zoom
		}
	}
	p.Interaction.SimulationActive = false
	return p, nil
}

// engine creates an engine drawing onto an image backing.
func (g *globals) engine(frames frameloop.Requester, opts ...memgraph.Option) (*memgraph.Engine, *surface.Image, error) {
	st, err := g.style()
	if err != nil {
		return nil, nil, err
	}
	b, err := surface.OpenByName("image", surface.Options{Width: 1, Height: 1})
	if err != nil {
		return nil, nil, err
	}
	backing, ok := b.(*surface.Image)
	if !ok {
		_ = b.Close()
		return nil, nil, fmt.Errorf("memgraph: image backend returned %T", b)
	}
	if frames == nil {
		frames = frameloop.NewManual(time.Now())
	}
	opts = append([]memgraph.Option{
		memgraph.WithStyle(st),
		memgraph.WithFrameOptions(frame.WithBackground()),
	}, opts...)
	eng, err := memgraph.New(backing, frames, nil, opts...)
	if err != nil {
		_ = backing.Close()
		return nil, nil, err
	}
	return eng, backing, nil
}
