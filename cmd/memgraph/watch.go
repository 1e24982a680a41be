package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/memgraph"
	"github.com/gogpu/memgraph/frameloop"
	"github.com/gogpu/memgraph/metrics"
	"github.com/gogpu/memgraph/surface"
)

const debounce = 100 * time.Millisecond

func watchCmd(g *globals) *cobra.Command {
	var (
		output      string
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "watch <snapshot.json>",
		Short: "Re-render whenever the snapshot changes",
		Long: "watch renders the snapshot, then re-renders it each time the file changes.\n" +
			"Frames whose render key did not change are skipped and not rewritten.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			w := &watcher{g: g, path: args[0], output: output, metricsAddr: metricsAddr, cmd: cmd}
			if err := w.run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "graph.png", "output file")
	cmd.Flags().StringVar(&metricsAddr, "metrics", os.Getenv("MEMGRAPH_METRICS_ADDR"), "serve Prometheus metrics on this address")
	return cmd
}

type watcher struct {
	g           *globals
	path        string
	output      string
	metricsAddr string
	cmd         *cobra.Command

	eng     *memgraph.Engine
	backing *surface.Image
	drawn   int
}

func (w *watcher) run(ctx context.Context) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	loop := frameloop.NewLoop(frameloop.DefaultInterval)
	eng, backing, err := w.g.engine(loop, memgraph.WithObserver(metrics.NewRecorder(reg)))
	if err != nil {
		return err
	}
	defer eng.Close()
	w.eng, w.backing = eng, backing

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	// Editors replace files on save, so watch the directory.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return loop.Run(gCtx)
	})

	g.Go(func() error {
		loop.Post(w.reload)
		return w.watch(gCtx, fw, loop)
	})

	if w.metricsAddr != "" {
		srv := &http.Server{
			Addr:              w.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			memgraph.Logger().Info("metrics: listening", slog.String("address", w.metricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	subtle.Fprintf(w.cmd.OutOrStdout(), "watching %s (ctrl-c to stop)\n", w.path)
	return g.Wait()
}

// watch posts a reload to the frame loop after the snapshot settles.
func (w *watcher) watch(ctx context.Context, fw *fsnotify.Watcher, loop *frameloop.Loop) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			loop.Post(w.reload)
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				timer.Reset(debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			memgraph.Logger().Warn("watch: fsnotify error", slog.String("error", err.Error()))
		}
	}
}

// reload runs on the frame loop goroutine.
func (w *watcher) reload() {
	out := w.cmd.OutOrStdout()
	p, err := w.g.props(w.path)
	if err != nil {
		bad.Fprintf(out, "%s  %v\n", time.Now().Format(time.TimeOnly), err)
		return
	}
	if err := w.eng.Update(p); err != nil {
		bad.Fprintf(out, "%s  %v\n", time.Now().Format(time.TimeOnly), err)
		return
	}
	s := w.eng.Stats()
	drawn := s.Rendered + s.Forced
	if drawn == w.drawn {
		subtle.Fprintf(out, "%s  unchanged\n", time.Now().Format(time.TimeOnly))
		return
	}
	w.drawn = drawn
	if err := writePNG(w.backing, w.output); err != nil {
		bad.Fprintf(out, "%s  %v\n", time.Now().Format(time.TimeOnly), err)
		return
	}
	good.Fprintf(out, "%s  wrote %s (%d nodes)\n", time.Now().Format(time.TimeOnly), w.output, len(p.Nodes))
}
