// Command arena runs a headless creature fight at a fixed tick rate.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/config"
	"github.com/LilRicefield/saints-dragons/logging"
	"github.com/LilRicefield/saints-dragons/observe"
	"github.com/LilRicefield/saints-dragons/prefabs"
	"github.com/LilRicefield/saints-dragons/species"
	_ "github.com/LilRicefield/saints-dragons/species/lightning"
	_ "github.com/LilRicefield/saints-dragons/species/wyvern"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	ticks := flag.Int("ticks", -1, "override sim.max_ticks")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Log.WithError(err).Fatal("arena: config")
	}
	if *ticks >= 0 {
		cfg.Sim.MaxTicks = *ticks
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		logging.Log.WithError(err).Fatal("arena: run")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	prefabs.SetDir(cfg.Prefabs.Dir)
	if err := species.ReloadAll(); err != nil {
		return err
	}
	ability.Freeze()

	mp, shutdown, err := observe.InitProvider()
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logging.Log.WithError(err).Warn("arena: metrics shutdown")
		}
	}()
	metrics, err := observe.NewMetrics(mp)
	if err != nil {
		return err
	}

	m, err := newMatch(cfg.Sim.Seed, cfg.Sim.MaxTicks, metrics)
	if err != nil {
		return err
	}

	var w *prefabs.Watcher
	if cfg.Prefabs.Watch {
		if w, err = prefabs.NewWatcher(cfg.Prefabs.Dir, filepath.Join(cfg.Prefabs.Dir, "scripts")); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return tickLoop(ctx, m, cfg.Sim.TickInterval())
	})
	if w != nil {
		g.Go(func() error { return watch(ctx, w) })
	}
	if cfg.Metrics.Addr != "" {
		g.Go(func() error { return serveMetrics(ctx, cfg.Metrics.Addr) })
	}

	err = g.Wait()
	logging.Log.WithFields(m.summary()).Info("arena: match over")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func tickLoop(ctx context.Context, m *match, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if m.step() {
				return nil
			}
		}
	}
}

func watch(ctx context.Context, w *prefabs.Watcher) error {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Events:
			if !ok {
				return nil
			}
			names, err := species.ReloadFile(change.Name)
			logEntry := logging.Log.WithField("file", change.Name).WithField("kind", change.Kind.String())
			if err != nil {
				logEntry.WithError(err).Warn("arena: reload failed, keeping previous tuning")
				continue
			}
			if len(names) > 0 {
				logEntry.WithField("species", names).Info("arena: reloaded")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.Log.WithError(err).Warn("arena: watcher")
		}
	}
}

func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Log.WithField("addr", addr).Info("arena: serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
