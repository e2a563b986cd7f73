package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictac/config"
	"tictac/experiments"
	"tictac/experiments/metrics"
	"tictac/meta"
	"tictac/server"
)

func main() {
	var over overrides
	cfgPath := flag.String("config", "", "Path to YAML config (defaults when empty or missing)")
	flag.IntVar(&over.ticks, "ticks", -1, "Number of layout ticks (overrides run.ticks)")
	flag.Func("seed", "Jitter seed (overrides run.seed; 0 seeds from the clock)", over.setSeed)
	outDir := flag.String("out", meta.OUT_DIR, "Directory for run records")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	watch := flag.Bool("watch", false, "Hot-reload physics parameters when the config file changes")
	experiment := flag.String("experiment", "layout", "Run to perform: layout, throughput or serve")
	serveAddr := flag.String("addr", ":8080", "Listen address of the frame server (serve only)")
	flag.Parse()

	// Loading logs too, so start from the default level and format.
	setupLogging(config.Default().Log)
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg := loader.Config()
	over.apply(cfg)
	setupLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *metricsAddr != "" {
		srv := serveMetrics(*metricsAddr)
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), meta.SHUTDOWN_TIMEOUT*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
	}

	var dir string
	switch *experiment {
	case "layout":
		dir, err = runLayout(ctx, loader, cfg, *outDir, *watch)
	case "serve":
		dir, err = serve(ctx, loader, cfg, *serveAddr, *outDir, *watch)
	case "throughput":
		dir, err = experiments.RunThroughputExperiment(ctx, cfg, *outDir, experiments.ThroughputCounts)
	default:
		log.Error().Msgf("unknown experiment %q", *experiment)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msgf("%s run failed", *experiment)
		os.Exit(1)
	}
	log.Info().Msgf("records stored in %s", dir)
}

// overrides holds command-line values that take precedence over the config
// file. A nil seed means -seed was not given.
type overrides struct {
	ticks int
	seed  *uint64
}

func (o *overrides) setSeed(value string) error {
	seed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return err
	}
	o.seed = &seed
	return nil
}

func (o overrides) apply(cfg *config.Config) {
	if o.ticks >= 0 {
		cfg.Run.Ticks = o.ticks
	}
	if o.seed != nil {
		cfg.Run.Seed = *o.seed
	}
}

func runLayout(ctx context.Context, loader *config.Loader, cfg *config.Config, outDir string, watch bool) (string, error) {
	layout, err := experiments.Prepare(cfg, metrics.NewCollector())
	if err != nil {
		return "", err
	}
	if watch {
		defer watchConfig(loader, layout)()
	}

	layout.Run(ctx, cfg.Run.Ticks)
	return layout.WriteRecords(outDir)
}

// serve streams frames to renderers until ctx is done.
func serve(ctx context.Context, loader *config.Loader, cfg *config.Config, addr, outDir string, watch bool) (string, error) {
	layout, err := experiments.Prepare(cfg, metrics.NewCollector())
	if err != nil {
		return "", err
	}
	if watch {
		defer watchConfig(loader, layout)()
	}

	hub := server.NewHub(layout.Graph, layout.Engine, layout.State, cfg.Run.TickInterval)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Router(hub),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Msgf("frame server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("frame server error")
		}
	}()

	_ = hub.Run(ctx)
	log.Info().Msg("shutting down frame server...")
	shutCtx, cancel := context.WithTimeout(context.Background(), meta.SHUTDOWN_TIMEOUT*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutCtx)

	return layout.WriteRecords(outDir)
}

// watchConfig pushes reloaded physics parameters into the layout engine and
// returns a function that stops watching.
func watchConfig(loader *config.Loader, layout *experiments.Layout) func() {
	loader.OnChange(func(c *config.Config) {
		log.Info().Msgf("config %s reloaded", loader.Path())
		layout.Engine.SetConfig(c.Physics)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		log.Warn().Err(err).Msg("config watcher unavailable (hot-reload disabled)")
		return func() {}
	}
	return stopWatch
}

func setupLogging(conf config.LogConf) {
	level, err := zerolog.ParseLevel(conf.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if conf.Pretty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(meta.METRICS_PATH, promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Msgf("serving metrics on %s%s", addr, meta.METRICS_PATH)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server error")
		}
	}()
	return srv
}
