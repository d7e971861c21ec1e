package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"pongai/display"
	"pongai/game"
	"pongai/spectate"
)

type options struct {
	configPath string
	seed       uint64
	spectate   string
	profileDir string
	demo       bool
}

// parseOptions reads flags, falling back to PONG_* environment variables for
// their defaults.
func parseOptions(args []string, getenv func(string) string) (options, error) {
	var opts options

	seed := uint64(0)
	if s := getenv("PONG_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("PONG_SEED: %w", err)
		}
		seed = v
	}

	fset := flag.NewFlagSet("pong", flag.ContinueOnError)
	fset.StringVar(&opts.configPath, "config", getenv("PONG_CONFIG"), "TOML file overriding the default settings")
	fset.Uint64Var(&opts.seed, "seed", seed, "serve RNG seed (0 seeds from the clock)")
	fset.StringVar(&opts.spectate, "spectate", getenv("PONG_SPECTATE"), "address for the read-only websocket spectator feed, e.g. :8080")
	fset.StringVar(&opts.profileDir, "profile-dir", getenv("PONG_PROFILE_DIR"), "write CPU profiles here when the tick rate drops")
	fset.BoolVar(&opts.demo, "demo", false, "let the AI play both paddles")
	if err := fset.Parse(args); err != nil {
		return opts, err
	}

	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano())
	}
	return opts, nil
}

func loadConfig(path string) (game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}
	return game.LoadConfig(path)
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("options: %v", err)
	}

	config, err := loadConfig(opts.configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "pong: ", log.LstdFlags)
	logger.Printf("seed %d", opts.seed)

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed))
	match, err := game.NewMatch(config, rng, logger)
	if err != nil {
		log.Fatalf("new match: %v", err)
	}
	if opts.demo {
		match.SetLeftController(game.NewAIController(config))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	renderer, err := display.NewRenderer(config)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	app := display.NewApp(gctx, match, display.NewKeyboard(), renderer)

	if opts.spectate != "" {
		hub := spectate.NewHub(log.New(os.Stderr, "spectate: ", log.LstdFlags))
		app.AddSink(hub)
		g.Go(func() error {
			return spectate.ListenAndServe(gctx, opts.spectate, hub)
		})
	}

	var profiler *display.Profiler
	if opts.profileDir != "" {
		profiler, err = display.NewProfiler(opts.profileDir, config.TPS, log.New(os.Stderr, "profiler: ", log.LstdFlags))
		if err != nil {
			log.Fatalf("profiler: %v", err)
		}
		app.SetProfiler(profiler)
	}

	runErr := display.Run(app)
	stop()
	if err := g.Wait(); err != nil {
		logger.Printf("background: %v", err)
	}
	if profiler != nil {
		profiler.Wait()
	}
	if runErr != nil {
		log.Fatalf("run: %v", runErr)
	}
	logger.Printf("final score %s", match.Score)
}
