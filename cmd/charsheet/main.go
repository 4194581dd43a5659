package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/charsheet/db"
	"github.com/dmitrymomot/charsheet/modules/charsheet"
	"github.com/dmitrymomot/charsheet/pkg/config"
	"github.com/dmitrymomot/charsheet/pkg/httpserver"
	"github.com/dmitrymomot/charsheet/pkg/logger"
	"github.com/dmitrymomot/charsheet/pkg/pg"
	"github.com/dmitrymomot/charsheet/pkg/redis"
	"github.com/dmitrymomot/charsheet/pkg/requestid"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitError    = 2
	exitUsage    = 64
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return exitUsage
	}

	switch args[0] {
	case "serve":
		return serve(args[1:])
	case "check":
		return check(args[1:])
	case "-h", "--help", "help":
		usage()
		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		usage()
		return exitUsage
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  charsheet serve [-env file]")
	fmt.Fprintln(os.Stderr, "  charsheet check [-layout flat|sectioned] <commands.json>")
}

func serve(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	envFile := fs.String("env", "", "optional .env file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitError
		}
	}

	var (
		logCfg  logger.Config
		sheets  charsheet.Config
		httpCfg httpserver.Config
	)
	if err := errors.Join(config.Load(&logCfg), config.Load(&sheets), config.Load(&httpCfg)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	log := logger.New(
		logger.FromConfig(logCfg),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, checks, closeDir, err := openDirectory(ctx, sheets, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to open email directory", logger.Error(err))
		return exitError
	}
	defer closeDir()

	svc, err := charsheet.NewService(sheets, dir, charsheet.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "failed to create sheet service", logger.Error(err))
		return exitError
	}

	router := charsheet.Router(charsheet.RouterOptions{
		Service:      svc,
		Logger:       log,
		HealthChecks: checks,
	})
	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return svc.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx, router) })
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.ErrorContext(ctx, "server exited", logger.Error(err))
		return exitError
	}
	return exitOK
}

// openDirectory connects the configured email directory and returns the
// health checks that go with it.
func openDirectory(ctx context.Context, cfg charsheet.Config, log *slog.Logger) (charsheet.EmailDirectory, map[string]httpserver.HealthCheck, func(), error) {
	noop := func() {}

	switch cfg.Directory {
	case charsheet.DirectoryMemory:
		return charsheet.NewMemoryDirectory(cfg.LookupDelay, charsheet.SeedEmails...), nil, noop, nil

	case charsheet.DirectoryRedis:
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return nil, nil, noop, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return nil, nil, noop, err
		}
		dir := charsheet.NewRedisDirectory(client, cfg.RedisKey)
		if err := dir.Register(ctx, charsheet.SeedEmails...); err != nil {
			_ = client.Close()
			return nil, nil, noop, err
		}
		log.InfoContext(ctx, "email directory ready", logger.Component("redis"), slog.String("key", cfg.RedisKey))
		checks := map[string]httpserver.HealthCheck{"redis": redis.Healthcheck(client)}
		return dir, checks, func() { _ = client.Close() }, nil

	case charsheet.DirectoryPostgres:
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return nil, nil, noop, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return nil, nil, noop, err
		}
		if err := pg.Migrate(ctx, pool, db.Migrations, pc, log); err != nil {
			pool.Close()
			return nil, nil, noop, err
		}
		log.InfoContext(ctx, "email directory ready", logger.Component("postgres"))
		checks := map[string]httpserver.HealthCheck{"postgres": pg.Healthcheck(pool)}
		return charsheet.NewPostgresDirectory(pool), checks, pool.Close, nil

	default:
		return nil, nil, noop, fmt.Errorf("%w: %q", charsheet.ErrUnknownDirectory, cfg.Directory)
	}
}

// check replays a JSON list of commands against a fresh sheet and prints the
// resulting view. The exit code is non-zero unless the sheet was accepted.
func check(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	layout := fs.String("layout", string(charsheet.LayoutSectioned), "sheet layout: flat or sectioned")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		usage()
		return exitUsage
	}

	raw, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	var cmds []charsheet.Command
	if err := json.Unmarshal(raw, &cmds); err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", fs.Arg(0), err)
		return exitError
	}

	cfg := charsheet.DefaultConfig()
	cfg.Layout = *layout
	cfg.LookupTrigger = "change"
	svc, err := charsheet.NewService(cfg, charsheet.NewMemoryDirectory(0, charsheet.SeedEmails...))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	view, err := svc.Replay(context.Background(), cmds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	fmt.Fprintln(os.Stdout, string(out))

	if !view.Submitted {
		return exitRejected
	}
	return exitOK
}
