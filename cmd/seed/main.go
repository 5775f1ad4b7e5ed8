// Command seed loads a curated food pack into the catalog.
//
//	seed [-dry-run] [path]
//
// The pack is schema-checked and linted first; a pack with lint issues is
// never seeded. With -dry-run nothing is written.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/mwhite7112/woodpantry-nutrition/internal/config"
	"github.com/mwhite7112/woodpantry-nutrition/internal/db"
	"github.com/mwhite7112/woodpantry-nutrition/internal/logging"
	"github.com/mwhite7112/woodpantry-nutrition/internal/pack"
	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
)

const (
	exitOK     = 0
	exitIssues = 1
	exitError  = 2
)

// connectFunc opens the service used for persistence. The returned close
// function releases its resources.
type connectFunc func(ctx context.Context) (*service.Service, func(), error)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(exitError)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], cfg.NearDuplicateDistance, postgresConnector(cfg), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, nearDistance int, connect connectFunc, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dryRun := fs.Bool("dry-run", false, "validate and lint the pack without writing anything")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "usage: seed [-dry-run] [path]")
		return exitError
	}
	path := pack.DefaultPath
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	items, err := pack.Load(path)
	if err != nil {
		var schemaErr *pack.SchemaError
		if errors.As(err, &schemaErr) {
			fmt.Fprintf(stderr, "%s: invalid pack\n", path)
			for _, p := range schemaErr.Problems {
				fmt.Fprintf(stderr, "  %s\n", p)
			}
			return exitError
		}
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return exitError
	}

	if issues := service.Lint(items, service.LintOptions{NearDuplicateDistance: nearDistance}); len(issues) > 0 {
		for _, is := range issues {
			fmt.Fprintln(stdout, is.String())
		}
		fmt.Fprintf(stderr, "%s: refusing to seed, %d lint issue(s)\n", path, len(issues))
		return exitIssues
	}

	if *dryRun {
		fmt.Fprintf(stdout, "dry run: %d item(s) in %s are valid, nothing written\n", len(items), path)
		return exitOK
	}

	svc, closeFn, err := connect(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "connect: %v\n", err)
		return exitError
	}
	defer closeFn()

	report, err := svc.SeedPack(ctx, items)
	if err != nil {
		fmt.Fprintf(stderr, "seed failed after %d food(s): %v\n", report.Foods, err)
		return exitError
	}
	slog.Info("pack seeded", "path", path, "foods", report.Foods, "units", report.Units, "aliases", report.Aliases)
	fmt.Fprintf(stdout, "seeded %d food(s), %d unit(s), %d alias(es) from %s\n", report.Foods, report.Units, report.Aliases, path)
	return exitOK
}

func postgresConnector(cfg *config.Config) connectFunc {
	return func(ctx context.Context) (*service.Service, func(), error) {
		if err := cfg.RequireDB(); err != nil {
			return nil, nil, err
		}
		sqlDB, err := sql.Open("postgres", cfg.DBURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := db.Migrate(sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		svc := service.New(db.New(sqlDB), sqlDB, service.Config{
			ReducedConfidence:     cfg.MatchReducedConfidence,
			DefaultGoal:           cfg.DefaultGoal,
			NearDuplicateDistance: cfg.NearDuplicateDistance,
			BackfillPageSize:      cfg.BackfillPageSize,
		})
		return svc, func() { sqlDB.Close() }, nil
	}
}
