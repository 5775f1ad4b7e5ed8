// Command packlint checks a curated food pack before it is seeded.
//
//	packlint [-json] [-near-distance n] [path]
//
// Issues are printed to stdout. The exit status is 0 for a clean pack, 1 when
// any issue was found and 2 when the pack could not be read or violates the
// pack schema.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mwhite7112/woodpantry-nutrition/internal/config"
	"github.com/mwhite7112/woodpantry-nutrition/internal/logging"
	"github.com/mwhite7112/woodpantry-nutrition/internal/pack"
	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
)

const (
	exitClean  = 0
	exitIssues = 1
	exitError  = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(exitError)
	}
	logging.Setup(cfg.LogLevel)
	os.Exit(run(os.Args[1:], cfg.NearDuplicateDistance, os.Stdout, os.Stderr))
}

func run(args []string, nearDistance int, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("packlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print issues as a JSON array")
	fs.IntVar(&nearDistance, "near-distance", nearDistance, "report names within this edit distance (0 disables)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "usage: packlint [-json] [-near-distance n] [path]")
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

	issues := service.Lint(items, service.LintOptions{NearDuplicateDistance: nearDistance})
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(issues); err != nil {
			fmt.Fprintf(stderr, "encode issues: %v\n", err)
			return exitError
		}
	} else {
		for _, is := range issues {
			fmt.Fprintln(stdout, is.String())
		}
	}

	slog.Debug("pack linted", "path", path, "items", len(items), "issues", len(issues))
	if len(issues) > 0 {
		fmt.Fprintf(stderr, "%s: %d issue(s) in %d item(s)\n", path, len(issues), len(items))
		return exitIssues
	}
	return exitClean
}
