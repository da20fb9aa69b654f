// gdrcalc computes stats and cost of crafted GDR weapons and armor.
//
// Usage:
//
//	go run ./cmd/gdrcalc calc -kind weapon -category "Armi Leggere" -material Ferro
//	go run ./cmd/gdrcalc calc -kind armor -category "Armature Pesanti" -material Acciaio -quality "Alta Qualità" -nyryl
//	go run ./cmd/gdrcalc cost 10110
//	go run ./cmd/gdrcalc tables -kind armor
//	go run ./cmd/gdrcalc pricelist -kind weapon -category "Armi Pesanti" -out listino.xlsx
//	go run ./cmd/gdrcalc --list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/udisondev/gdrcalc/internal/config"
	"github.com/udisondev/gdrcalc/internal/data"
	"github.com/udisondev/gdrcalc/internal/game/cost"
	"github.com/udisondev/gdrcalc/internal/game/forge"
)

const DefaultConfigPath = "config/gdrcalc.yaml"

// errUsage marks errors already explained to the user; main only sets the exit code.
var errUsage = errors.New("usage error")

type env struct {
	cfg    config.Calculator
	calc   *forge.Calculator
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name string
	desc string
	run  func(ctx context.Context, e *env, args []string) error
}

var commands []command

func registerCommand(name, desc string, fn func(ctx context.Context, e *env, args []string) error) {
	commands = append(commands, command{name: name, desc: desc, run: fn})
}

func init() {
	registerCommand("calc", "Compute stats, quality points and cost of one item", runCalc)
	registerCommand("cost", "Format an amount of MO as MAx/MO", runCost)
	registerCommand("tables", "List categories, materials and quality tiers", runTables)
	registerCommand("pricelist", "Export a materials × qualities price sheet (.xlsx)", runPricelist)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			slog.Error("fatal", "err", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gdrcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to YAML config (default $GDRCALC_CONFIG or "+DefaultConfigPath+")")
	list := fs.Bool("list", false, "list available commands")
	fs.Usage = func() { printUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	rest := fs.Args()

	if *list {
		printList(stdout)
		return nil
	}
	if len(rest) == 0 {
		printUsage(stderr)
		return errUsage
	}

	cmd, ok := findCommand(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown command: %s\n", rest[0])
		printList(stderr)
		return errUsage
	}

	// Load config FIRST to determine log level
	path := *cfgPath
	if path == "" {
		path = DefaultConfigPath
		if p := os.Getenv("GDRCALC_CONFIG"); p != "" {
			path = p
		}
	}
	cfg, err := config.LoadCalculator(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	formatter, err := cost.NewFormatter(cfg.Currency)
	if err != nil {
		return fmt.Errorf("configuring currency: %w", err)
	}

	e := &env{
		cfg:    cfg,
		calc:   forge.NewCalculator(catalog, formatter),
		stdout: stdout,
		stderr: stderr,
	}
	return cmd.run(ctx, e, rest[1:])
}

func loadCatalog(path string) (*data.Catalog, error) {
	if path == "" {
		c, err := data.LoadCatalog()
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		return c, nil
	}
	c, err := data.LoadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gdrcalc [-config path] <command> [flags]")
	fmt.Fprintln(w, "       gdrcalc --list")
}

func printList(w io.Writer) {
	names := make([]string, 0, len(commands))
	maxLen := 0
	for _, c := range commands {
		names = append(names, c.name)
		if len(c.name) > maxLen {
			maxLen = len(c.name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Available commands:")
	for _, name := range names {
		c, _ := findCommand(name)
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		fmt.Fprintf(w, "  %s%s%s\n", name, padding, c.desc)
	}
}
