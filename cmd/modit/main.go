// Package main provides the modit CLI entry point: parse flags, load the
// graph, run the solver, render motif classes.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modit/config"
	"github.com/katalvlaran/modit/enumerator"
	"github.com/katalvlaran/modit/ioformat"
)

var version = "0.1.0"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error (and usage for flag errors).
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modit",
		Short: "MODIT - frequent temporal motif mining",
		Long: `MODIT mines frequent temporal motifs in a labeled temporal network.

It enumerates every connected subgraph occurrence within the node/edge
bounds whose edge timestamps fit a sliding window of size delta, reduces
each occurrence to a canonical form, and reports the distinct motif
classes with their support.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags parsed fine: usage only for flag errors, not runtime ones.
			cmd.SilenceUsage = true

			return runMine(cmd, args)
		},
	}

	rootCmd.Flags().StringP("graph", "t", "", "input graph file (required unless set in config)")
	rootCmd.Flags().Int64P("delta", "d", config.InfiniteDelta, "max timestamp span per occurrence (default: unbounded)")
	rootCmd.Flags().BoolP("undirected", "u", false, "treat the graph as undirected")
	rootCmd.Flags().IntP("max-nodes", "n", config.DefaultNMax, "max nodes per occurrence")
	rootCmd.Flags().IntP("max-edges", "e", config.DefaultEMax, "max edges per occurrence")
	rootCmd.Flags().StringP("config", "c", "", "optional YAML config file")
	rootCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().BoolP("verbose", "v", false, "progress logging to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("modit v%s\n", version)
		},
	})

	return rootCmd
}

// buildConfig assembles the run configuration: defaults, then the YAML
// file (if any), then every flag the user set explicitly, so flags always
// win over file values and file values over defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	var opts []config.Option

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		fileOpt, err := config.FromFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpt)
	}

	flags := cmd.Flags()
	if flags.Changed("graph") {
		path, _ := flags.GetString("graph")
		opts = append(opts, config.WithInput(path))
	}
	if flags.Changed("output") {
		path, _ := flags.GetString("output")
		opts = append(opts, config.WithOutput(path))
	}
	if flags.Changed("delta") {
		d, _ := flags.GetInt64("delta")
		opts = append(opts, config.WithDelta(d))
	}
	if flags.Changed("max-nodes") {
		n, _ := flags.GetInt("max-nodes")
		opts = append(opts, config.WithNodeBound(n))
	}
	if flags.Changed("max-edges") {
		e, _ := flags.GetInt("max-edges")
		opts = append(opts, config.WithEdgeBound(e))
	}
	if flags.Changed("undirected") {
		undirected, _ := flags.GetBool("undirected")
		opts = append(opts, func(c *config.Config) { c.Undirected = undirected })
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		opts = append(opts, func(c *config.Config) { c.Verbose = verbose })
	}

	return config.New(opts...)
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("open graph: %w", err)
	}
	defer in.Close()

	start := time.Now()
	g, err := ioformat.ReadGraph(in, !cfg.Undirected)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.InputPath, err)
	}
	logger.Info("graph loaded",
		"nodes", g.NumNodes(),
		"edges", g.NumEdges(),
		"directed", g.Directed(),
		"elapsed", time.Since(start))

	solver, err := enumerator.NewSolver(g, cfg.NMax, cfg.EMax)
	if err != nil {
		return err
	}

	start = time.Now()
	result, err := solver.FindMotifs(ctx, cfg.Delta)
	if err != nil {
		return err
	}
	logger.Info("mining done",
		"classes", result.NumClasses(),
		"occurrences", result.NumOccurrences(),
		"elapsed", time.Since(start))

	out := os.Stdout
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return ioformat.WriteMotifs(out, result.Classes())
}
