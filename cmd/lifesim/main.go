package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/apex/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/logging"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/tui"
	"github.com/spf13/cobra"
)

// Terminal size assumed until the UI reports the real one.
const (
	defaultCols = 80
	defaultRows = 24
)

var (
	width       int
	height      int
	tickRate    int
	speed       int
	seed        int64
	patternName string
	fill        string
	preset      string
	theme       string
	logFile     string
	logLevel    string
	// Headless run
	generations int
	stableAfter int
	plotHeight  int
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags. The root command opens the
// interactive UI when no subcommand is given.
func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:               "lifesim",
		Short:             "conway's game of life in the terminal",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&width, "width", defaults.Width, "grid width in cells")
	pf.IntVar(&height, "height", defaults.Height, "grid height in cells")
	pf.IntVar(&tickRate, "tps", defaults.TickRate, "generations per second")
	pf.IntVar(&speed, "speed", defaults.Speed, "initial pan speed")
	pf.Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	pf.StringVar(&patternName, "pattern", "", "pattern to place in the center of the grid")
	pf.StringVar(&fill, "fill", defaults.Fill, "initial fill: none, random or noise")
	pf.StringVar(&preset, "preset", "", "use a built-in preset")
	pf.StringVar(&logFile, "log", "", "write logs to this file (.json for JSON lines)")
	pf.StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.Flags().StringVar(&theme, "theme", defaults.Theme,
		"color theme: "+strings.Join(tui.ThemeNames(), ", "))

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run generations without the UI and plot the population",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&generations, "generations", 500, "number of generations")
	runCmd.Flags().IntVar(&stableAfter, "stable", 0, "stop once the population is flat for this many generations (0 = never)")
	runCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "population plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}
	presetsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show preset values")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in patterns",
		Args:  cobra.NoArgs,
		RunE:  listPatterns,
	}

	rootCmd.AddCommand(runCmd, presetsCmd, patternsCmd)
	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	closer, err := logging.Setup(logFile, logLevel)
	if err != nil {
		return err
	}
	cobra.OnFinalize(func() { closer.Close() })
	return nil
}

// resolveConfig starts from the preset, if any, and lets explicitly set
// flags override it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	flags := cmd.Flags()
	if preset == "" || flags.Changed("width") {
		cfg.Width = width
	}
	if preset == "" || flags.Changed("height") {
		cfg.Height = height
	}
	if preset == "" || flags.Changed("tps") {
		cfg.TickRate = tickRate
	}
	if preset == "" || flags.Changed("speed") {
		cfg.Speed = speed
	}
	if preset == "" || flags.Changed("fill") {
		cfg.Fill = fill
	}
	if flags.Changed("pattern") {
		cfg.Pattern = patternName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("theme") != nil && (preset == "" || flags.Changed("theme")) {
		cfg.Theme = theme
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := tui.LookupTheme(cfg.Theme); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newController builds the controller and seeds the board.
func newController(cfg *config.Config) (*sim.Controller, error) {
	ctrl, err := sim.New(sim.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
		Cols:   defaultCols,
		Rows:   defaultRows,
		Speed:  cfg.Speed,
	})
	if err != nil {
		return nil, err
	}

	grid := ctrl.Grid()
	switch cfg.Fill {
	case config.FillRandom:
		grid.Randomize()
	case config.FillNoise:
		pattern.FillNoise(grid, cfg.Seed)
	}

	if cfg.Pattern != "" {
		p, err := pattern.Get(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		p.StampCentered(grid)
	}

	log.WithFields(log.Fields{
		"width":   cfg.Width,
		"height":  cfg.Height,
		"fill":    cfg.Fill,
		"pattern": cfg.Pattern,
		"seed":    cfg.Seed,
		"live":    grid.Population(),
	}).Info("board ready")

	return ctrl, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	if err := tui.Run(ctrl, cfg.TickRate, cfg.Theme); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stability := metrics.NewStability()
	set := metrics.Set{metrics.NewPeak(), metrics.NewMean(), stability}
	history := make([]float64, 0, generations)

	start := time.Now()
	err = ctrl.Run(ctx, generations, func(s sim.Status) bool {
		set.Observe(s)
		history = append(history, float64(s.LiveCells))
		return !stability.Settled(stableAfter)
	})
	elapsed := time.Since(start)
	if err != nil {
		log.WithError(err).Warn("run interrupted")
		return err
	}

	log.WithFields(log.Fields{
		"generations": ctrl.Generation(),
		"elapsed":     elapsed,
	}).Info("run complete")

	if len(history) > 1 {
		fmt.Println(asciigraph.Plot(history,
			asciigraph.Height(plotHeight),
			asciigraph.Width(min(len(history), 100)),
			asciigraph.Caption("population"),
		))
		fmt.Println()
	}

	vals := set.Values()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "grid\t%dx%d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(w, "seed\t%d\n", cfg.Seed)
	fmt.Fprintf(w, "generations\t%d\n", ctrl.Generation())
	fmt.Fprintf(w, "final population\t%d\n", ctrl.Grid().LiveCells())
	fmt.Fprintf(w, "peak population\t%.0f\n", vals["peak"])
	fmt.Fprintf(w, "mean population\t%.1f\n", vals["mean"])
	fmt.Fprintf(w, "stable for\t%.0f generations\n", vals["stable_generations"])
	fmt.Fprintf(w, "elapsed\t%v\n", elapsed.Round(time.Millisecond))
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	for _, name := range config.ListPresets() {
		if !verbose {
			fmt.Println(name)
			continue
		}
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", name)
		fmt.Print(indent(cfg.String()))
	}
	return nil
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tDESCRIPTION")
	for _, p := range pattern.List() {
		pw, ph := p.Size()
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n", p.Name, pw, ph, len(p.Cells()), p.Description)
	}
	return w.Flush()
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\n  ") + "\n"
}
