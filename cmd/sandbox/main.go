package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/experiment"
	"github.com/san-kum/sandbox2d/internal/gui"
	"github.com/san-kum/sandbox2d/internal/viz"
)

var (
	configFile string
	preset     string
	mode       string
	seed       int64
	width      float64
	height     float64
	debug      bool
	dt         float64
	duration   float64

	jsonOut  bool
	csvOut   bool
	runs     int
	savePath string
	traceIdx int

	sweepParams []string
	sweepMetric string
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sandbox: ")

	rootCmd := &cobra.Command{
		Use:          "sandbox",
		Short:        "2d physics sandbox",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "scene config file (yaml)")
	pf.StringVar(&preset, "preset", "", "use a preset scene")
	pf.StringVar(&mode, "mode", config.DefaultMode, "physics mode: earth, space, particle, space-bh")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	pf.Float64Var(&width, "width", config.DefaultWidth, "scene width")
	pf.Float64Var(&height, "height", config.DefaultHeight, "scene height")
	pf.BoolVar(&debug, "debug", false, "record force lines")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "timestep for headless runs")
	pf.Float64Var(&duration, "time", config.DefaultDuration, "duration for headless runs")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scene headless and print metrics",
		RunE:  runScene,
	}
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "dump final bodies as json")
	runCmd.Flags().BoolVar(&csvOut, "csv", false, "dump per-step metrics as csv")
	runCmd.Flags().IntVar(&runs, "runs", 1, "run an ensemble over consecutive seeds")
	runCmd.Flags().StringVar(&savePath, "save", "", "write the resolved config to this path")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a scene in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := loadExperiment(cmd)
			if err != nil {
				return err
			}
			return viz.Run(exp)
		},
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run a scene in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := loadExperiment(cmd)
			if err != nil {
				return err
			}
			gui.Run(exp)
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "print the attraction rules of a scene",
		RunE:  printGroups,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of kinetic energy",
		RunE:  analyzeScene,
	}
	analyzeCmd.Flags().IntVar(&traceIdx, "trace", -1, "also plot the path of this body")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "run a scene headless and print the final frame as svg",
		RunE:  svgScene,
	}
	svgCmd.Flags().IntVar(&traceIdx, "trace", -1, "draw the path of this body instead")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid search physics parameters minimising a metric",
		RunE:  sweepScene,
	}
	sweepCmd.Flags().StringArrayVar(&sweepParams, "param", nil, "parameter grid as name=v1,v2 (repeatable)")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "energy_drift", "metric to minimise")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark force models over body counts",
		RunE:  benchModels,
	}

	rootCmd.AddCommand(runCmd, liveCmd, windowCmd, presetsCmd, groupsCmd, analyzeCmd, svgCmd, sweepCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the scene config: preset, then config file, then
// any flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		var p *config.Config
		if cmd.Flags().Changed("mode") {
			p = config.GetPreset(mode, preset)
		} else {
			p = config.FindPreset(preset)
		}
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadExperiment(cmd *cobra.Command) (*experiment.Experiment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return experiment.New(cfg)
}
