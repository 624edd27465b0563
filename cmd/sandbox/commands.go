package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sandbox2d/internal/analysis"
	"github.com/san-kum/sandbox2d/internal/body"
	"github.com/san-kum/sandbox2d/internal/config"
	"github.com/san-kum/sandbox2d/internal/experiment"
	"github.com/san-kum/sandbox2d/internal/export"
	"github.com/san-kum/sandbox2d/internal/optim"
	"github.com/san-kum/sandbox2d/internal/physics"
	"github.com/san-kum/sandbox2d/internal/sim"
)

const energyMetric = "kinetic_energy"

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return err
		}
		log.Printf("config written to %s", savePath)
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if runs > 1 {
		return runEnsemble(ctx, exp)
	}

	if !jsonOut && !csvOut {
		fmt.Printf("running %s scene with %d bodies...\n", cfg.Mode, exp.Scene().Len())
	}
	start := time.Now()

	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		log.Printf("run stopped: %v", e)
	}

	switch {
	case jsonOut:
		return dumpBodies(exp.Scene().Bodies())
	case csvOut:
		return dumpSeries(result)
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("steps: %d\n", result.StepsTaken)
	printMetrics("metrics", result.Final)

	if series := result.Series(energyMetric); len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic energy"),
		))
	}
	return nil
}

func runEnsemble(ctx context.Context, exp *experiment.Experiment) error {
	fmt.Printf("running %d seeds from %d...\n", runs, exp.Config().Seed)
	start := time.Now()
	results, err := exp.Ensemble(ctx, runs)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start))
	printMetrics("mean of final metrics", sim.MeanFinal(results))
	return nil
}

func printMetrics(title string, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\n%s:\n", title)
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, m[name])
	}
}

type bodyJSON struct {
	Kind       string     `json:"kind"`
	Group      string     `json:"group,omitempty"`
	Position   [2]float64 `json:"position"`
	Velocity   [2]float64 `json:"velocity"`
	Mass       float64    `json:"mass"`
	Elasticity float64    `json:"elasticity"`
}

func dumpBodies(bodies []*body.Body) error {
	out := make([]bodyJSON, len(bodies))
	for i, b := range bodies {
		out[i] = bodyJSON{
			Kind:       b.Kind(),
			Group:      b.Group,
			Position:   [2]float64{b.X(), b.Y()},
			Velocity:   [2]float64{b.VX(), b.VY()},
			Mass:       b.Mass,
			Elasticity: b.Elasticity,
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func dumpSeries(result *sim.Result) error {
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := csv.NewWriter(os.Stdout)
	if err := w.Write(append([]string{"time"}, names...)); err != nil {
		return err
	}
	for i, t := range result.Times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(result.Metrics[name][i], 'g', 8, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func listPresets(cmd *cobra.Command, args []string) error {
	modes := make([]string, 0)
	if len(args) == 1 {
		modes = append(modes, args[0])
	} else {
		for _, m := range physics.Modes() {
			modes = append(modes, string(m))
		}
	}

	for _, m := range modes {
		presets := config.ListPresets(m)
		if len(presets) == 0 {
			fmt.Printf("no presets for mode: %s\n", m)
			continue
		}
		fmt.Printf("presets for %s:\n", m)
		for _, p := range presets {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}

func printGroups(cmd *cobra.Command, args []string) error {
	exp, err := loadExperiment(cmd)
	if err != nil {
		return err
	}
	reg := exp.Particles()
	if len(reg.Groups()) == 0 {
		fmt.Println("scene has no groups")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tCOLOR\tRADIUS")
	for _, g := range reg.Groups() {
		fmt.Fprintf(w, "%s\t%s\t%g\n", g.Name, g.Color, g.Radius)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, line := range reg.Format() {
		log.Print(line)
	}
	return nil
}

func analyzeScene(cmd *cobra.Command, args []string) error {
	exp, err := loadExperiment(cmd)
	if err != nil {
		return err
	}
	cfg := exp.Config()

	runCfg := exp.RunConfig()
	runCfg.Record = traceIdx >= 0
	result, err := exp.Simulator().Run(context.Background(), runCfg)
	if err != nil {
		return err
	}

	series := result.Series(energyMetric)
	if len(series) < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s scene, %d samples\n\n", cfg.Mode, len(series))

	ps := analysis.PowerSpectrum(series)
	plotData := ps[:max(2, len(ps)/4)]
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (kinetic energy)"),
	))
	fmt.Println()

	freq, power := analysis.DominantFrequency(series, cfg.Dt)
	fmt.Printf("dominant frequency: %.3f hz (power %.3g)\n", freq, power)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	if traceIdx >= 0 {
		tr := analysis.PositionTrace(result.Snapshots, traceIdx)
		if tr == nil {
			return fmt.Errorf("no body %d in scene", traceIdx)
		}
		fmt.Printf("\npath of body %d:\n", traceIdx)
		fmt.Print(analysis.TraceToASCII(tr, 80, 24, true))
	}
	return nil
}

func svgScene(cmd *cobra.Command, args []string) error {
	exp, err := loadExperiment(cmd)
	if err != nil {
		return err
	}
	cfg := exp.Config()

	runCfg := exp.RunConfig()
	runCfg.Record = traceIdx >= 0
	result, err := exp.Simulator().Run(context.Background(), runCfg)
	if err != nil {
		return err
	}

	if traceIdx >= 0 {
		tr := analysis.PositionTrace(result.Snapshots, traceIdx)
		if tr == nil {
			return fmt.Errorf("no body %d in scene", traceIdx)
		}
		fmt.Println(export.TraceToSVG(tr, cfg.Width, cfg.Height, "#00ff88"))
		return nil
	}

	scene := exp.Scene()
	fmt.Println(export.SceneToSVG(scene.Bodies(), scene.DebugLines(), scene.Width, scene.Height))
	return nil
}

func sweepScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(sweepParams) == 0 {
		return fmt.Errorf("at least one --param is required")
	}

	names := make([]string, 0, len(sweepParams))
	ranges := make([][]float64, 0, len(sweepParams))
	for _, p := range sweepParams {
		name, vals, err := optim.ParseParam(p)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}

	g, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("sweeping %v on %s scene, minimising %s...\n", names, cfg.Mode, sweepMetric)
	start := time.Now()
	best, val, err := g.Search(ctx, cfg, sweepMetric)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("best %s: %.6g\n", sweepMetric, val)
	printMetrics("parameters", best)
	return nil
}

func benchModels(cmd *cobra.Command, args []string) error {
	counts := []int{100, 400, 1600}
	modes := []physics.Mode{physics.ModeSpace, physics.ModeSpaceBH, physics.ModeParticle}

	fmt.Println("benchmarking force models (1s of simulated time)")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tBODIES\tSTEPS\tTIME\tSTEPS/SEC")

	for _, m := range modes {
		for _, n := range counts {
			cfg := config.DefaultConfig()
			cfg.Mode = string(m)
			cfg.Duration = 1
			cfg.Groups = []config.GroupConfig{{Name: "bench", Radius: 2, Count: n}}

			exp, err := experiment.New(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\n",
				m, n, result.StepsTaken, elapsed, float64(result.StepsTaken)/elapsed.Seconds())
		}
	}

	return w.Flush()
}
