package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/san-kum/spacesim/internal/analysis"
	"github.com/san-kum/spacesim/internal/config"
	"github.com/san-kum/spacesim/internal/export"
	"github.com/san-kum/spacesim/internal/metrics"
	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/population"
	"github.com/san-kum/spacesim/internal/sim"
	"github.com/san-kum/spacesim/internal/storage"
	"github.com/san-kum/spacesim/internal/telemetry"
	"github.com/san-kum/spacesim/internal/vec"
	"github.com/san-kum/spacesim/internal/viz"
)

var (
	frameIndex  int
	outPath     string
	svgSize     int
	benchSizes  []int
	benchSteps  int
	benchRuns   int
	parallelism int
	promFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "spacesim",
		Short:        "planets in a box: gravity, elastic collisions and walls",
		SilenceUsage: true,
	}

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".spacesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a headless simulation and save it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd.Flags())
	runCmd.Flags().StringVar(&promFile, "prom-file", "", "write final step counters in Prometheus textfile format")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run simulation with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd.Flags())
	addLiveFlags(liveCmd.Flags())

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy and momentum of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of kinetic energy",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [run_id]",
		Short: "render one recorded frame to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotRun,
	}
	snapshotCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame index (negative counts from the end)")
	snapshotCmd.Flags().StringVar(&outPath, "out", "", "output file (default <run_id>_<frame>.svg)")
	snapshotCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels")

	trajectoryCmd := &cobra.Command{
		Use:   "trajectory [run_id]",
		Short: "render the centre-of-mass path to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  trajectoryRun,
	}
	trajectoryCmd.Flags().StringVar(&outPath, "out", "", "output file (default <run_id>_com.svg)")
	trajectoryCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure step throughput",
		Args:  cobra.NoArgs,
		RunE:  bench,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{50, 200, 1000}, "population sizes")
	benchCmd.Flags().IntVar(&benchSteps, "steps", 100, "steps per size")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 0, "also run an ensemble of this many seeded runs")
	benchCmd.Flags().IntVar(&parallelism, "parallel", runtime.NumCPU(), "concurrent ensemble runs")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLAYOUT\tCOUNT\tDT\tDURATION\tGRAVITY\tCOLLISIONS\tWALLS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%.4g\t%.4g\t%t\t%t\t%t\n",
					name, p.Population.Layout, p.Population.Count, p.Dt, p.Duration,
					p.Physics.Gravity, p.Physics.Collisions, p.Physics.Walls)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, analyzeCmd, snapshotCmd, trajectoryCmd, exportCSVCmd, exportJSONCmd, benchCmd, presetsCmd)

	err := rootCmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func presetArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func generate(cfg *config.Config) ([]physics.Entity, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	return population.Generate(rng, cfg.PopulationSpec())
}

// newRunSimulator carries the metrics reported by run. Energy is measured
// with the same G as the run itself.
func newRunSimulator(cfg *config.Config) *sim.Simulator {
	return sim.New(
		sim.WithMetric(metrics.NewKineticEnergy()),
		sim.WithMetric(metrics.NewEnergyDrift(cfg.PhysicsOptions().EnergyG())),
		sim.WithMetric(metrics.NewMomentumDrift()),
		sim.WithMetric(metrics.NewContainment()),
		sim.WithMetric(metrics.NewSpeed()),
	)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd.Flags(), presetArg(args))
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	pop, err := generate(cfg)
	if err != nil {
		return err
	}

	s := newRunSimulator(cfg)
	var rec *telemetry.Recorder
	if promFile != "" {
		rec = telemetry.NewRecorder(cfg.Name)
		s.AddObserver(rec)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s: %d planets, seed %d...\n", cfg.Name, len(pop), cfg.Seed)
	start := time.Now()

	simCfg := cfg.SimConfig()
	result, err := s.Run(ctx, pop, simCfg)
	if err != nil && result == nil {
		return err
	}
	if err != nil {
		klog.Warningf("run interrupted after %d steps: %v", result.StepsTaken, err)
	}
	elapsed := time.Since(start)

	runID, saveErr := st.Save(cfg.Name, simCfg, result)
	if saveErr != nil {
		return saveErr
	}

	if rec != nil {
		if err := rec.WriteTextfile(promFile); err != nil {
			return fmt.Errorf("write %s: %w", promFile, err)
		}
		klog.V(2).Infof("wrote prometheus textfile %s", promFile)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("collisions: %d\n", result.Collisions)
	fmt.Printf("wall hits: %d\n", result.WallHits)
	fmt.Printf("energy drift: %.6g\n", result.EnergyDrift)
	fmt.Printf("momentum drift: %.6g\n", result.MomentumDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	for _, e := range result.Errors {
		fmt.Printf("error: %v\n", e)
	}

	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd.Flags(), presetArg(args))
	if err != nil {
		return err
	}

	pop, err := generate(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Name, pop, cfg.PhysicsOptions(), cfg.Dt, cfg.Live.FPS, cfg.Live.Theme)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tPLANETS\tSTEPS\tDT\tCOLLISIONS\tWALL HITS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4g\t%d\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Count,
			run.Steps,
			run.Dt,
			run.CollisionHits,
			run.WallHits,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []sim.Frame, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(frames) == 0 {
		return nil, nil, fmt.Errorf("run %s has no frames", runID)
	}
	return meta, frames, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("planets: %d\n", meta.Count)
	fmt.Printf("samples: %d\n\n", len(frames))

	g := physics.Options{G: meta.G, Gravity: meta.Gravity}.EnergyG()
	plots := []struct {
		caption string
		fn      func([]physics.Entity) float64
	}{
		{"kinetic energy", physics.KineticEnergy},
		{"potential energy", func(pop []physics.Entity) float64 { return physics.PotentialEnergy(pop, g) }},
		{"|total momentum|", func(pop []physics.Entity) float64 { return vec.Length(physics.TotalMomentum(pop)) }},
	}

	for _, p := range plots {
		graph := asciigraph.Plot(sim.Series(frames, p.fn),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(frames) < 4 {
		return fmt.Errorf("need at least 4 frames, run has %d", len(frames))
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	ke := sim.Series(frames, physics.KineticEnergy)
	sampleDt := frames[1].Time - frames[0].Time

	ps := analysis.PowerSpectrum(analysis.PadPow2(ke))
	graph := asciigraph.Plot(ps[1:max(len(ps)/4, 2)],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (kinetic energy)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, power := analysis.DominantFrequency(ke, sampleDt)
	fmt.Printf("dominant frequency: %.6g (power %.4g)\n", freq, power)
	if freq > 0 {
		fmt.Printf("period: %.6g\n", 1.0/freq)
	}

	return nil
}

func snapshotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	_, frames, err := loadRun(runID)
	if err != nil {
		return err
	}

	idx := frameIndex
	if idx < 0 {
		idx += len(frames)
	}
	if idx < 0 || idx >= len(frames) {
		return fmt.Errorf("frame %d out of range (run has %d frames)", frameIndex, len(frames))
	}

	out := outPath
	if out == "" {
		out = fmt.Sprintf("%s_%d.svg", runID, idx)
	}

	svg := export.PopulationToSVG(frames[idx].Entities, svgSize, viz.MomentumHex)
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote frame %d (t=%.4g) to %s\n", idx, frames[idx].Time, out)
	return nil
}

func trajectoryRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	_, frames, err := loadRun(runID)
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = runID + "_com.svg"
	}

	svg := export.TrajectoryToSVG(analysis.CenterOfMassPath(frames), svgSize, svgSize, "#00ffff")
	if svg == "" {
		return fmt.Errorf("run %s has fewer than 2 frames", runID)
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote centre-of-mass path to %s\n", out)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, frames)
}

func bench(cmd *cobra.Command, args []string) error {
	base := config.GetPreset("bench")
	opts := base.PhysicsOptions()

	fmt.Printf("benchmarking %d steps at dt=%g\n\n", benchSteps, base.Dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLANETS\tSTEPS\tTIME\tSTEPS/SEC\tCOLLISIONS")

	for _, n := range benchSizes {
		spec := base.PopulationSpec()
		spec.Count = n
		pop, err := population.Generate(rand.New(rand.NewSource(42)), spec)
		if err != nil {
			return err
		}

		var stats physics.StepStats
		start := time.Now()
		for i := 0; i < benchSteps; i++ {
			stats.Add(opts.Step(pop, base.Dt))
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%d\n",
			n, benchSteps, elapsed, float64(benchSteps)/elapsed.Seconds(), stats.Collisions)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if benchRuns <= 0 {
		return nil
	}

	spec := base.PopulationSpec()
	e := &sim.Ensemble{
		Generate: func(seed int64) ([]physics.Entity, error) {
			return population.Generate(rand.New(rand.NewSource(seed)), spec)
		},
		Runs:        benchRuns,
		SeedStart:   1,
		Parallelism: parallelism,
	}

	simCfg := base.SimConfig()
	simCfg.Duration = float64(benchSteps) * base.Dt
	simCfg.SampleEvery = max(benchSteps, 1)

	start := time.Now()
	results, err := e.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	total := 0
	for _, r := range results {
		total += r.StepsTaken
	}
	fmt.Printf("\nensemble: %d runs of %d planets, %d steps in %v (%.0f steps/sec, parallel %d)\n",
		len(results), spec.Count, total, elapsed, float64(total)/elapsed.Seconds(), parallelism)
	return nil
}
