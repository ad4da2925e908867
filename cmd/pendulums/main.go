package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/atharvRsharma/Pendulums/internal/config"
	"github.com/atharvRsharma/Pendulums/internal/export"
	"github.com/atharvRsharma/Pendulums/internal/gui"
	"github.com/atharvRsharma/Pendulums/internal/metrics"
	"github.com/atharvRsharma/Pendulums/internal/sim"
	"github.com/atharvRsharma/Pendulums/internal/store"
	"github.com/atharvRsharma/Pendulums/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	links      int
	seed       int64
	fps        int
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pendulums",
		Short: "interactive chained multi-pendulum simulation",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the graphical window when no command given.
			gui.Run(newSimulation(config.DefaultConfig()))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the interactive window",
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&links, "links", config.DefaultLinks, "initial number of links")
	guiCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&links, "links", config.DefaultLinks, "initial number of links")
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and save the result",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().IntVar(&links, "links", config.DefaultLinks, "initial number of links")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "run seed recorded in metadata")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's angles",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [run_id]",
		Short: "export a saved run's path trace as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  traceRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run's angles to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run's metadata and trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, traceCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newSimulation builds a simulation with cfg.Links links; links beyond the
// bootstrap one are appended through the same editor path user input takes.
func newSimulation(cfg *config.Config) *sim.Simulation {
	s := sim.NewWithDt(cfg.Dt)
	for i := 1; i < cfg.Links; i++ {
		s.AddLink()
	}
	return s
}

func flagConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config file values.
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("links") {
		cfg.Links = links
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := flagConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(newSimulation(cfg))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := flagConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(newSimulation(cfg), cfg.FPS)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := flagConfig(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s := newSimulation(cfg)
	runner := sim.NewRunner(s)
	runner.AddMetric(metrics.NewEnergy())
	runner.AddMetric(metrics.NewEnergyDrift())
	runner.AddMetric(metrics.NewTraceSpan())

	fmt.Printf("running %d-link chain for %.1fs...\n", cfg.Links, cfg.Duration)
	result, err := runner.Run(context.Background(), cfg.Duration)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Dt, cfg.Duration, cfg.Links, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if result.Diverged {
		fmt.Printf("diverged at step %d\n", result.DivergedAt)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tLINKS\tDURATION\tDT\tSTEPS\tDIVERGED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fs\t%.4fs\t%d\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Links,
			run.Duration,
			run.Dt,
			run.Steps,
			run.Diverged,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	rows, _, err := st.LoadAngles(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("links: %d, samples: %d\n\n", meta.Links, len(rows))

	// One theta plot per link; omega columns are interleaved after each
	// theta.
	numLinks := len(rows[0]) / 2
	for link := 0; link < numLinks; link++ {
		data := make([]float64, len(rows))
		for i := range rows {
			if link*2 < len(rows[i]) {
				data[i] = rows[i][link*2]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("theta%d (rad)", link)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	points, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return fmt.Errorf("not enough trace points to export")
	}

	svg := export.TraceToSVG(points, 800, 800, "#e62937")
	fmt.Println(svg)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	rows, times, err := st.LoadAngles(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := 0; i < len(rows[0])/2; i++ {
		header = append(header, fmt.Sprintf("theta%d", i), fmt.Sprintf("omega%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range rows {
		rec := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range rows[i] {
			rec = append(rec, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	points, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	return store.ExportJSON(meta, points)
}
