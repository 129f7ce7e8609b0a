package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tycho887/FYSLAB/internal/config"
	"github.com/Tycho887/FYSLAB/internal/cycle"
	"github.com/Tycho887/FYSLAB/internal/export"
	"github.com/Tycho887/FYSLAB/internal/storage"
	"github.com/Tycho887/FYSLAB/internal/substance"
	"github.com/Tycho887/FYSLAB/internal/thermo"
	"github.com/Tycho887/FYSLAB/internal/tui"
	"github.com/Tycho887/FYSLAB/internal/viz"
)

var (
	dataDir      string
	steps        int
	allowedError float64
	gasName      string
	monatomic    bool
	diatomic     bool
	moles        float64
	pressure     float64
	volume       float64
	temperature  float64
	toPressure   float64
	toVolume     float64
	toTemp       float64
	ratio        float64
	tHot         float64
	tCold        float64
	jsonPath     string
	configFile   string
	preset       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "termo",
		Short: "ideal-gas process and cycle lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".termo", "data directory")
	rootCmd.PersistentFlags().IntVar(&steps, "steps", config.DefaultSteps, "trajectory resolution")
	rootCmd.PersistentFlags().Float64Var(&allowedError, "tolerance", config.DefaultAllowedError, "allowed consistency error")

	runCmd := &cobra.Command{
		Use:   "run [isothermal|isobaric|isochoric|adiabatic]",
		Short: "run a single process",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProcess,
	}
	runCmd.Flags().StringVar(&gasName, "gas", "", "substance name or formula")
	runCmd.Flags().BoolVar(&monatomic, "monatomic", false, "monatomic gas")
	runCmd.Flags().BoolVar(&diatomic, "diatomic", false, "diatomic gas")
	runCmd.Flags().Float64Var(&moles, "moles", 1.0, "amount of substance (mol)")
	runCmd.Flags().Float64Var(&pressure, "pressure", 0, "initial pressure (Pa), 0 = derive")
	runCmd.Flags().Float64Var(&volume, "volume", 0, "initial volume (m^3), 0 = derive")
	runCmd.Flags().Float64Var(&temperature, "temperature", 0, "initial temperature (K), 0 = derive")
	runCmd.Flags().Float64Var(&toPressure, "to-pressure", 0, "sweep to pressure (Pa)")
	runCmd.Flags().Float64Var(&toVolume, "to-volume", 0, "sweep to volume (m^3)")
	runCmd.Flags().Float64Var(&toTemp, "to-temperature", 0, "sweep to temperature (K)")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "also export full data as JSON to file (- for stdout)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	cycleCmd := &cobra.Command{
		Use:   "cycle [carnot|otto|brayton|stirling|ericsson|rankine|kalina]",
		Short: "run a four-process cycle",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCycle,
	}
	cycleCmd.Flags().StringVar(&gasName, "gas", "", "substance name or formula")
	cycleCmd.Flags().BoolVar(&monatomic, "monatomic", false, "monatomic gas")
	cycleCmd.Flags().BoolVar(&diatomic, "diatomic", false, "diatomic gas")
	cycleCmd.Flags().Float64Var(&moles, "moles", 1.0, "amount of substance (mol)")
	cycleCmd.Flags().Float64Var(&pressure, "pressure", 0, "initial pressure (Pa), 0 = derive")
	cycleCmd.Flags().Float64Var(&volume, "volume", config.DefaultVolume, "initial volume (m^3)")
	cycleCmd.Flags().Float64Var(&ratio, "ratio", config.DefaultCompressionRatio, "compression ratio")
	cycleCmd.Flags().Float64Var(&tHot, "thot", config.DefaultTHot, "hot reservoir temperature (K)")
	cycleCmd.Flags().Float64Var(&tCold, "tcold", config.DefaultTCold, "cold reservoir temperature (K)")
	cycleCmd.Flags().StringVar(&jsonPath, "json", "", "also export full data as JSON to file (- for stdout)")
	cycleCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cycleCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live [carnot|otto]",
		Short: "run a cycle with live trajectory replay",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&gasName, "gas", "", "substance name or formula")
	liveCmd.Flags().BoolVar(&monatomic, "monatomic", false, "monatomic gas")
	liveCmd.Flags().BoolVar(&diatomic, "diatomic", false, "diatomic gas")
	liveCmd.Flags().Float64Var(&moles, "moles", 1.0, "amount of substance (mol)")
	liveCmd.Flags().Float64Var(&volume, "volume", config.DefaultVolume, "initial volume (m^3)")
	liveCmd.Flags().Float64Var(&ratio, "ratio", config.DefaultCompressionRatio, "compression ratio")
	liveCmd.Flags().Float64Var(&tHot, "thot", config.DefaultTHot, "hot reservoir temperature (K)")
	liveCmd.Flags().Float64Var(&tCold, "tcold", config.DefaultTCold, "cold reservoir temperature (K)")

	substancesCmd := &cobra.Command{
		Use:   "substances",
		Short: "list the gas property table",
		RunE:  listSubstances,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [process|cycle]",
		Short: "list available presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for mode: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, cycleCmd, liveCmd, substancesCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// optional maps a zero-valued flag to the missing-variable marker.
func optional(v float64) float64 {
	if v == 0 {
		return thermo.Unknown
	}
	return v
}

func params() thermo.Params {
	p := thermo.DefaultParams()
	p.Steps = steps
	p.AllowedError = allowedError
	return p
}

func runProcess(cmd *cobra.Command, args []string) error {
	kind := "isothermal"
	if len(args) > 0 {
		kind = args[0]
	}

	cond := thermo.Conditions{
		N:         optional(moles),
		P1:        optional(pressure),
		V1:        optional(volume),
		T1:        optional(temperature),
		Monatomic: monatomic,
		Diatomic:  diatomic,
		Gas:       gasName,
	}
	target := config.Target{}
	switch {
	case toVolume != 0:
		target = config.Target{Variable: "volume", Value: toVolume}
	case toPressure != 0:
		target = config.Target{Variable: "pressure", Value: toPressure}
	case toTemp != 0:
		target = config.Target{Variable: "temperature", Value: toTemp}
	}

	p := params()
	if preset != "" {
		cfg := config.GetPreset("process", preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("process"))
		}
		kind, cond, target, p = processFromConfig(cfg)
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		kind, cond, target, p = processFromConfig(cfg)
	}
	if target.Variable == "" {
		return fmt.Errorf("one of --to-volume, --to-pressure, --to-temperature is required")
	}

	pr, err := newProcess(kind, cond, p)
	if err != nil {
		return err
	}
	if pr.SubstanceDefaulted {
		fmt.Println(viz.Subtle.Render(fmt.Sprintf("warning: unknown gas %q, using %s", gasName, pr.Substance.Name)))
	}

	start := time.Now()
	switch target.Variable {
	case "volume":
		err = pr.GenerateFromVolume(target.Value)
	case "pressure":
		err = pr.GenerateFromPressure(target.Value)
	case "temperature":
		err = pr.GenerateFromTemperature(target.Value)
	default:
		return fmt.Errorf("unknown target variable: %s", target.Variable)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Mode:              "process",
		Kind:              pr.Kind.String(),
		Gas:               gasLabel(pr.Substance.Name, cond.Diatomic),
		Steps:             pr.Params.Steps,
		Moles:             pr.N,
		WorkDoneBy:        pr.Derived.WorkDoneBy,
		HeatAbsorbed:      pr.Derived.HeatAbsorbed,
		FirstLawSatisfied: pr.IsFirstLawSatisfied(),
		IdealGas:          pr.IsIdealGas(),
	}, storage.ProcessSeries(pr))
	if err != nil {
		return err
	}

	fmt.Println(viz.Header.Render(pr.Label()))
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)
	printMetric("work done by", "%.4f J", pr.Derived.WorkDoneBy)
	printMetric("heat absorbed", "%.4f J", pr.Derived.HeatAbsorbed)
	printMetric("dU", "%.4f J", pr.Derived.InternalEnergy[pr.Traj.Len()-1]-pr.Derived.InternalEnergy[0])
	fmt.Printf("%s%s\n", viz.MetricLabel.Render("ideal gas"), viz.Flag(pr.IsIdealGas()))
	fmt.Printf("%s%s\n", viz.MetricLabel.Render("first law"), viz.Flag(pr.IsFirstLawSatisfied()))

	if jsonPath != "" {
		return writeJSON(jsonPath, export.FromProcess(pr))
	}
	return nil
}

func newProcess(kind string, cond thermo.Conditions, p thermo.Params) (*thermo.Process, error) {
	switch strings.ToLower(kind) {
	case "isothermal":
		return thermo.NewIsothermal(cond, nil, p)
	case "isobaric":
		return thermo.NewIsobaric(cond, nil, p)
	case "isochoric":
		return thermo.NewIsochoric(cond, nil, p)
	case "adiabatic":
		return thermo.NewAdiabatic(cond, nil, p)
	default:
		return nil, fmt.Errorf("unknown process kind: %s", kind)
	}
}

func processFromConfig(cfg *config.Config) (string, thermo.Conditions, config.Target, thermo.Params) {
	p := thermo.DefaultParams()
	if cfg.Steps > 0 {
		p.Steps = cfg.Steps
	}
	if cfg.AllowedError > 0 {
		p.AllowedError = cfg.AllowedError
	}
	pc := cfg.Process
	cond := thermo.Conditions{
		N:         optional(pc.Moles),
		P1:        optional(pc.Pressure),
		V1:        optional(pc.Volume),
		T1:        optional(pc.Temperature),
		Monatomic: pc.Monatomic,
		Diatomic:  pc.Diatomic,
		Gas:       pc.Gas,
	}
	return pc.Kind, cond, pc.Target, p
}

func buildCycle(kind string, p thermo.Params) (*cycle.Cycle, error) {
	cfg := cycle.Config{
		CompressionRatio: ratio,
		THot:             tHot,
		TCold:            tCold,
		N:                optional(moles),
		P1:               optional(pressure),
		V1:               optional(volume),
		Monatomic:        monatomic,
		Diatomic:         diatomic,
		Gas:              gasName,
		Params:           p,
	}
	return newCycle(kind, cfg)
}

func newCycle(kind string, cfg cycle.Config) (*cycle.Cycle, error) {
	switch strings.ToLower(kind) {
	case "carnot":
		return cycle.NewCarnot(cfg, nil)
	case "otto":
		return cycle.NewOtto(cfg, nil)
	case "brayton":
		return cycle.NewBrayton(cfg, nil)
	case "stirling":
		return cycle.NewStirling(cfg, nil)
	case "ericsson":
		return cycle.NewEricsson(cfg, nil)
	case "rankine":
		return cycle.NewRankine(cfg, nil)
	case "kalina":
		return cycle.NewKalina(cfg, nil)
	default:
		return nil, fmt.Errorf("unknown cycle kind: %s", kind)
	}
}

func cycleFromConfig(cfg *config.Config) (string, cycle.Config) {
	p := thermo.DefaultParams()
	if cfg.Steps > 0 {
		p.Steps = cfg.Steps
	}
	if cfg.AllowedError > 0 {
		p.AllowedError = cfg.AllowedError
	}
	cc := cfg.Cycle
	return cc.Kind, cycle.Config{
		CompressionRatio: cc.CompressionRatio,
		THot:             cc.THot,
		TCold:            cc.TCold,
		N:                optional(cc.Moles),
		P1:               optional(cc.Pressure),
		V1:               optional(cc.Volume),
		Monatomic:        cc.Monatomic,
		Diatomic:         cc.Diatomic,
		Gas:              cc.Gas,
		Params:           p,
	}
}

func runCycle(cmd *cobra.Command, args []string) error {
	kind := "carnot"
	if len(args) > 0 {
		kind = args[0]
	}

	var (
		c   *cycle.Cycle
		err error
	)
	switch {
	case preset != "":
		cfg := config.GetPreset("cycle", preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets("cycle"))
		}
		k, ccfg := cycleFromConfig(cfg)
		c, err = newCycle(k, ccfg)
	case configFile != "":
		cfg, loadErr := config.Load(configFile)
		if loadErr != nil {
			return fmt.Errorf("failed to load config: %w", loadErr)
		}
		k, ccfg := cycleFromConfig(cfg)
		c, err = newCycle(k, ccfg)
	default:
		c, err = buildCycle(kind, params())
	}
	if err != nil {
		return err
	}

	start := time.Now()
	if err := c.Run(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Mode:                  "cycle",
		Kind:                  c.Name,
		Gas:                   gasLabel(c.Config().Gas, c.Config().Diatomic),
		Steps:                 c.Config().Params.Steps,
		Moles:                 c.N,
		WorkDoneBy:            sum(c.WorkDoneBy),
		HeatAbsorbed:          sum(c.HeatAbsorbed),
		Efficiency:            c.Efficiency,
		TheoreticalEfficiency: c.TheoreticalEfficiency,
		FirstLawSatisfied:     c.FirstLawSatisfied,
		IdealGas:              c.IdealGas,
	}, storage.CycleSeries(c))
	if err != nil {
		return err
	}

	fmt.Println(viz.Header.Render(fmt.Sprintf("%s cycle", c.Name)))
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STAGE\tWORK BY (J)\tHEAT ABSORBED (J)")
	for i, pr := range c.Processes {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\n", pr.Label(), c.WorkDoneBy[i], c.HeatAbsorbed[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	printMetric("efficiency", "%.4f", c.Efficiency)
	printMetric("carnot bound", "%.4f", c.TheoreticalEfficiency)
	fmt.Printf("%s%s\n", viz.MetricLabel.Render("ideal gas"), viz.Flag(c.IdealGas))
	fmt.Printf("%s%s\n", viz.MetricLabel.Render("first law"), viz.Flag(c.FirstLawSatisfied))

	if jsonPath != "" {
		return writeJSON(jsonPath, export.FromCycle(c))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	kind := "carnot"
	if len(args) > 0 {
		kind = args[0]
	}
	c, err := buildCycle(kind, params())
	if err != nil {
		return err
	}
	if err := c.Run(); err != nil {
		return err
	}
	return tui.Run(c)
}

func listSubstances(cmd *cobra.Command, args []string) error {
	tbl := substance.Default()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMULA\tM (kg/mol)\tCV\tCP\tGAMMA")
	for _, name := range tbl.Names() {
		s, _ := tbl.Lookup(name)
		fmt.Fprintf(w, "%s\t%s\t%.6f\t%.3f\t%.3f\t%.3f\n", s.Name, s.Formula, s.MolarMass, s.Cv, s.Cp, s.Gamma)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tMODE\tKIND\tGAS\tTIME\tWORK BY\tEFFICIENCY")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.4f\t%.4f\n",
			run.ID,
			run.Mode,
			run.Kind,
			run.Gas,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.WorkDoneBy,
			run.Efficiency,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series.Volume) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\nkind: %s\nsamples: %d\n\n", meta.ID, meta.Kind, len(series.Volume))

	fmt.Println(viz.PVPlot(series.Pressure))
	fmt.Println()

	plots := []struct {
		caption string
		data    []float64
	}{
		{"volume (m^3)", series.Volume},
		{"temperature (K)", series.Temperature},
		{"entropy", series.Entropy},
	}
	for _, pl := range plots {
		fmt.Println(viz.SeriesPlot(pl.caption, pl.data))
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return export.WriteJSONStdout(struct {
		Meta        *storage.RunMetadata `json:"metadata"`
		Volume      []float64            `json:"volume"`
		Pressure    []float64            `json:"pressure"`
		Temperature []float64            `json:"temperature"`
		Entropy     []float64            `json:"entropy"`
	}{meta, series.Volume, series.Pressure, series.Temperature, series.Entropy})
}

func writeJSON(path string, v any) error {
	if path == "-" {
		return export.WriteJSONStdout(v)
	}
	return export.WriteJSON(path, v)
}

func gasLabel(name string, isDiatomic bool) string {
	if name != "" {
		return name
	}
	if isDiatomic {
		return "diatomic"
	}
	return "monatomic"
}

func printMetric(label, format string, v float64) {
	fmt.Printf("%s%s\n", viz.MetricLabel.Render(label), viz.MetricValue.Render(fmt.Sprintf(format, v)))
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
