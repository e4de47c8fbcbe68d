package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"logsim/internal/diagfmt"
	"logsim/internal/driver"
	"logsim/internal/observ"
	"logsim/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.def|dir]...",
	Short: "Check circuit definition files",
	Long: `Check scans and parses each definition file and reports lexical, syntax and
semantic problems. Directories are searched recursively for *.def files.
Without arguments the directories listed in [check].include of the nearest
logsim.toml are checked.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0 = GOMAXPROCS)")
	checkCmd.Flags().Int("max-inputs", 16, "maximum number of gate inputs")
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	checkCmd.Flags().Bool("depth", false, "indent diagnostics by grammar depth")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

type checkSettings struct {
	format         string
	jobs           int
	maxInputs      int
	maxDiagnostics int
	noCache        bool
	depth          bool
	quiet          bool
	timings        bool
	ui             uiMode
	pathMode       diagfmt.PathMode
}

func readCheckSettings(cmd *cobra.Command, manifest *project.Manifest) (checkSettings, error) {
	var s checkSettings
	var err error
	flags := cmd.Flags()
	if s.format, err = flags.GetString("format"); err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	s.format = strings.ToLower(s.format)
	if s.format != "pretty" && s.format != "json" {
		return s, fmt.Errorf("unknown format: %s", s.format)
	}
	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if s.maxInputs, err = flags.GetInt("max-inputs"); err != nil {
		return s, fmt.Errorf("failed to get max-inputs flag: %w", err)
	}
	if s.noCache, err = flags.GetBool("no-cache"); err != nil {
		return s, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if s.depth, err = flags.GetBool("depth"); err != nil {
		return s, fmt.Errorf("failed to get depth flag: %w", err)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}

	root := cmd.Root().PersistentFlags()
	if s.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	pathMode, err := root.GetString("path-mode")
	if err != nil {
		return s, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if s.pathMode, err = readPathMode(pathMode); err != nil {
		return s, err
	}

	// флаги сильнее манифеста
	if manifest != nil {
		if !cmd.Flags().Changed("max-inputs") {
			s.maxInputs = manifest.Config.Devices.MaxInputs
		}
		if !cmd.Flags().Changed("max-diagnostics") {
			s.maxDiagnostics = manifest.Config.Check.MaxDiagnostics
		}
	}
	if s.maxInputs < 1 {
		return s, fmt.Errorf("--max-inputs must be >= 1")
	}
	return s, nil
}

func readPathMode(value string) (diagfmt.PathMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return diagfmt.PathModeAuto, nil
	case "absolute":
		return diagfmt.PathModeAbsolute, nil
	case "relative":
		return diagfmt.PathModeRelative, nil
	case "basename":
		return diagfmt.PathModeBasename, nil
	default:
		return 0, fmt.Errorf("invalid --path-mode value %q (expected auto|absolute|relative|basename)", value)
	}
}

// collectInputs expands args into definition files. Directories are walked,
// files are taken as given; the result has no duplicates and keeps the
// order of args.
func collectInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		key := filepath.Clean(path)
		if !seen[key] {
			seen[key] = true
			files = append(files, path)
		}
	}
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			// несуществующий файл превращается в диагностику загрузки
			add(arg)
			continue
		}
		if !st.IsDir() {
			add(arg)
			continue
		}
		found, err := driver.ListDefinitionFiles(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", arg, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	var manifest *project.Manifest
	if len(args) == 0 {
		m, ok, err := project.LoadFrom(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no %s found\nplease pass a file or directory, e.g.:\n  logsim check circuits/adder.def", project.ManifestName)
		}
		manifest = m
		args = m.IncludeDirs()
	} else {
		m, _, err := project.LoadFrom(".")
		if err != nil {
			return err
		}
		manifest = m
	}

	settings, err := readCheckSettings(cmd, manifest)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	phase := timer.Begin("collect")
	files, err := collectInputs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", driver.DefinitionExt)
	}
	timer.End(phase, fmt.Sprintf("%d file(s)", len(files)))
	if settings.timings {
		defer func() { fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()) }()
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := driver.Options{MaxInputs: settings.maxInputs}
	if settings.timings {
		opts.Progress = timingSink{timer}
	}
	if !settings.noCache {
		cache, err := driver.OpenDiskCache("logsim")
		if err != nil {
			if !settings.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: result cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}

	var results []driver.DirResult
	phase = timer.Begin("check")
	if wantsProgressView(settings, len(files)) {
		results, err = runCheckWithUI(cmd.Context(), "logsim check", files, opts, settings.jobs)
	} else {
		results, err = driver.CheckPaths(cmd.Context(), files, opts, settings.jobs)
	}
	if err != nil {
		return err
	}
	timer.End(phase, "")

	color, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}
	phase = timer.Begin("render")
	defer timer.End(phase, settings.format)
	out := cmd.OutOrStdout()
	if settings.format == "json" {
		if err := renderCheckJSON(out, results, settings); err != nil {
			return err
		}
	} else {
		if err := renderCheckPretty(out, results, settings, color); err != nil {
			return err
		}
		if !settings.quiet {
			fmt.Fprintln(out, summarize(results))
		}
	}

	for _, r := range results {
		if !r.Result.OK() {
			return errCheckFailed
		}
	}
	return nil
}

func renderCheckPretty(w io.Writer, results []driver.DirResult, s checkSettings, color bool) error {
	for _, r := range results {
		err := diagfmt.Pretty(w, r.Result.Errors, r.Result.File, diagfmt.PrettyOpts{
			Color:     color,
			PathMode:  s.pathMode,
			ShowDepth: s.depth,
			Max:       s.maxDiagnostics,
			Fallback:  r.Path,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func renderCheckJSON(w io.Writer, results []driver.DirResult, s checkSettings) error {
	reports := make([]diagfmt.DiagnosticsOutput, 0, len(results))
	for _, r := range results {
		reports = append(reports, diagfmt.BuildDiagnosticsOutput(r.Result.Errors, r.Result.File, diagfmt.JSONOpts{
			PathMode: s.pathMode,
			Max:      s.maxDiagnostics,
			Fallback: r.Path,
		}))
	}
	return diagfmt.JSONMany(w, reports)
}

// timingSink records how long each file took.
type timingSink struct {
	timer *observ.Timer
}

func (s timingSink) OnEvent(evt driver.Event) {
	switch evt.Status {
	case driver.StatusDone, driver.StatusError, driver.StatusCached:
		s.timer.Record(evt.File, evt.Elapsed, string(evt.Status))
	}
}

func summarize(results []driver.DirResult) string {
	ok, failed, cached := 0, 0, 0
	for _, r := range results {
		if r.Result.OK() {
			ok++
		} else {
			failed++
		}
		if r.Result.Cached {
			cached++
		}
	}
	line := fmt.Sprintf("checked %d file(s): %d ok, %d failed", len(results), ok, failed)
	if cached > 0 {
		line += fmt.Sprintf(" (%d cached)", cached)
	}
	return line
}
