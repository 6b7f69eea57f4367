// Package app orchestrates one conversion run: validate the input, build the
// rule set, walk the tree, render the document, and report statistics.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/bethropolis/dir2md/internal/config"
	"github.com/bethropolis/dir2md/internal/convert"
	"github.com/bethropolis/dir2md/internal/ignore"
	"github.com/bethropolis/dir2md/internal/logger"
	"github.com/bethropolis/dir2md/internal/render"
	"github.com/bethropolis/dir2md/internal/summary"
	"github.com/bethropolis/dir2md/internal/walker"
)

// App encapsulates the main application functionality.
type App struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a new App instance.
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log}
}

// Run executes the main application logic. The returned error covers only
// the fatal conditions (bad input root, unwritable output); everything else
// is reported and absorbed so the run completes best-effort.
func (a *App) Run() error {
	startTime := time.Now()

	// --- Directory validation ---
	absRoot, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("invalid directory path %q: %w", a.cfg.RootDir, err)
	}
	dirInfo, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory %q does not exist", a.cfg.RootDir)
		}
		return fmt.Errorf("cannot access directory %q: %w", a.cfg.RootDir, err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("%q is not a directory", a.cfg.RootDir)
	}

	// --- Build the rule set; a bad ignore-file is reported, not fatal ---
	rules, err := ignore.Load(ignore.DefaultPatterns, a.cfg.IgnorePatterns, a.cfg.IgnoreFile)
	if err != nil {
		var cfgErr *ignore.ConfigError
		if !errors.As(err, &cfgErr) {
			return err
		}
		a.log.Warn("%v (continuing with %d rules)", cfgErr, rules.Len())
	}
	// Never embed a previous run's output into the new document.
	rules.Append(filepath.Base(a.cfg.OutputFile))

	a.log.Debug("Rule set holds %d rules", rules.Len())
	a.log.Info("Scanning directory: %s", absRoot)

	// --- Traverse ---
	walkOpts := []walker.Option{walker.WithLogger(a.log)}
	if a.cfg.MaxFileSizeMB > 0 {
		walkOpts = append(walkOpts, walker.WithMaxFileSize(a.cfg.MaxFileSizeMB*1024*1024))
		a.log.Info("Ignoring files larger than %d MB.", a.cfg.MaxFileSizeMB)
	}
	result, err := walker.Walk(absRoot, rules, walkOpts...)
	if err != nil {
		return err
	}

	// --- Render ---
	out, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer out.Close()
	buffered := bufio.NewWriter(out)

	rend := render.New().WithLogger(a.log)
	if !a.cfg.NoConvert {
		rend.WithConverter(convert.NewRegistry())
	}
	stats, err := rend.Render(buffered, absRoot, result)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	// --- Summaries ---
	summary.Display(a.log, a.cfg.OutputFile, result, stats, time.Since(startTime))
	if a.cfg.ShowSkipped {
		summary.DisplaySkipped(os.Stderr, result.Skipped)
	}
	return nil
}
