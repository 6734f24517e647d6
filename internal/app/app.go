// Package app is the shared error boundary of the inspector entry points:
// load configuration, inspect one workbook, and report any failure.
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	sheetinspect "sheet-inspect"
	"sheet-inspect/internal/config"
	"sheet-inspect/internal/logging"
)

// Main runs one entry point and exits the process with its status.
func Main(mode sheetinspect.Mode) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	os.Exit(Run(os.Stdout, os.Stderr, cfg, mode))
}

// Run inspects the workbook configured for mode, writing the report to
// stdout. On failure it prints the error to stdout and the diagnostic trace
// to stderr, or only the install hint for a missing reader, and returns 1.
func Run(stdout, stderr io.Writer, cfg *config.Config, mode sheetinspect.Mode, opts ...sheetinspect.InspectorOption) int {
	path := cfg.Files.Typed
	if mode == sheetinspect.ModeRaw {
		path = cfg.Files.Raw
	}
	logger := slog.Default().With("path", path, "mode", mode.String())

	labels := sheetinspect.LabelsFor(cfg.Report.Lang)
	base := []sheetinspect.InspectorOption{
		sheetinspect.WithPreviewRows(cfg.Report.PreviewRows),
		sheetinspect.WithLabels(labels),
		sheetinspect.WithDescribe(cfg.Report.Describe),
		sheetinspect.WithProgressCallback(func(p sheetinspect.ProgressInfo) {
			logger.Debug("progress", "phase", p.Phase, "sheet", p.Sheet, "current", p.Current, "total", p.Total)
		}),
	}
	ins := sheetinspect.New(append(base, opts...)...)

	logger.Info("inspecting workbook")
	err := inspect(stdout, ins, path, mode, cfg.Report.SummaryPath)
	if err == nil {
		logger.Info("report complete")
		return 0
	}

	logger.Error("inspection failed", "error", err)
	fmt.Fprintf(stdout, labels.Error+"\n", err)
	if errors.Is(err, sheetinspect.ErrDependencyMissing) {
		fmt.Fprintln(stdout, sheetinspect.Hint(err))
		return 1
	}
	fmt.Fprint(stderr, sheetinspect.Trace(err))
	return 1
}

func inspect(w io.Writer, ins *sheetinspect.Inspector, path string, mode sheetinspect.Mode, summaryPath string) error {
	t, err := ins.Load(path, mode)
	if err != nil {
		return err
	}
	if err := ins.Report(w, t); err != nil {
		return err
	}
	if summaryPath == "" {
		return nil
	}
	return sheetinspect.WriteSummary(summaryPath, sheetinspect.Summarize(t, sheetinspect.SummarySampleRows))
}
