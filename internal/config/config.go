// Package config loads the inspector settings from the environment. Every
// setting has a default, so an empty environment reproduces the stock
// behaviour: fixed input files, a ten row preview and English labels.
package config

// Config holds all inspector configuration.
type Config struct {
	Files   FileConfig
	Report  ReportConfig
	Logging LoggingConfig
}

// FileConfig names the workbooks each entry point reads.
type FileConfig struct {
	// Typed is the workbook read by the typed entry point.
	Typed string `env:"INSPECT_TYPED_FILE" default:"guinness_test_data.xlsx"`

	// Raw is the workbook read by the raw entry point.
	Raw string `env:"INSPECT_RAW_FILE" default:"guinness_test_data (1).xlsx"`
}

// ReportConfig shapes the printed report.
type ReportConfig struct {
	// PreviewRows caps the preview section; negative prints every row.
	PreviewRows int `env:"INSPECT_PREVIEW_ROWS" default:"10"`

	// Lang selects the label set: "en" or "ko".
	Lang string `env:"INSPECT_LANG" default:"en"`

	// Describe appends numeric column statistics to typed reports.
	Describe bool `env:"INSPECT_DESCRIBE" default:"false"`

	// SummaryPath, when set, receives a summary file (.toon or .json).
	SummaryPath string `env:"INSPECT_SUMMARY_PATH"`
}

// LoggingConfig holds slog settings. Logs go to stderr.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" default:"info"`
	Format string `env:"LOG_FORMAT" default:"text"`
}
