package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	sheetinspect "sheet-inspect"
	"sheet-inspect/internal/config"
)

func writeWorkbook(t *testing.T, name string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"Region", "Count"},
		{"North", 1},
		{"South", 2},
		{"North", 3},
	}
	for r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[r]))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func testConfig(typed, raw string) *config.Config {
	return &config.Config{
		Files:   config.FileConfig{Typed: typed, Raw: raw},
		Report:  config.ReportConfig{PreviewRows: 10, Lang: "en"},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestRunTyped(t *testing.T) {
	path := writeWorkbook(t, "guinness_test_data.xlsx")
	var stdout, stderr bytes.Buffer

	code := Run(&stdout, &stderr, testConfig(path, ""), sheetinspect.ModeTyped)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "📊 guinness_test_data.xlsx\n")
	assert.Contains(t, stdout.String(), "Total rows: 3\n")
	assert.Contains(t, stdout.String(), "Counts by Region:\nNorth  2\nSouth  1\n")
	assert.Empty(t, stderr.String())
}

func TestRunRaw(t *testing.T) {
	path := writeWorkbook(t, "guinness_test_data (1).xlsx")
	var stdout, stderr bytes.Buffer

	code := Run(&stdout, &stderr, testConfig("", path), sheetinspect.ModeRaw)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Total rows (header included): 4\n")
	assert.Contains(t, stdout.String(), "Header: [\"Region\", \"Count\"]\n")
	assert.NotContains(t, stdout.String(), "Counts by")
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "guinness_test_data.xlsx")
	var stdout, stderr bytes.Buffer

	code := Run(&stdout, &stderr, testConfig(missing, ""), sheetinspect.ModeTyped)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Error: file access error: ")
	assert.NotContains(t, stdout.String(), "Total rows")
	assert.Contains(t, stderr.String(), "goroutine")
}

func TestRunKoreanError(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "guinness_test_data.xlsx"), "")
	cfg.Report.Lang = "ko"
	var stdout, stderr bytes.Buffer

	code := Run(&stdout, &stderr, cfg, sheetinspect.ModeTyped)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "오류 발생: file access error: "))
	assert.NotContains(t, stdout.String(), "Error: ")
}

func TestRunMissingRawReader(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := Run(&stdout, &stderr, testConfig("", "never-opened.xlsx"), sheetinspect.ModeRaw,
		sheetinspect.WithRawOpener(nil))

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Error: dependency missing")
	assert.Contains(t, stdout.String(), "go get github.com/thedatashed/xlsxreader\n")
	assert.Empty(t, stderr.String())
}

func TestRunWritesSummary(t *testing.T) {
	path := writeWorkbook(t, "guinness_test_data.xlsx")
	cfg := testConfig(path, "")
	cfg.Report.SummaryPath = filepath.Join(t.TempDir(), "excel-info.json")
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, Run(&stdout, &stderr, cfg, sheetinspect.ModeTyped))

	data, err := os.ReadFile(cfg.Report.SummaryPath)
	require.NoError(t, err)
	var summary sheetinspect.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, []string{"Region", "Count"}, summary.Columns)
	assert.Len(t, summary.Sample, 3)
}

func TestRunKoreanDescribe(t *testing.T) {
	path := writeWorkbook(t, "guinness_test_data.xlsx")
	cfg := testConfig(path, "")
	cfg.Report.Lang = "ko"
	cfg.Report.Describe = true
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, Run(&stdout, &stderr, cfg, sheetinspect.ModeTyped))

	assert.Contains(t, stdout.String(), "총 데이터 수: 3개\n")
	assert.Contains(t, stdout.String(), "Region별 인원:\n")
	assert.Contains(t, stdout.String(), "숫자 컬럼 통계:\n")
	assert.NotContains(t, stdout.String(), "데이터가 없습니다.")
}
