package sheetinspect

import "strings"

// Labels holds the fixed text of a report. Fields with a verb are format
// strings.
type Labels struct {
	Title        string // %s: file name
	RawTitle     string // %s: file name
	Sheets       string // %s: sheet list
	TotalRows    string // %d
	RawTotalRows string // %d
	Columns      string // %s: column list
	RawColumns   string // %s: first row
	Preview      string // %d: row limit
	AllRows      string
	Header       string
	NoRows       string
	Types        string
	Groups       string // %s: grouping column name
	Empty        string
	Describe     string
	Error        string // %v: the failure
}

var EnglishLabels = Labels{
	Title:        "%s",
	RawTitle:     "%s (raw)",
	Sheets:       "Sheets: %s",
	TotalRows:    "Total rows: %d",
	RawTotalRows: "Total rows (header included): %d",
	Columns:      "Columns: %s",
	RawColumns:   "Columns (first row): %s",
	Preview:      "First %d rows:",
	AllRows:      "All rows:",
	Header:       "Header",
	NoRows:       "No data rows.",
	Types:        "Column types:",
	Groups:       "Counts by %s:",
	Empty:        "(empty)",
	Describe:     "Numeric summary:",
	Error:        "Error: %v",
}

var KoreanLabels = Labels{
	Title:        "%s 파일 정보",
	RawTitle:     "%s 파일 정보 (원본)",
	Sheets:       "시트 이름: %s",
	TotalRows:    "총 데이터 수: %d개",
	RawTotalRows: "총 행 수: %d개",
	Columns:      "컬럼명: %s",
	RawColumns:   "컬럼명 (첫 행): %s",
	Preview:      "첫 %d개 데이터:",
	AllRows:      "모든 데이터:",
	Header:       "헤더",
	NoRows:       "데이터가 없습니다.",
	Types:        "데이터 타입:",
	Groups:       "%s별 인원:",
	Empty:        "(빈 값)",
	Describe:     "숫자 컬럼 통계:",
	Error:        "오류 발생: %v",
}

// LabelsFor returns the label set for a language code; unknown codes fall
// back to English.
func LabelsFor(lang string) Labels {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "ko", "kr", "korean":
		return KoreanLabels
	default:
		return EnglishLabels
	}
}
