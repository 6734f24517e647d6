// Command raw prints the stored rows of "guinness_test_data (1).xlsx"
// verbatim, header row included, without type inference.
package main

import (
	sheetinspect "sheet-inspect"
	"sheet-inspect/internal/app"
)

func main() {
	app.Main(sheetinspect.ModeRaw)
}
