// Command typed prints a typed report of guinness_test_data.xlsx: row count,
// columns, a preview, inferred column types and counts per first-column value.
package main

import (
	sheetinspect "sheet-inspect"
	"sheet-inspect/internal/app"
)

func main() {
	app.Main(sheetinspect.ModeTyped)
}
