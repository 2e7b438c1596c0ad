package sheets

import "strings"

// A1Range monta a notação "'Aba'!A2:X", escapando aspas simples no nome da aba
func A1Range(sheetName, rangeSpec string) string {
	if sheetName == "" {
		return rangeSpec
	}
	quoted := "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
	if rangeSpec == "" {
		return quoted
	}
	return quoted + "!" + rangeSpec
}
