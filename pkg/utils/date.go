package utils

import (
	"strings"
	"time"
)

var sheetDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2 January 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2006-01",
}

// ParseSheetDate interpreta as datas como vêm da planilha.
// Datas ausentes ou inválidas valem a época Unix.
func ParseSheetDate(value *string) time.Time {
	if value == nil {
		return time.Unix(0, 0).UTC()
	}

	raw := strings.TrimSpace(*value)
	for _, layout := range sheetDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}

	return time.Unix(0, 0).UTC()
}
