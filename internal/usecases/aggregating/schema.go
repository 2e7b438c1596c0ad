package aggregating

import (
	"fmt"
	"strings"
)

// Schema declara, em um único lugar, qual coluna da planilha (A=0 ... X=23)
// guarda cada campo semântico.
type Schema struct {
	ID              int
	StartDate       int
	EndDate         int
	Region          int
	PayloadBaseline int
	PayloadEvent    int
	PayloadDelta    int
	RevenueBaseline int
	RevenueEvent    int
	RevenueDelta    int
	UserBaseline    int
	UserEvent       int
	UserDelta       int
	Action          int
	Category        int
	Month           int
	Opex            int
	Profitability   int
}

// DefaultSchema reflete o layout da aba principal (intervalo A2:X)
var DefaultSchema = Schema{
	ID:              0,  // A
	StartDate:       2,  // C
	EndDate:         3,  // D
	Region:          4,  // E
	PayloadBaseline: 5,  // F
	PayloadEvent:    6,  // G
	PayloadDelta:    7,  // H
	RevenueBaseline: 8,  // I
	RevenueEvent:    9,  // J
	RevenueDelta:    10, // K
	UserBaseline:    11, // L
	UserEvent:       12, // M
	UserDelta:       13, // N
	Action:          17, // R
	Category:        18, // S
	Month:           19, // T
	Opex:            20, // U
	Profitability:   21, // V
}

// ColumnSpec descreve uma coluna esperada e o cabeçalho que ela deve ter
type ColumnSpec struct {
	Field  string
	Index  int
	Header string
}

// Columns lista as colunas mapeadas na ordem da planilha
func (s Schema) Columns() []ColumnSpec {
	return []ColumnSpec{
		{Field: "id", Index: s.ID, Header: "Event ID"},
		{Field: "startDate", Index: s.StartDate, Header: "Start Date"},
		{Field: "endDate", Index: s.EndDate, Header: "End Date"},
		{Field: "region", Index: s.Region, Header: "Region"},
		{Field: "payload.baseline", Index: s.PayloadBaseline, Header: "Payload Baseline"},
		{Field: "payload.event", Index: s.PayloadEvent, Header: "Payload Event"},
		{Field: "payload.delta", Index: s.PayloadDelta, Header: "Payload Delta"},
		{Field: "revenue.baseline", Index: s.RevenueBaseline, Header: "Revenue Baseline"},
		{Field: "revenue.event", Index: s.RevenueEvent, Header: "Revenue Event"},
		{Field: "revenue.delta", Index: s.RevenueDelta, Header: "Revenue Delta"},
		{Field: "user.baseline", Index: s.UserBaseline, Header: "User Baseline"},
		{Field: "user.event", Index: s.UserEvent, Header: "User Event"},
		{Field: "user.delta", Index: s.UserDelta, Header: "User Delta"},
		{Field: "action", Index: s.Action, Header: "Action"},
		{Field: "category", Index: s.Category, Header: "Category"},
		{Field: "month", Index: s.Month, Header: "Month"},
		{Field: "opex", Index: s.Opex, Header: "Opex"},
		{Field: "profitability", Index: s.Profitability, Header: "Profitability"},
	}
}

// HeaderMismatch aponta uma coluna cujo cabeçalho não é o esperado
type HeaderMismatch struct {
	Column   ColumnSpec
	Found    string
	Expected string
}

func (m HeaderMismatch) String() string {
	return fmt.Sprintf("coluna %s (%s): esperado %q, encontrado %q", columnLetter(m.Column.Index), m.Column.Field, m.Expected, m.Found)
}

// ValidateHeader compara a linha de cabeçalho com o schema, ignorando
// maiúsculas, espaços, hífens e sublinhados.
func (s Schema) ValidateHeader(header []any) []HeaderMismatch {
	var mismatches []HeaderMismatch
	for _, col := range s.Columns() {
		found := cellText(header, col.Index)
		if normalizeHeader(found) != normalizeHeader(col.Header) {
			mismatches = append(mismatches, HeaderMismatch{Column: col, Found: found, Expected: col.Header})
		}
	}
	return mismatches
}

func normalizeHeader(h string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "", ".", "").Replace(strings.ToLower(strings.TrimSpace(h)))
}

func columnLetter(index int) string {
	letters := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		letters = string(rune('A'+(n-1)%26)) + letters
	}
	return letters
}
