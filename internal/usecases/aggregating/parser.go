package aggregating

import (
	"fmt"
	"strings"

	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/pkg/utils"
)

// Row é uma linha da planilha já tipada segundo o Schema.
// Region, Month, Category e Action guardam o texto original; as versões
// em minúsculas são usadas para filtrar.
type Row struct {
	ID            string
	StartDate     *string
	EndDate       *string
	Region        string
	Month         string
	Category      string
	Action        string
	Payload       domain.Metric
	Revenue       domain.Metric
	User          domain.Metric
	Opex          float64
	Profitability float64
}

// HasClassification indica se a linha tem todas as colunas exigidas pelos resumos
func (r Row) HasClassification() bool {
	return r.ID != "" && r.Region != "" && r.Action != "" && r.Category != "" && r.Month != ""
}

func (r Row) MatchesFilter(f domain.QueryFilterSet) bool {
	return f.Matches(
		strings.ToLower(r.Region),
		strings.ToLower(r.Month),
		strings.ToLower(r.Category),
		strings.ToLower(r.Action),
	)
}

// ParseRow converte as células brutas em Row. Colunas ausentes viram vazio ou 0.
func (s Schema) ParseRow(raw []any) Row {
	return Row{
		ID:        cellText(raw, s.ID),
		StartDate: cellOptional(raw, s.StartDate),
		EndDate:   cellOptional(raw, s.EndDate),
		Region:    cellText(raw, s.Region),
		Month:     cellText(raw, s.Month),
		Category:  cellText(raw, s.Category),
		Action:    cellText(raw, s.Action),
		Payload: domain.Metric{
			Baseline: cellNumber(raw, s.PayloadBaseline),
			Event:    cellNumber(raw, s.PayloadEvent),
			Delta:    cellNumber(raw, s.PayloadDelta),
		},
		Revenue: domain.Metric{
			Baseline: cellNumber(raw, s.RevenueBaseline),
			Event:    cellNumber(raw, s.RevenueEvent),
			Delta:    cellNumber(raw, s.RevenueDelta),
		},
		User: domain.Metric{
			Baseline: cellNumber(raw, s.UserBaseline),
			Event:    cellNumber(raw, s.UserEvent),
			Delta:    cellNumber(raw, s.UserDelta),
		},
		Opex:          cellNumber(raw, s.Opex),
		Profitability: cellNumber(raw, s.Profitability),
	}
}

func cell(raw []any, index int) any {
	if index < 0 || index >= len(raw) {
		return nil
	}
	return raw[index]
}

func cellText(raw []any, index int) string {
	v := cell(raw, index)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func cellOptional(raw []any, index int) *string {
	text := cellText(raw, index)
	if text == "" {
		return nil
	}
	return &text
}

func cellNumber(raw []any, index int) float64 {
	return utils.ParseNumeric(cell(raw, index))
}
