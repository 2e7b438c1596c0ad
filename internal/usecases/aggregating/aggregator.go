// Package aggregating transforma a grade bruta da planilha nos resumos do dashboard
package aggregating

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/pkg/utils"
)

// Dimension identifica a coluna usada nas listas de opções de filtro
type Dimension string

const (
	DimensionMonth    Dimension = "month"
	DimensionAction   Dimension = "action"
	DimensionCategory Dimension = "category"
)

const notAvailable = "#N/A"

var optionOrder = map[Dimension][]string{
	DimensionMonth: {
		"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
		"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
	},
	DimensionAction: {
		"OPTIM SITE", "INSTALL EASYMACRO", "INSTALL MASSIVEMIMO", "INSTALL CMON", "INSTALL COMBAT",
		"INSTALL REPEATER", "ADD SECTOR", "ADD NEW NE",
	},
	DimensionCategory: {
		"LOCAL", "VIP EVENT", "INTERNATIONAL", "ENTERPRISE", "INTERNAL",
	},
}

type Aggregator struct {
	schema Schema
}

func New(schema Schema) *Aggregator {
	return &Aggregator{schema: schema}
}

func (a *Aggregator) Schema() Schema {
	return a.schema
}

// BuildNameLookup monta o mapa ID -> nome a partir do intervalo de nomes (ID, Nome)
func BuildNameLookup(raw [][]any) map[string]string {
	names := make(map[string]string, len(raw))
	for _, r := range raw {
		id := cellText(r, 0)
		name := cellText(r, 1)
		if id != "" && name != "" {
			names[id] = name
		}
	}
	return names
}

// GroupByID soma as métricas de todas as linhas com o mesmo ID. Datas e nome
// vêm da primeira linha encontrada; a saída segue a ordem de aparição.
func (a *Aggregator) GroupByID(raw [][]any, names map[string]string) []domain.EventRecord {
	index := make(map[string]int)
	records := make([]domain.EventRecord, 0)

	for _, r := range raw {
		row := a.schema.ParseRow(r)
		if row.ID == "" {
			continue
		}

		pos, ok := index[row.ID]
		if !ok {
			name, found := names[row.ID]
			if !found {
				name = domain.UnknownEventName
			}
			records = append(records, domain.EventRecord{
				ID:        row.ID,
				Name:      name,
				StartDate: row.StartDate,
				EndDate:   row.EndDate,
			})
			pos = len(records) - 1
			index[row.ID] = pos
		}

		records[pos].Payload.Add(row.Payload)
		records[pos].Revenue.Add(row.Revenue)
		records[pos].User.Add(row.User)
	}

	return records
}

// Summarize filtra as linhas e soma as colunas do resumo de área/região.
// eventCounts conta IDs distintos, não linhas.
func (a *Aggregator) Summarize(raw [][]any, filters domain.QueryFilterSet) domain.AreaSummary {
	var (
		totals                                         domain.SummaryTotals
		payloadBaseline, revenueBaseline, userBaseline float64
		ids                                            []string
	)

	for _, r := range raw {
		row := a.schema.ParseRow(r)
		if !row.HasClassification() || !row.MatchesFilter(filters) {
			continue
		}

		ids = append(ids, row.ID)
		totals.Opex += row.Opex
		totals.Profitability += row.Profitability
		totals.Payload += row.Payload.Delta
		totals.Revenue += row.Revenue.Delta
		totals.User += row.User.Delta
		payloadBaseline += row.Payload.Baseline
		revenueBaseline += row.Revenue.Baseline
		userBaseline += row.User.Baseline
	}

	totals.PayloadGrowth = utils.Percentage(totals.Payload, payloadBaseline)
	totals.RevenueGrowth = utils.Percentage(totals.Revenue, revenueBaseline)
	totals.UserGrowth = utils.Percentage(totals.User, userBaseline)

	return domain.AreaSummary{
		EventCounts: len(lo.Uniq(ids)),
		Totals:      totals,
	}
}

// GroupByRegionMonth soma opex, receita, rentabilidade, payload e usuários por
// região e mês, sem filtro. Regiões e meses seguem a ordem de aparição.
func (a *Aggregator) GroupByRegionMonth(raw [][]any) []domain.RegionSeries {
	regionIndex := make(map[string]int)
	monthIndex := make([]map[string]int, 0)
	series := make([]domain.RegionSeries, 0)

	for _, r := range raw {
		row := a.schema.ParseRow(r)

		ri, ok := regionIndex[row.Region]
		if !ok {
			series = append(series, domain.RegionSeries{Region: row.Region, Months: []domain.MonthTotals{}})
			monthIndex = append(monthIndex, make(map[string]int))
			ri = len(series) - 1
			regionIndex[row.Region] = ri
		}

		mi, ok := monthIndex[ri][row.Month]
		if !ok {
			series[ri].Months = append(series[ri].Months, domain.MonthTotals{Month: row.Month})
			mi = len(series[ri].Months) - 1
			monthIndex[ri][row.Month] = mi
		}

		bucket := &series[ri].Months[mi]
		bucket.Opex += row.Opex
		bucket.Revenue += row.Revenue.Delta
		bucket.Profitability += row.Profitability
		bucket.Payload += row.Payload.Delta
		bucket.User += row.User.Delta
	}

	return series
}

// FilterOptions lista os valores distintos da dimensão, em maiúsculas, sem
// vazios e sem "#N/A". Valores fora da ordem fixa vêm primeiro, na ordem de
// aparição; os conhecidos seguem a ordem fixa.
func (a *Aggregator) FilterOptions(raw [][]any, dim Dimension) []string {
	column := a.dimensionColumn(dim)

	values := lo.FilterMap(raw, func(r []any, _ int) (string, bool) {
		v := strings.ToUpper(cellText(r, column))
		if v == "" || v == notAvailable {
			return "", false
		}
		return v, true
	})
	values = lo.Uniq(values)

	order := optionOrder[dim]
	slices.SortStableFunc(values, func(x, y string) int {
		return slices.Index(order, x) - slices.Index(order, y)
	})

	return values
}

func (a *Aggregator) dimensionColumn(dim Dimension) int {
	switch dim {
	case DimensionMonth:
		return a.schema.Month
	case DimensionAction:
		return a.schema.Action
	default:
		return a.schema.Category
	}
}

// SummarizeActions conta as linhas por categoria de ação
func (a *Aggregator) SummarizeActions(raw [][]any) domain.ActionSummary {
	var summary domain.ActionSummary
	for _, r := range raw {
		switch MapActionCategory(cellText(r, a.schema.Action)) {
		case CategoryAddNe:
			summary.AddNe++
		case CategoryCMON:
			summary.CMON++
		case CategoryCombat:
			summary.Combat++
		case CategoryEasymacro:
			summary.Easymacro++
		case CategoryMassivemimo:
			summary.Massivemimo++
		case CategoryRepeater:
			summary.Repeater++
		case CategoryOptim:
			summary.Optim++
		}
	}
	return summary
}
