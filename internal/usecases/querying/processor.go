// Package querying aplica busca, ordenação e paginação sobre os registros agregados
package querying

import (
	"cmp"
	"slices"
	"strings"

	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/pkg/utils"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const SortDesc = "desc"

type Processor struct {
	defaultLimit int
}

func New(defaultLimit int) *Processor {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultPageSize
	}
	return &Processor{defaultLimit: defaultLimit}
}

// Apply executa busca, ordenação e paginação, nessa ordem
func (p *Processor) Apply(records []domain.EventRecord, q domain.TableQuery) domain.TablePage {
	result := Search(records, q.SearchQuery)
	result = Sort(result, q.SortBy, q.SortOrder)
	data, pagination := p.Paginate(result, q.Page, q.Limit)
	return domain.TablePage{Data: data, Pagination: pagination}
}

// Search filtra por substring no nome ou no ID, sem diferenciar maiúsculas
func Search(records []domain.EventRecord, query string) []domain.EventRecord {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return slices.Clone(records)
	}

	result := make([]domain.EventRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) || strings.Contains(strings.ToLower(r.ID), needle) {
			result = append(result, r)
		}
	}
	return result
}

// Sort ordena de forma estável pelo campo informado. Métricas usam o delta
// (ou o subcampo explícito, ex.: "revenue.baseline"), datas são comparadas
// como datas e o restante como texto sem diferenciar maiúsculas/acentos.
// Campos desconhecidos deixam a ordem original.
func Sort(records []domain.EventRecord, sortBy, sortOrder string) []domain.EventRecord {
	result := slices.Clone(records)

	compare := comparatorFor(sortBy)
	if compare == nil {
		return result
	}

	sign := 1
	if strings.EqualFold(strings.TrimSpace(sortOrder), SortDesc) {
		sign = -1
	}

	slices.SortStableFunc(result, func(a, b domain.EventRecord) int {
		return sign * compare(&a, &b)
	})
	return result
}

type comparator func(a, b *domain.EventRecord) int

func comparatorFor(sortBy string) comparator {
	field, sub, _ := strings.Cut(strings.TrimSpace(sortBy), ".")

	switch field {
	case "payload", "revenue", "user":
		pick := metricPicker(sub)
		if pick == nil {
			return nil
		}
		return func(a, b *domain.EventRecord) int {
			ma, _ := a.MetricByName(field)
			mb, _ := b.MetricByName(field)
			return cmp.Compare(pick(ma), pick(mb))
		}
	}

	if sub != "" {
		return nil
	}

	switch field {
	case "startDate":
		return func(a, b *domain.EventRecord) int {
			return utils.ParseSheetDate(a.StartDate).Compare(utils.ParseSheetDate(b.StartDate))
		}
	case "endDate":
		return func(a, b *domain.EventRecord) int {
			return utils.ParseSheetDate(a.EndDate).Compare(utils.ParseSheetDate(b.EndDate))
		}
	case "id", "name":
		collator := collate.New(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics)
		return func(a, b *domain.EventRecord) int {
			if field == "id" {
				return collator.CompareString(a.ID, b.ID)
			}
			return collator.CompareString(a.Name, b.Name)
		}
	}

	return nil
}

func metricPicker(sub string) func(domain.Metric) float64 {
	switch sub {
	case "", "delta":
		return func(m domain.Metric) float64 { return m.Delta }
	case "baseline":
		return func(m domain.Metric) float64 { return m.Baseline }
	case "event":
		return func(m domain.Metric) float64 { return m.Event }
	}
	return nil
}

// Paginate recorta a página [(page-1)*limit, page*limit). Página além do fim
// devolve lista vazia; page e limit inválidos caem nos padrões. As contas são
// feitas por divisão para que valores enormes vindos da URL não estourem int.
func (p *Processor) Paginate(records []domain.EventRecord, page, limit int) ([]domain.EventRecord, domain.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = p.defaultLimit
	}

	total := len(records)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	pagination := domain.Pagination{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
	}

	if page-1 >= totalPages {
		return []domain.EventRecord{}, pagination
	}

	// page-1 < totalPages garante start < total
	start := (page - 1) * limit
	end := start + min(limit, total-start)
	return records[start:end], pagination
}
