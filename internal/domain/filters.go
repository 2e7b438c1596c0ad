package domain

import "strings"

// QueryFilterSet é o predicado derivado dos parâmetros da requisição.
// Conjuntos nulos funcionam como curinga.
type QueryFilterSet struct {
	Months     map[string]struct{}
	Categories map[string]struct{}
	Actions    map[string]struct{}
	Region     string
}

// NewQueryFilterSet monta o filtro a partir das listas separadas por vírgula
func NewQueryFilterSet(months, categories, actions, region string) QueryFilterSet {
	return QueryFilterSet{
		Months:     splitLower(months),
		Categories: splitLower(categories),
		Actions:    splitLower(actions),
		Region:     strings.ToLower(strings.TrimSpace(region)),
	}
}

// Matches indica se os valores (já em minúsculas) satisfazem todas as dimensões presentes
func (f QueryFilterSet) Matches(region, month, category, action string) bool {
	if f.Region != "" && region != f.Region {
		return false
	}
	return inSet(f.Months, month) && inSet(f.Categories, category) && inSet(f.Actions, action)
}

func inSet(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}

func splitLower(raw string) map[string]struct{} {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	set := make(map[string]struct{})
	for _, part := range strings.Split(strings.ToLower(raw), ",") {
		set[strings.TrimSpace(part)] = struct{}{}
	}
	return set
}
