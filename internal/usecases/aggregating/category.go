package aggregating

import "strings"

type ActionCategory string

const (
	CategoryAddNe       ActionCategory = "AddNe"
	CategoryCMON        ActionCategory = "CMON"
	CategoryCombat      ActionCategory = "Combat"
	CategoryEasymacro   ActionCategory = "easymacro"
	CategoryMassivemimo ActionCategory = "massivemimo"
	CategoryRepeater    ActionCategory = "repeater"
	CategoryOptim       ActionCategory = "optim"
	CategoryUnknown     ActionCategory = "unknown"
)

// a ordem importa: o primeiro padrão encontrado vence
var actionPatterns = []struct {
	pattern  string
	category ActionCategory
}{
	{pattern: "add new ne", category: CategoryAddNe},
	{pattern: "cmon", category: CategoryCMON},
	{pattern: "combat", category: CategoryCombat},
	{pattern: "easymacro", category: CategoryEasymacro},
	{pattern: "massivemimo", category: CategoryMassivemimo},
	{pattern: "repeater", category: CategoryRepeater},
	{pattern: "optim site", category: CategoryOptim},
}

// MapActionCategory classifica o rótulo de ação por busca de substring sem diferenciar maiúsculas
func MapActionCategory(label string) ActionCategory {
	lower := strings.ToLower(label)
	for _, p := range actionPatterns {
		if strings.Contains(lower, p.pattern) {
			return p.category
		}
	}
	return CategoryUnknown
}
