package domain

// Regiões atendidas pelos endpoints dedicados
const (
	RegionEastJava    = "Jawa Timur"
	RegionCentralJava = "Jawa Tengah"
	RegionBaliNusra   = "Bali Nusra"
)

type SummaryTotals struct {
	Opex          float64 `json:"opex"`
	Profitability float64 `json:"profitability"`
	Revenue       float64 `json:"revenue"`
	RevenueGrowth float64 `json:"revenueGrowth"`
	Payload       float64 `json:"payload"`
	PayloadGrowth float64 `json:"payloadGrowth"`
	User          float64 `json:"user"`
	UserGrowth    float64 `json:"userGrowth"`
}

// AreaSummary é o resultado do modo filtrar-e-somar (área ou região)
type AreaSummary struct {
	EventCounts int           `json:"eventCounts"`
	Totals      SummaryTotals `json:"totals"`
}

type MonthTotals struct {
	Month         string  `json:"month"`
	Opex          float64 `json:"opex"`
	Revenue       float64 `json:"revenue"`
	Profitability float64 `json:"profitability"`
	Payload       float64 `json:"payload"`
	User          float64 `json:"user"`
}

// RegionSeries agrupa os totais mensais de uma região, na ordem em que os meses apareceram
type RegionSeries struct {
	Region string        `json:"region"`
	Months []MonthTotals `json:"months"`
}

// ActionSummary contém a contagem fixa por categoria de ação
type ActionSummary struct {
	AddNe       int `json:"AddNe"`
	CMON        int `json:"CMON"`
	Combat      int `json:"Combat"`
	Easymacro   int `json:"easymacro"`
	Massivemimo int `json:"massivemimo"`
	Repeater    int `json:"repeater"`
	Optim       int `json:"optim"`
}
