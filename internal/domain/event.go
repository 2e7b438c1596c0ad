// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// UnknownEventName é o nome usado quando o ID não existe na tabela de nomes
const UnknownEventName = "Unknown"

// Metric representa o trio baseline/evento/delta acompanhado por dimensão
type Metric struct {
	Baseline float64 `json:"baseline"`
	Event    float64 `json:"event"`
	Delta    float64 `json:"delta"`
}

// Add acumula outro trio no atual
func (m *Metric) Add(other Metric) {
	m.Baseline += other.Baseline
	m.Event += other.Event
	m.Delta += other.Delta
}

// EventRecord é a representação agregada de todas as linhas que compartilham um ID
type EventRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Payload   Metric  `json:"payload"`
	Revenue   Metric  `json:"revenue"`
	User      Metric  `json:"user"`
}

// MetricByName retorna o trio correspondente a payload, revenue ou user
func (e *EventRecord) MetricByName(name string) (Metric, bool) {
	switch name {
	case "payload":
		return e.Payload, true
	case "revenue":
		return e.Revenue, true
	case "user":
		return e.User, true
	}
	return Metric{}, false
}
