package domain

import "time"

// SheetFetch registra uma chamada ao provedor da planilha
type SheetFetch struct {
	ID         string    `json:"id"`
	SheetName  string    `json:"sheet_name"`
	Range      string    `json:"range"`
	Rows       int       `json:"rows"`
	DurationMs int64     `json:"duration_ms"`
	Success    bool      `json:"success"`
	Error      *string   `json:"error,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
}
