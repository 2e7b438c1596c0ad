package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
)

func TestBuildRecordQuery(t *testing.T) {
	msg := "timeout"
	fetchedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	query, args, err := buildRecordQuery(domain.SheetFetch{
		ID:         "abc123",
		SheetName:  "Sheet1",
		Range:      "A2:X",
		Rows:       0,
		DurationMs: 30000,
		Success:    false,
		Error:      &msg,
		FetchedAt:  fetchedAt,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO sheet_fetch_log (id,sheet_name,range_spec,row_count,duration_ms,success,error,fetched_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)",
		query,
	)
	assert.Equal(t, []any{"abc123", "Sheet1", "A2:X", 0, int64(30000), false, &msg, fetchedAt}, args)
}

func TestBuildRecentQuery(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected string
	}{
		{name: "limite informado", limit: 5, expected: "SELECT id, sheet_name, range_spec, row_count, duration_ms, success, error, fetched_at FROM sheet_fetch_log ORDER BY fetched_at DESC LIMIT 5"},
		{name: "limite padrão", limit: 0, expected: "SELECT id, sheet_name, range_spec, row_count, duration_ms, success, error, fetched_at FROM sheet_fetch_log ORDER BY fetched_at DESC LIMIT 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildRecentQuery(tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
			assert.Empty(t, args)
		})
	}
}
