// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/event-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
)

//go:generate mockgen -source=fetch_log.go -destination=mocks/mock_fetch_log.go -package=mocks

const (
	fetchLogTable        = "sheet_fetch_log"
	DefaultRecentFetches = 10
)

type FetchLogRepository interface {
	Record(ctx context.Context, fetch domain.SheetFetch) error
	Recent(ctx context.Context, limit int) ([]domain.SheetFetch, error)
}

type fetchLogRepository struct {
	conn postgres.Queryer
}

func NewFetchLogRepository(conn postgres.Queryer) FetchLogRepository {
	return &fetchLogRepository{
		conn: conn,
	}
}

func (r *fetchLogRepository) Record(ctx context.Context, fetch domain.SheetFetch) error {
	query, args, err := buildRecordQuery(fetch)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao registrar busca da planilha: %w", err)
	}
	return nil
}

func (r *fetchLogRepository) Recent(ctx context.Context, limit int) ([]domain.SheetFetch, error) {
	query, args, err := buildRecentQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	fetches := make([]domain.SheetFetch, 0, limit)
	for rows.Next() {
		var (
			fetch  domain.SheetFetch
			errMsg sql.NullString
		)
		if err := rows.Scan(
			&fetch.ID,
			&fetch.SheetName,
			&fetch.Range,
			&fetch.Rows,
			&fetch.DurationMs,
			&fetch.Success,
			&errMsg,
			&fetch.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear busca: %w", err)
		}
		if errMsg.Valid {
			fetch.Error = &errMsg.String
		}
		fetches = append(fetches, fetch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar buscas: %w", err)
	}

	return fetches, nil
}

func buildRecordQuery(fetch domain.SheetFetch) (string, []any, error) {
	return squirrel.
		Insert(fetchLogTable).
		Columns("id", "sheet_name", "range_spec", "row_count", "duration_ms", "success", "error", "fetched_at").
		Values(
			fetch.ID,
			fetch.SheetName,
			fetch.Range,
			fetch.Rows,
			fetch.DurationMs,
			fetch.Success,
			fetch.Error,
			fetch.FetchedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildRecentQuery(limit int) (string, []any, error) {
	if limit <= 0 {
		limit = DefaultRecentFetches
	}

	return squirrel.
		Select("id", "sheet_name", "range_spec", "row_count", "duration_ms", "success", "error", "fetched_at").
		From(fetchLogTable).
		OrderBy("fetched_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
