package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
	"github.com/vfg2006/event-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const DefaultTimeout = 30 * time.Second

// Client lê um intervalo A1 de uma aba. Linhas e células vazias no fim podem
// vir omitidas.
type Client interface {
	FetchRange(ctx context.Context, sheetName, rangeSpec string) ([][]any, error)
}

type SheetsIntegrator interface {
	FetchRange(ctx context.Context, sheetName, rangeSpec string) ([][]any, error)
}

// FetchRecorder registra cada chamada ao provedor
type FetchRecorder interface {
	Record(ctx context.Context, fetch domain.SheetFetch) error
}

type SheetsService struct {
	client   Client
	timeout  time.Duration
	recorder FetchRecorder
	now      func() time.Time
}

// New cria o integrador. recorder pode ser nil quando o log de buscas está desligado.
func New(client Client, timeout time.Duration, recorder FetchRecorder) SheetsIntegrator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SheetsService{
		client:   client,
		timeout:  timeout,
		recorder: recorder,
		now:      time.Now,
	}
}

func (s *SheetsService) FetchRange(ctx context.Context, sheetName, rangeSpec string) ([][]any, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"sheet": sheetName,
		"range": rangeSpec,
	})

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := s.now()
	rows, err := s.client.FetchRange(fetchCtx, sheetName, rangeSpec)
	elapsed := s.now().Sub(started)

	s.record(ctx, sheetName, rangeSpec, len(rows), elapsed, err)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.WithError(err).Errorf("sheets: tempo esgotado após %s", s.timeout)
		} else {
			logger.WithError(err).Error("sheets: falha ao ler o intervalo")
		}
		return nil, fmt.Errorf("%w: %s!%s: %w", ErrUpstreamUnavailable, sheetName, rangeSpec, err)
	}

	logger.WithFields(log.Fields{
		"rows":        len(rows),
		"duration_ms": elapsed.Milliseconds(),
	}).Debug("sheets: intervalo lido")

	return rows, nil
}

func (s *SheetsService) record(ctx context.Context, sheetName, rangeSpec string, rows int, elapsed time.Duration, fetchErr error) {
	if s.recorder == nil {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("sheets: falha ao gerar id do registro de busca")
		return
	}

	fetch := domain.SheetFetch{
		ID:         id,
		SheetName:  sheetName,
		Range:      rangeSpec,
		Rows:       rows,
		DurationMs: elapsed.Milliseconds(),
		Success:    fetchErr == nil,
		FetchedAt:  s.now().UTC(),
	}
	if fetchErr != nil {
		msg := fetchErr.Error()
		fetch.Error = &msg
	}

	if err := s.recorder.Record(context.WithoutCancel(ctx), fetch); err != nil {
		log.ForContext(ctx).WithError(err).Warn("sheets: falha ao registrar a busca")
	}
}
