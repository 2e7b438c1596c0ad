// Package sheetsclient lê intervalos da API do Google Sheets
package sheetsclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/event-dashboard-api/infrastructure/integrator/sheets"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// valores formatados, como aparecem na planilha
const valueRenderOption = "FORMATTED_VALUE"

type SheetsClient struct {
	service       *gsheets.Service
	spreadsheetID string
}

// NewClient autentica com a conta de serviço informada. Sem credenciais usa
// as credenciais padrão do ambiente.
func NewClient(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*SheetsClient, error) {
	if spreadsheetID == "" {
		return nil, errors.New("SPREADSHEET_ID não configurado")
	}

	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsReadonlyScope)}
	if len(credentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	}

	return newClient(ctx, spreadsheetID, opts...)
}

func newClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*SheetsClient, error) {
	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao criar o cliente do Google Sheets")
	}

	return &SheetsClient{service: service, spreadsheetID: spreadsheetID}, nil
}

func (c *SheetsClient) FetchRange(ctx context.Context, sheetName, rangeSpec string) ([][]any, error) {
	resp, err := c.service.Spreadsheets.Values.
		Get(c.spreadsheetID, sheets.A1Range(sheetName, rangeSpec)).
		ValueRenderOption(valueRenderOption).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler %s", sheets.A1Range(sheetName, rangeSpec))
	}

	if resp.Values == nil {
		return [][]any{}, nil
	}
	return resp.Values, nil
}
