package spreadsheet

//go:generate mockgen -destination=mocks/mock_spreadsheet.go -package=mocks github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet SpreadsheetIntegrator

import (
	"context"
	"strings"

	spreadsheetdomain "github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet/domain"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet/sheetclient"
)

const (
	editSuffix      = "/edit"
	csvExportSuffix = "/export?format=csv"
)

type SpreadsheetIntegrator interface {
	Download(ctx context.Context, spreadsheetLink string) (*spreadsheetdomain.Document, error)
}

type SpreadsheetService struct {
	Client sheetclient.Client
}

func New(client sheetclient.Client) SpreadsheetIntegrator {
	return &SpreadsheetService{
		Client: client,
	}
}

// Download baixa a planilha a partir do link informado pelo usuário
func (s *SpreadsheetService) Download(ctx context.Context, spreadsheetLink string) (*spreadsheetdomain.Document, error) {
	return s.Client.Get(ctx, ExportURL(spreadsheetLink))
}

// ExportURL troca o sufixo a partir de "/edit" por "/export?format=csv".
// Links sem "/edit" são usados como estão.
func ExportURL(spreadsheetLink string) string {
	idx := strings.Index(spreadsheetLink, editSuffix)
	if idx == -1 {
		return spreadsheetLink
	}
	return spreadsheetLink[:idx] + csvExportSuffix
}
