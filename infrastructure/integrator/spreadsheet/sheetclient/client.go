package sheetclient

import (
	"context"
	"net/http"

	spreadsheetdomain "github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet/domain"
	"github.com/vfg2006/campaign-sheet-sync/internal/config"
)

// HTTPClient permite substituir o transporte nos testes
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client interface {
	Get(ctx context.Context, url string) (*spreadsheetdomain.Document, error)
}

type SheetClient struct {
	httpClient HTTPClient
	maxBytes   int64
}

// NewClient cria o cliente de download. Sem timeout configurado vale o padrão do transporte.
func NewClient(cfg *config.Config) Client {
	return &SheetClient{
		httpClient: &http.Client{
			Timeout: cfg.Spreadsheet.FetchTimeout(),
		},
		maxBytes: cfg.Spreadsheet.MaxBytes,
	}
}

func NewClientWithHTTP(httpClient HTTPClient, maxBytes int64) Client {
	return &SheetClient{
		httpClient: httpClient,
		maxBytes:   maxBytes,
	}
}
