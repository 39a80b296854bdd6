package sheetclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	spreadsheetdomain "github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet/domain"
)

var ErrDocumentTooLarge = errors.New("planilha excede o tamanho máximo permitido")

func (c *SheetClient) Get(ctx context.Context, url string) (*spreadsheetdomain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var reader io.Reader = resp.Body
	if c.maxBytes > 0 {
		reader = io.LimitReader(resp.Body, c.maxBytes+1)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if c.maxBytes > 0 && int64(len(body)) > c.maxBytes {
		return nil, ErrDocumentTooLarge
	}

	return &spreadsheetdomain.Document{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
