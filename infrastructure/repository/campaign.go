package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vfg2006/campaign-sheet-sync/infrastructure/repository CampaignRepository,DailyMetricRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

var ErrCampaignNotFound = errors.New("campanha não encontrada")

var campaignColumns = []string{
	"c.id",
	"c.name",
	"c.leads_meta",
	"c.cpl_meta",
	"c.taxa_entrada_min",
	"c.taxa_saida_max",
	"c.spreadsheet_link",
	"c.created_at",
}

type CampaignRepository interface {
	GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListWithSpreadsheet(ctx context.Context) ([]*domain.Campaign, error)
	UpdateLeadsGoal(ctx context.Context, campaignID string, totalLeads int) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := r.scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListWithSpreadsheet(ctx context.Context) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.NotEq{"c.spreadsheet_link": nil}).
		Where(squirrel.NotEq{"c.spreadsheet_link": ""}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// UpdateLeadsGoal sobrescreve a meta de leads da campanha com o total vindo da planilha
func (r *campaignRepository) UpdateLeadsGoal(ctx context.Context, campaignID string, totalLeads int) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("leads_meta", totalLeads).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *campaignRepository) scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var spreadsheetLink sql.NullString

	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.LeadsGoal,
		&campaign.CPLGoal,
		&campaign.EntryRateMin,
		&campaign.ExitRateMax,
		&spreadsheetLink,
		&campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if spreadsheetLink.Valid {
		campaign.SpreadsheetLink = &spreadsheetLink.String
	}

	return campaign, nil
}
