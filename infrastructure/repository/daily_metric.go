package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-sheet-sync/internal/domain"
	"github.com/vfg2006/campaign-sheet-sync/pkg/utils"
)

const (
	dailyMetricsTable = "daily_metrics dm"

	// upsertChunkSize mantém cada INSERT abaixo do limite de parâmetros do Postgres
	upsertChunkSize = 1000
)

var dailyMetricColumns = []string{
	"dm.id",
	"dm.campaign_id",
	"dm.date",
	"dm.clicks",
	"dm.entradas",
	"dm.saidas",
	"dm.leads",
	"dm.investimento",
	"dm.created_at",
}

type DailyMetricRepository interface {
	ListByCampaignID(ctx context.Context, campaignID string) ([]*domain.DailyMetric, error)
	ListByDateRange(ctx context.Context, campaignID string, startDate, endDate *time.Time) ([]*domain.DailyMetric, error)
	UpsertBatch(ctx context.Context, records []domain.MergedRecord) error
}

type dailyMetricRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

// ListByCampaignID retorna todo o histórico da campanha, sem paginação
func (r *dailyMetricRepository) ListByCampaignID(ctx context.Context, campaignID string) ([]*domain.DailyMetric, error) {
	return r.ListByDateRange(ctx, campaignID, nil, nil)
}

func (r *dailyMetricRepository) ListByDateRange(ctx context.Context, campaignID string, startDate, endDate *time.Time) ([]*domain.DailyMetric, error) {
	queryBuilder := squirrel.
		Select(dailyMetricColumns...).
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.campaign_id": campaignID}).
		OrderBy("dm.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if startDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"dm.date": startDate.Format(time.DateOnly)})
	}
	if endDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"dm.date": endDate.Format(time.DateOnly)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		metric := &domain.DailyMetric{}
		if err := rows.Scan(
			&metric.ID,
			&metric.CampaignID,
			&metric.Date,
			&metric.Clicks,
			&metric.Entries,
			&metric.Exits,
			&metric.Leads,
			&metric.AmountSpent,
			&metric.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

// UpsertBatch grava todos os registros em uma única transação, com conflito em (campaign_id, date).
// Ou todos os dias são gravados ou nenhum.
func (r *dailyMetricRepository) UpsertBatch(ctx context.Context, records []domain.MergedRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += upsertChunkSize {
			end := start + upsertChunkSize
			if end > len(records) {
				end = len(records)
			}

			if err := r.upsertChunk(ctx, tx, records[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *dailyMetricRepository) upsertChunk(ctx context.Context, q postgres.Queryer, records []domain.MergedRecord) error {
	query := squirrel.StatementBuilder.
		Insert("daily_metrics").
		Columns("id", "campaign_id", "date", "investimento", "leads", "clicks", "entradas", "saidas")

	for _, record := range records {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador da métrica: %w", err)
		}

		query = query.Values(
			id,
			record.CampaignID,
			record.Date,
			record.AmountSpent,
			record.Leads,
			record.Clicks,
			record.Entries,
			record.Exits,
		)
	}

	sqlQuery, args, err := query.
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				investimento = EXCLUDED.investimento,
				leads = EXCLUDED.leads,
				clicks = EXCLUDED.clicks,
				entradas = EXCLUDED.entradas,
				saidas = EXCLUDED.saidas,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = q.ExecContext(ctx, sqlQuery, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
