package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var campaignRowColumns = []string{"id", "name", "leads_meta", "cpl_meta", "taxa_entrada_min", "taxa_saida_max", "spreadsheet_link", "created_at"}

func TestCampaignRepository_GetByID(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("campanha encontrada", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCampaignRepository(conn)

		mock.ExpectQuery("FROM campaigns c WHERE c.id").
			WithArgs("camp-1").
			WillReturnRows(sqlmock.NewRows(campaignRowColumns).
				AddRow("camp-1", "Lançamento Janeiro", 500, 12.5, 30.0, 10.0, "https://docs.google.com/spreadsheets/d/abc/edit", createdAt))

		campaign, err := repo.GetByID(context.Background(), "camp-1")
		require.NoError(t, err)
		require.NotNil(t, campaign)
		assert.Equal(t, "Lançamento Janeiro", campaign.Name)
		assert.Equal(t, 500, campaign.LeadsGoal)
		assert.True(t, campaign.HasSpreadsheet())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campanha sem link de planilha", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCampaignRepository(conn)

		mock.ExpectQuery("FROM campaigns c WHERE c.id").
			WithArgs("camp-2").
			WillReturnRows(sqlmock.NewRows(campaignRowColumns).
				AddRow("camp-2", "Perpétuo", 0, 0.0, 0.0, 0.0, nil, createdAt))

		campaign, err := repo.GetByID(context.Background(), "camp-2")
		require.NoError(t, err)
		require.NotNil(t, campaign)
		assert.Nil(t, campaign.SpreadsheetLink)
		assert.False(t, campaign.HasSpreadsheet())
	})

	t.Run("campanha inexistente retorna nil", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCampaignRepository(conn)

		mock.ExpectQuery("FROM campaigns c WHERE c.id").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		campaign, err := repo.GetByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, campaign)
	})
}

func TestCampaignRepository_UpdateLeadsGoal(t *testing.T) {
	t.Run("atualiza uma linha", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCampaignRepository(conn)

		mock.ExpectExec("UPDATE campaigns SET leads_meta").
			WithArgs(10, "camp-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateLeadsGoal(context.Background(), "camp-1", 10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nenhuma linha afetada", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewCampaignRepository(conn)

		mock.ExpectExec("UPDATE campaigns SET leads_meta").
			WithArgs(10, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateLeadsGoal(context.Background(), "missing", 10)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestCampaignRepository_ListWithSpreadsheet(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewCampaignRepository(conn)

	mock.ExpectQuery("FROM campaigns c WHERE c.spreadsheet_link IS NOT NULL").
		WithArgs("").
		WillReturnRows(sqlmock.NewRows(campaignRowColumns).
			AddRow("camp-1", "A", 0, 0.0, 0.0, 0.0, "https://example.com/a.csv", time.Now()).
			AddRow("camp-3", "B", 0, 0.0, 0.0, 0.0, "https://example.com/b.csv", time.Now()))

	campaigns, err := repo.ListWithSpreadsheet(context.Background())
	require.NoError(t, err)
	assert.Len(t, campaigns, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
