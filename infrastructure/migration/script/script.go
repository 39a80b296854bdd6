package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-sheet-sync/internal/config"
	"github.com/vfg2006/campaign-sheet-sync/pkg/utils"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS campaigns (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		leads_meta       INTEGER NOT NULL DEFAULT 0,
		cpl_meta         NUMERIC(12, 2) NOT NULL DEFAULT 0,
		taxa_entrada_min NUMERIC(6, 2) NOT NULL DEFAULT 0,
		taxa_saida_max   NUMERIC(6, 2) NOT NULL DEFAULT 0,
		spreadsheet_link TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS daily_metrics (
		id           TEXT PRIMARY KEY,
		campaign_id  TEXT NOT NULL REFERENCES campaigns (id) ON DELETE CASCADE,
		date         DATE NOT NULL,
		clicks       INTEGER NOT NULL DEFAULT 0,
		entradas     INTEGER NOT NULL DEFAULT 0,
		saidas       INTEGER NOT NULL DEFAULT 0,
		investimento NUMERIC(12, 2) NOT NULL DEFAULT 0,
		leads        INTEGER NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT daily_metrics_campaign_date_key UNIQUE (campaign_id, date)
	)`,
}

func main() {
	seedName := flag.String("seed-campaign", "", "nome de uma campanha para criar após a migração")
	seedLink := flag.String("seed-link", "", "link da planilha da campanha criada com -seed-campaign")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("comando %d/%d: %w", i+1, len(schemaStatements), err)
			}
		}

		if *seedName == "" {
			return nil
		}
		return seedCampaign(ctx, tx, *seedName, *seedLink)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migração")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}

func seedCampaign(ctx context.Context, tx *sql.Tx, name, link string) error {
	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	var spreadsheetLink sql.NullString
	if link != "" {
		spreadsheetLink = sql.NullString{String: link, Valid: true}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO campaigns (id, name, spreadsheet_link) VALUES ($1, $2, $3)`,
		id, name, spreadsheetLink,
	)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"campaign_id": id, "name": name}).Info("Campanha criada")
	return nil
}
