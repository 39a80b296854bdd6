package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/integrator/spreadsheet/sheetclient"
	"github.com/vfg2006/campaign-sheet-sync/infrastructure/repository"
	"github.com/vfg2006/campaign-sheet-sync/internal/api"
	"github.com/vfg2006/campaign-sheet-sync/internal/config"
	"github.com/vfg2006/campaign-sheet-sync/internal/scheduler"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/campaign"
	"github.com/vfg2006/campaign-sheet-sync/internal/usecases/sheetsync"
	"github.com/vfg2006/campaign-sheet-sync/pkg/log"
	"github.com/vfg2006/campaign-sheet-sync/pkg/metrics"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	syncMetrics := metrics.NewSyncMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	campaignRepo := repository.NewCampaignRepository(pgConn)
	dailyMetricRepo := repository.NewDailyMetricRepository(pgConn)

	sheetClient := sheetclient.NewClient(cfg)
	spreadsheetIntegrator := spreadsheet.New(sheetClient)

	syncService := sheetsync.NewService(spreadsheetIntegrator, campaignRepo, dailyMetricRepo, syncMetrics)
	campaignService := campaign.NewService(campaignRepo, dailyMetricRepo)

	spreadsheetSyncService := scheduler.NewSpreadsheetSyncService(campaignRepo, syncService, cfg)
	if err := spreadsheetSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de sincronização de planilhas")
	}

	server, err := api.New(
		cfg,
		campaignService,
		syncService,
		spreadsheetSyncService,
		registry,
		httpMetrics,
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// changeToSourceDir permite localizar o .env ao rodar com go run
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
