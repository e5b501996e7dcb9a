package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/api"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/scheduler"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/identifying"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/ledgering"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/registering"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/summarizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	counterRepo := repository.NewCounterRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	summaryRepo := repository.NewSummaryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	setupRepo := repository.NewSetupRepository(pgConn)

	allocator := identifying.NewService(counterRepo)

	registryService := registering.NewService(customerRepo, allocator)
	ledgerService := ledgering.NewService(saleRepo, customerRepo, allocator, cfg)
	summaryService := summarizing.NewService(saleRepo, summaryRepo)
	authenticator := authenticating.NewService(userRepo, cfg)

	// Inicializa o agendador de reconstrução do resumo mensal
	summarySyncService := scheduler.NewSummarySyncService(summaryService, cfg)

	if err := summarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconstrução do resumo")
	} else {
		logrus.Info("Agendador de reconstrução do resumo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		registryService,
		ledgerService,
		summaryService,
		authenticator,
		setupRepo,
		summarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
