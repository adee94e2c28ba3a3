package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brcargo/cotacao-panel/infrastructure/database/postgres"
	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/api"
	"github.com/brcargo/cotacao-panel/internal/config"
	"github.com/brcargo/cotacao-panel/internal/usecases/authenticating"
	"github.com/brcargo/cotacao-panel/internal/usecases/quoting"
	"github.com/brcargo/cotacao-panel/internal/usecases/registering"
	"github.com/brcargo/cotacao-panel/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	cotacaoRepo := repository.NewCotacaoRepository(pgConn)
	empresaRepo := repository.NewEmpresaRepository(pgConn)
	usuarioRepo := repository.NewUsuarioRepository(pgConn)
	rascunhoRepo := repository.NewRascunhoRepository(pgConn)
	mensagemRepo := repository.NewMensagemRepository(pgConn)

	authenticator := authenticating.NewService(usuarioRepo, cfg)
	quotingService := quoting.NewService(cotacaoRepo, usuarioRepo, rascunhoRepo, mensagemRepo)
	registeringService := registering.NewService(empresaRepo)
	reportingService := reporting.NewService(cotacaoRepo, empresaRepo)

	server, err := api.New(
		cfg,
		authenticator,
		quotingService,
		registeringService,
		reportingService,
		usuarioRepo,
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
