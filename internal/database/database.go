package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// Config descreve o pool de conexões. É montada no bootstrap e passada
// explicitamente; este pacote não lê o ambiente.
type Config struct {
	URL               string
	MaxConnections    int
	IdleTimeout       time.Duration
	ConnectionTimeout time.Duration
	Retry             RetryPolicy
}

// ConnectDB abre o pool do Postgres uma única vez. Falhas transitórias no
// primeiro ping seguem a política de retry.
func ConnectDB(ctx context.Context, cfg Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database: URL não configurada")
	}
	return Open(ctx, postgres.Open(cfg.URL), cfg, log)
}

// Open configura o pool sobre qualquer dialeto do gorm.
func Open(ctx context.Context, dialector gorm.Dialector, cfg Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("database: falha ao abrir conexão: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: falha ao obter sql.DB: %w", err)
	}
	if cfg.MaxConnections > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	}
	if cfg.IdleTimeout > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.IdleTimeout)
	}

	err = Retry(ctx, cfg.Retry, func() error {
		pingCtx := ctx
		if cfg.ConnectionTimeout > 0 {
			var cancel context.CancelFunc
			pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectionTimeout)
			defer cancel()
		}
		return sqlDB.PingContext(pingCtx)
	})
	if err != nil {
		return nil, fmt.Errorf("database: ping falhou: %w", err)
	}

	if log != nil {
		log.Info("conexão com o banco de dados estabelecida",
			zap.Int("max_connections", cfg.MaxConnections))
	}
	return db, nil
}

// Migrate cria ou atualiza as tabelas da loja.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Produto{}, &model.Bairro{}, &model.Pedido{}, &model.Usuario{}, &model.FreteConfig{},
	)
	if err != nil {
		return fmt.Errorf("database: falha ao executar migrações: %w", err)
	}
	return nil
}

// Ping verifica se o banco responde, usado pelo health check.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
