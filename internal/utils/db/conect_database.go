package db

import (
	"context"
	"fmt"

	"github.com/KromaEnergia/api-arremate/internal/config"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDataBase abre a conexão conforme DB_DRIVER. Em postgres, sem
// usuário e senha no ambiente, as credenciais vêm do Secrets Manager.
func ConnectDataBase(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	}

	if cfg.Driver == "sqlite" {
		logger.Info().Str("path", cfg.SQLitePath).Msg("Conectando ao SQLite")
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	}

	username, password := cfg.Username, cfg.Password
	if username == "" || password == "" {
		client, err := newSecretsClient(ctx)
		if err != nil {
			return nil, err
		}
		creds, err := fetchCredentials(ctx, client, cfg.SecretID)
		if err != nil {
			return nil, err
		}
		username, password = creds.Username, creds.Password
	}

	var sslMode string
	if cfg.SSLDisable {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		cfg.Host, username, password, cfg.Name, cfg.Port, sslMode)

	logger.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("Conectando ao PostgreSQL")
	return gorm.Open(postgres.Open(dsn), gormCfg)
}

// OpenMemory abre um SQLite em memória, usado nos testes de repositório.
func OpenMemory(models ...any) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	// cada conexão nova seria um banco vazio
	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		if err := database.AutoMigrate(models...); err != nil {
			return nil, err
		}
	}
	return database, nil
}
