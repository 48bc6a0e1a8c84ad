package database

import (
	"fmt"
	"strconv"

	"fixsync/internal/infrastructure/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DefaultPostgresHost = "localhost"
	DefaultPostgresPort = 5432
	DefaultPostgresUser = "postgres"
	DefaultPostgresDB   = "fixsync"
)

// PostgresOptions represents database connection configuration options
type PostgresOptions struct {
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLEnabled bool
}

// PostgresOptionsFromEnv reads DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME and DB_SSL.
func PostgresOptionsFromEnv() PostgresOptions {
	port, err := strconv.Atoi(getenvDefault("DB_PORT", strconv.Itoa(DefaultPostgresPort)))
	if err != nil {
		port = DefaultPostgresPort
	}
	ssl, _ := strconv.ParseBool(getenvDefault("DB_SSL", "false"))
	return PostgresOptions{
		Host:       getenvDefault("DB_HOST", DefaultPostgresHost),
		Port:       port,
		User:       getenvDefault("DB_USER", DefaultPostgresUser),
		Password:   getenvDefault("DB_PASSWORD", "postgres"),
		DBName:     getenvDefault("DB_NAME", DefaultPostgresDB),
		SSLEnabled: ssl,
	}
}

// ConnectPostgres opens a gorm connection using environment variables.
func ConnectPostgres() *gorm.DB {
	db, err := NewPostgres(PostgresOptionsFromEnv())
	if err != nil {
		logger.Fatalf("[database][postgres] failed to connect err=%v", err)
	}
	return db
}

func NewPostgres(opts PostgresOptions) (*gorm.DB, error) {
	sslMode := "disable"
	if opts.SSLEnabled {
		sslMode = "require"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		opts.Host, opts.User, opts.Password, opts.DBName, opts.Port, sslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(logger.Logger(), gormlogger.Config{
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("[database][postgres] connected host=%s db=%s", opts.Host, opts.DBName)
	return db, nil
}
