// Package storage owns the durable store shared by the question bank and the
// results ledger.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quizbank/backend/apperr"
	"quizbank/backend/config"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects to the store selected by cfg.DBDriver. The schema is not
// touched; call Init before first use.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.DBDriver)) {
	case "", DriverSQLite:
		return OpenSQLite(cfg.DBPath, logger)
	case DriverPostgres:
		return OpenPostgres(cfg.PostgresDSN(), logger)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// sqliteParams are applied by mattn/go-sqlite3 to every connection it opens.
const sqliteParams = "_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL"

// OpenSQLite opens the embedded store at path. SQLite allows a single writer,
// so the pool is pinned to one connection.
func OpenSQLite(path string, logger *slog.Logger) (*Store, error) {
	s, err := open(sqlite.Open(SQLiteDSN(path)), logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		_ = s.Close()
		return nil, apperr.Store("open sqlite", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return s, nil
}

// SQLiteDSN appends the connection parameters to path, keeping any the
// caller already set.
func SQLiteDSN(path string) string {
	if strings.TrimSpace(path) == "" {
		path = "quiz.db"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqliteParams
}

func OpenPostgres(dsn string, logger *slog.Logger) (*Store, error) {
	return open(postgres.Open(dsn), logger)
}

func open(dialector gorm.Dialector, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, apperr.Store("open database", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// DB returns the gorm handle for repositories built on this store.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return apperr.Store("ping", err)
	}
	return apperr.Store("ping", sqlDB.PingContext(ctx))
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
