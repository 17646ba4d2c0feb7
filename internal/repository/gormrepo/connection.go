package gormrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dom/league-build-planner/internal/config"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/repository"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the configured database. Unique and foreign key
// violations are translated to gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated for every supported driver.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.DatabaseDebug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DatabaseDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap db: %w", err)
	}

	if cfg.DatabaseDriver == config.DriverSQLite {
		// Each SQLite connection is its own in-memory database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func dialectorFor(driver, databaseURL string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(databaseURL), nil
	case config.DriverSQLite:
		return sqlite.Open(withForeignKeys(databaseURL)), nil
	case config.DriverMySQL:
		return mysql.Open(databaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// SQLite leaves foreign keys (and therefore cascades) off unless asked.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// Models lists every build-planner table in dependency order
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Stats{},
		&domain.Champion{},
		&domain.Item{},
		&domain.Build{},
		&domain.BuildItem{},
		&domain.Favourite{},
	}
}

// Migrate creates or updates the build-planner tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:      NewUserRepository(db),
		Champion:  NewChampionRepository(db),
		Item:      NewItemRepository(db),
		Stats:     NewStatsRepository(db),
		Build:     NewBuildRepository(db),
		BuildItem: NewBuildItemRepository(db),
		Favourite: NewFavouriteRepository(db),
		Tx:        &transactor{db: db},
	}
}

type transactor struct {
	db *gorm.DB
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
