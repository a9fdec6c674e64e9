package storage

import (
	"fmt"
	"strings"

	"mozdelivery/internal/adapters/out/storage/activityrepo"
	"mozdelivery/internal/adapters/out/storage/notificationrepo"
	"mozdelivery/internal/adapters/out/storage/orderrepo"
	"mozdelivery/internal/adapters/out/storage/partnerrepo"
	"mozdelivery/internal/adapters/out/storage/userrepo"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"

	// InMemoryDSN keeps the whole ledger in process memory; it is gone on restart.
	InMemoryDSN = ":memory:"
)

// Open connects to the configured dialect and migrates the schema. SQLite is pinned
// to a single long-lived connection: an in-memory database lives exactly as long as
// its connection, and one connection also serializes transactions.
func Open(dialect string, dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "", DialectSQLite:
		if dsn == "" {
			dsn = InMemoryDSN
		}
		dialector = sqlite.Open(dsn)
	case DialectPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", dialect)
	}

	cfg := &gorm.Config{}
	if gormLogger != nil {
		cfg.Logger = gormLogger
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dialector.Name() == DialectSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates every table the adapters use.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&notificationrepo.NotificationDTO{},
		&activityrepo.EntryDTO{},
		&partnerrepo.PartnerDTO{},
		&partnerrepo.MenuItemDTO{},
		&userrepo.UserDTO{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
