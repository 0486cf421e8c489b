// database/bootstrap.go
package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dalu/entities"
)

// Models lists every table owned by the server, in creation order.
func Models() []any {
	return []any{
		&entities.Crop{},
		&entities.YieldRecord{},
		&entities.Animal{},
		&entities.Flower{},
	}
}

// Open connects to postgres for postgres:// DSNs and to sqlite otherwise
// (a file path or ":memory:").
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	if isPostgres(dsn) {
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("postgres pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if isMemory(dsn) {
		// every new connection would see a fresh empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// Migrate creates missing tables and columns. Existing data is kept.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	var created []string
	for _, m := range Models() {
		if !db.Migrator().HasTable(m) {
			created = append(created, tableName(db, m))
		}
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if len(created) > 0 {
		log.Info("created tables", zap.Strings("tables", created))
	} else {
		log.Debug("all tables exist")
	}
	return nil
}

// Drop removes every table. Development use only.
func Drop(db *gorm.DB, log *zap.Logger) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop %s: %w", tableName(db, models[i]), err)
		}
	}
	log.Info("dropped all tables")
	return nil
}

// Recreate is Drop followed by Migrate.
func Recreate(db *gorm.DB, log *zap.Logger) error {
	if err := Drop(db, log); err != nil {
		return err
	}
	return Migrate(db, log)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

func tableName(db *gorm.DB, model any) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}
