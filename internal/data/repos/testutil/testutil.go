package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a shared migrated database: Postgres when TEST_POSTGRES_DSN is
// set, in-memory sqlite otherwise. Tests isolate themselves with Tx.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		cfg := &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		}

		if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
			cfg.DisableForeignKeyConstraintWhenMigrating = true
			db, dbErr = gorm.Open(postgres.Open(dsn), cfg)
		} else {
			db, dbErr = gorm.Open(sqlite.Open("file::memory:?cache=shared"), cfg)
		}
		if dbErr != nil {
			return
		}
		dbErr = autoMigrateAll(db)
	})

	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return db
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func autoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.BloodSugarReading{},
		&domain.BloodPressureReading{},
		&domain.Device{},
		&domain.ChatMessage{},
		&domain.AICallLog{},
	)
}
