package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/domain"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
	"github.com/yungbote/healthtrack-backend/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewService opens the configured database. Postgres is the production
// target; DB_DRIVER=sqlite keeps local development and CI self-contained.
func NewService(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "postgres", log))

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "healthtrack.db", log)
		serviceLog.Info("Connecting to sqlite...", "path", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "healthtrack", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		serviceLog.Info("Connecting to Postgres...", "host", host, "db", name)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
		})
	}
	if err != nil {
		serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	return &Service{db: db, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&domain.User{},
		&domain.BloodSugarReading{},
		&domain.BloodPressureReading{},
		&domain.Device{},
		&domain.ChatMessage{},
		&domain.AICallLog{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
