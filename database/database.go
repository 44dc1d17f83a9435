package database

import (
	"coursehub/config"
	"coursehub/logger"
	"coursehub/models"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db      *gorm.DB
	Monitor *Monitor
}

// Database is the global database instance
var Database DbInstance

// Dialector picks the gorm driver for the configured backend.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres", "postgresql":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
				cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
			)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
				cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
			)
		}
		return mysql.Open(dsn), nil
	case "sqlite", "":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = cfg.DBName
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Open connects, sizes the pool and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(gormWriter{}, gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(0)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ConnectDb establishes the connection and stores it globally
func ConnectDb(cfg *config.Config) error {
	db, err := Open(cfg)
	if err != nil {
		return err
	}
	monitor := NewMonitor(db)
	monitor.Check()

	Database = DbInstance{Db: db, Monitor: monitor}
	logger.Info("database connected", "driver", cfg.DBDriver)
	return nil
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) error {
	logger.Debug("running migrations")

	err := db.AutoMigrate(
		&models.Course{},
		&models.Enrollment{},
		&models.Review{},
		&models.User{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return backfillTitleSearch(db)
}

// backfillTitleSearch fills the folded title column for rows written before it existed.
func backfillTitleSearch(db *gorm.DB) error {
	var rows []models.Course
	result := db.Select("id", "title").
		Where("title_search = ? OR title_search IS NULL", "").
		FindInBatches(&rows, 200, func(tx *gorm.DB, batch int) error {
			for _, row := range rows {
				err := db.Model(&models.Course{}).
					Where("id = ?", row.ID).
					UpdateColumn("title_search", models.SearchKey(row.Title)).Error
				if err != nil {
					return err
				}
			}
			return nil
		})
	if result.Error != nil {
		return fmt.Errorf("title search backfill failed: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		logger.Info("backfilled course search titles", "rows", result.RowsAffected)
	}
	return nil
}

// Close releases the pool held by the global instance.
func Close() error {
	if Database.Db == nil {
		return nil
	}
	sqlDB, err := Database.Db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	logger.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}
