package database

import (
	"fmt"
	"os"
	"time"

	"bill-reminder-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SeedFile        string
}

// Initialize opens the configured database and creates the schema from GORM
// models. SQLite is the default engine (the app ships as a single-user local
// service); Postgres is available for hosted deployments.
func Initialize(driver, dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite, "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// AutoMigrate all models (no FK constraints are declared; see models)
	all := []interface{}{
		&models.Category{},
		&models.Reminder{},
		&models.Payment{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	if err := SeedDefaultCategories(db, opts.SeedFile); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	return db, nil
}

// seedCategory is one entry of the optional YAML seed file.
type seedCategory struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// builtinSeed matches the categories the original deployment shipped with.
var builtinSeed = []seedCategory{
	{Name: "Energía", Color: "#f59e0b"},
	{Name: "Gas", Color: "#ef4444"},
	{Name: "Internet", Color: "#3b82f6"},
	{Name: "Agua", Color: "#10b981"},
}

// SeedDefaultCategories inserts the default category set when the categories
// table is empty. A YAML seed file, when configured and readable, replaces the
// built-in defaults.
func SeedDefaultCategories(db *gorm.DB, seedFile string) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := builtinSeed
	if seedFile != "" {
		data, err := os.ReadFile(seedFile)
		if err != nil {
			logrus.Warnf("Seed file %s not readable, using built-in defaults: %v", seedFile, err)
		} else {
			var fromFile struct {
				Categories []seedCategory `yaml:"categories"`
			}
			if err := yaml.Unmarshal(data, &fromFile); err != nil {
				return fmt.Errorf("parse seed file %s: %w", seedFile, err)
			}
			if len(fromFile.Categories) > 0 {
				seed = fromFile.Categories
			}
		}
	}

	categories := make([]models.Category, 0, len(seed))
	for _, s := range seed {
		color := s.Color
		if color == "" {
			color = models.DefaultCategoryColor
		}
		categories = append(categories, models.Category{Name: s.Name, Color: color})
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	logrus.Infof("Seeded %d default categories", len(categories))
	return nil
}
