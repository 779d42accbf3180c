package db

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"collection-server/confs"
	"collection-server/entities"
)

// DefaultCategories seeds the read-only category table on first run.
var DefaultCategories = []string{
	"Comics",
	"Action Figures",
	"Trading Cards",
	"Video Games",
	"Board Games",
	"Books",
	"Vinyl Records",
	"Miniatures",
}

func Connect(cfg *confs.Config) (Database, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	slog.Info("database connection established")

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}

	return &GormDatabase{DB: gormDB}, nil
}

// Migrate runs auto-migration for the full schema and seeds categories when
// the table is empty.
func Migrate(gormDB *gorm.DB) error {
	err := gormDB.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Collection{},
		&entities.Item{},
		&entities.Photo{},
		&entities.Share{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return seedCategories(gormDB)
}

func seedCategories(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&entities.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]entities.Category, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, entities.Category{Name: name})
	}

	if err := gormDB.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	slog.Info("seeded categories", "count", len(categories))
	return nil
}
