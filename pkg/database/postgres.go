package database

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sefazor/textback-landing/internal/models"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

func NewDatabase(databaseURL string, logger *zap.Logger) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("connected to database")
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}
	return sqlDB.Close()
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Plan{},
		&models.Lead{},
		&models.CheckoutSession{},
	)
}

// SeedPlans inserts the built-in plans that are missing and keeps the Stripe
// price ids in sync with configuration.
func SeedPlans(db *gorm.DB, priceIDs map[string]string) error {
	for _, plan := range models.DefaultPlans() {
		plan.StripePriceID = priceIDs[plan.Slug]

		var existing models.Plan
		err := db.Where("slug = ?", plan.Slug).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&plan).Error; err != nil {
				return fmt.Errorf("failed to add plan %s: %w", plan.Slug, err)
			}
		case err != nil:
			return fmt.Errorf("failed to look up plan %s: %w", plan.Slug, err)
		case existing.StripePriceID != plan.StripePriceID:
			if err := db.Model(&existing).Update("stripe_price_id", plan.StripePriceID).Error; err != nil {
				return fmt.Errorf("failed to update price of plan %s: %w", plan.Slug, err)
			}
		}
	}
	return nil
}
