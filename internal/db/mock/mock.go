package mock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "doroga/internal/log"
	"doroga/models"
)

// DemoClientID owns the seeded preference rows.
const DemoClientID = "demo"

var instances atomic.Int64

// New returns an isolated in-memory sqlite database seeded with a demo
// client's preferences.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := fmt.Sprintf("file:doroga-mock-%d?mode=memory&cache=shared", instances.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Preference{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	prefs := []models.Preference{
		{ClientID: DemoClientID, Key: "doroga-ui-theme", Value: "dark"},
	}
	for _, pref := range prefs {
		pref := pref
		if err := db.WithContext(ctx).Create(&pref).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
