package mock

import (
	"context"
	"testing"

	"doroga/models"
)

func TestNewSeedsExpectedRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := New(ctx)
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}

	var prefs []models.Preference
	if err := db.WithContext(ctx).Where(&models.Preference{ClientID: DemoClientID}).Find(&prefs).Error; err != nil {
		t.Fatalf("query preferences: %v", err)
	}
	if len(prefs) != 1 || prefs[0].Value != "dark" {
		t.Fatalf("unexpected seeded preferences: %+v", prefs)
	}
}

func TestNewReturnsIsolatedDatabases(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first, err := New(ctx)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := New(ctx); err != nil {
		t.Fatalf("second instance should seed without conflicts: %v", err)
	}

	var count int64
	if err := first.WithContext(ctx).Model(&models.Preference{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row in the first instance, got %d", count)
	}
}
