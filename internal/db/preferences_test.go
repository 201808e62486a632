package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *PreferenceStore {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return NewPreferenceStore(database)
}

func TestPreferenceStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	if _, found, err := store.Get(ctx, "client-a", "doroga-ui-theme"); err != nil || found {
		t.Fatalf("expected no value, got found=%t err=%v", found, err)
	}

	if err := store.Put(ctx, "client-a", "doroga-ui-theme", "dark"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "client-a", "doroga-ui-theme", "light"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	if err := store.Put(ctx, "client-b", "doroga-ui-theme", "system"); err != nil {
		t.Fatalf("Put other client: %v", err)
	}

	value, found, err := store.Get(ctx, "client-a", "doroga-ui-theme")
	if err != nil || !found || value != "light" {
		t.Fatalf("Get = %q, %t, %v; want light", value, found, err)
	}
	value, _, _ = store.Get(ctx, "client-b", "doroga-ui-theme")
	if value != "system" {
		t.Fatalf("client-b value = %q", value)
	}

	if err := store.Delete(ctx, "client-a", "doroga-ui-theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := store.Get(ctx, "client-a", "doroga-ui-theme"); found {
		t.Fatal("expected value to be deleted")
	}
	if err := store.Put(ctx, "client-a", "doroga-ui-theme", "dark"); err != nil {
		t.Fatalf("Put after delete: %v", err)
	}
}

func TestPreferenceStoreRejectsEmptyIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	if _, _, err := store.Get(ctx, "", "k"); !errors.Is(err, ErrMissingPreferenceKey) {
		t.Fatalf("Get error = %v", err)
	}
	if err := store.Put(ctx, "c", "", "v"); !errors.Is(err, ErrMissingPreferenceKey) {
		t.Fatalf("Put error = %v", err)
	}
	if err := store.Delete(ctx, "", ""); !errors.Is(err, ErrMissingPreferenceKey) {
		t.Fatalf("Delete error = %v", err)
	}
}

func TestNewPreferenceStoreNil(t *testing.T) {
	t.Parallel()

	if NewPreferenceStore(nil) != nil {
		t.Fatal("expected nil store for nil database")
	}
}
