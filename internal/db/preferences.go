package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"doroga/models"
)

// ErrMissingPreferenceKey is returned when the client id or key is empty.
var ErrMissingPreferenceKey = errors.New("preference client id and key must not be empty")

// PreferenceStore reads and writes per-client key/value preferences.
type PreferenceStore struct {
	db *gorm.DB
}

// NewPreferenceStore wraps db. A nil db yields a nil store.
func NewPreferenceStore(db *gorm.DB) *PreferenceStore {
	if db == nil {
		return nil
	}
	return &PreferenceStore{db: db}
}

// Get returns the value stored for client and key. Found is false when no
// row exists.
func (s *PreferenceStore) Get(ctx context.Context, clientID, key string) (value string, found bool, err error) {
	if clientID == "" || key == "" {
		return "", false, ErrMissingPreferenceKey
	}
	var pref models.Preference
	err = s.db.WithContext(ctx).
		Where(&models.Preference{ClientID: clientID, Key: key}).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load preference %s/%s: %w", clientID, key, err)
	}
	return pref.Value, true, nil
}

// Put upserts the value for client and key.
func (s *PreferenceStore) Put(ctx context.Context, clientID, key, value string) error {
	if clientID == "" || key == "" {
		return ErrMissingPreferenceKey
	}
	pref := models.Preference{ClientID: clientID, Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("save preference %s/%s: %w", clientID, key, err)
	}
	return nil
}

// Delete removes the value for client and key, if any.
func (s *PreferenceStore) Delete(ctx context.Context, clientID, key string) error {
	if clientID == "" || key == "" {
		return ErrMissingPreferenceKey
	}
	err := s.db.WithContext(ctx).Unscoped().
		Where(&models.Preference{ClientID: clientID, Key: key}).
		Delete(&models.Preference{}).Error
	if err != nil {
		return fmt.Errorf("delete preference %s/%s: %w", clientID, key, err)
	}
	return nil
}
