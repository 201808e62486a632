package models

import "gorm.io/gorm"

// Preference is one persisted storage slot of a client: the durable mirror
// of a browser-scoped key such as the theme mode.
type Preference struct {
	gorm.Model
	ClientID string `gorm:"uniqueIndex:idx_preferences_client_key;size:128;not null"`
	Key      string `gorm:"uniqueIndex:idx_preferences_client_key;size:128;not null"`
	Value    string `gorm:"size:256;not null"`
}
