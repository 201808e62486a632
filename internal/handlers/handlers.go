package handlers

import (
	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"doroga/internal/db"
	"doroga/internal/theme"
	"doroga/internal/tokens"
)

const (
	sessionStoragePrefix  = "storage:"
	sessionColorSchemeKey = "color-scheme:dark"
)

var (
	sessionManager *scs.SessionManager
	preferences    *db.PreferenceStore

	tokenSheet = tokens.DefaultSheet()
	storageKey = theme.StorageKey
)

// Configure installs the shared dependencies used by the HTTP handlers. A nil
// database leaves the session as the only place the theme is persisted.
func Configure(sm *scs.SessionManager, gdb *gorm.DB) {
	sessionManager = sm
	preferences = db.NewPreferenceStore(gdb)
}

// ConfigureTheme sets the token sheet behind computed variables and the key
// the mode is persisted under. Zero values restore the defaults.
func ConfigureTheme(sheet *tokens.Sheet, key string) {
	if sheet == nil {
		sheet = tokens.DefaultSheet()
	}
	if key == "" {
		key = theme.StorageKey
	}
	tokenSheet = sheet
	storageKey = key
}
