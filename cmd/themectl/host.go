package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gorm.io/gorm"

	"doroga/internal/db"
	applog "doroga/internal/log"
	"doroga/internal/theme"
	"doroga/internal/tokens"
)

// detectDarkBackground stands in for the OS preference on a terminal.
var detectDarkBackground = lipgloss.HasDarkBackground

// terminalHost persists the mode in a sqlite preference store and reads the
// color scheme from the terminal background. A terminal never reports a
// scheme change while a command runs, so subscribers are never called.
type terminalHost struct {
	*theme.SheetDocument

	ctx      context.Context
	store    *db.PreferenceStore
	clientID string
	scheme   *theme.MediaQuery
}

func newTerminalHost(ctx context.Context, store *db.PreferenceStore, profile string, sheet *tokens.Sheet) *terminalHost {
	h := &terminalHost{
		ctx:      ctx,
		store:    store,
		clientID: "cli:" + profile,
		scheme:   theme.NewMediaQuery(theme.DarkSchemeQuery, detectDarkBackground()),
	}
	h.SheetDocument = theme.NewSheetDocument(sheet, h.PrefersDark)
	return h
}

func (h *terminalHost) Item(key string) (string, bool) {
	value, found, err := h.store.Get(h.ctx, h.clientID, key)
	if err != nil {
		applog.Error(h.ctx, "failed to read preference", "client", h.clientID, "key", key, "error", err)
		return "", false
	}
	return value, found
}

func (h *terminalHost) SetItem(key, value string) {
	if err := h.store.Put(h.ctx, h.clientID, key, value); err != nil {
		applog.Error(h.ctx, "failed to write preference", "client", h.clientID, "key", key, "error", err)
	}
}

func (h *terminalHost) PrefersDark() bool {
	return h.scheme.Matches()
}

func (h *terminalHost) SubscribeColorScheme(fn func(dark bool)) func() {
	return h.scheme.Subscribe(fn)
}

// session is one mounted controller over the profile's persisted state.
type session struct {
	controller *theme.Controller
	host       *terminalHost
	close      func()
}

func openSession(ctx context.Context, operation string, flags *rootFlags) (*session, error) {
	path, err := resolveDBPath(flags.dbPath)
	if err != nil {
		return nil, newCommandError(operation, "determining database path", err, "Pass --db or set XDG_CONFIG_HOME.")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, newCommandError(operation, "creating database directory", err, "Check directory permissions and try again.")
	}

	gdb, err := db.OpenSQLite(path)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("opening %s", path), err, "Check that the file is a sqlite database you can write to.")
	}

	sheet, err := tokens.LoadSheet(flags.tokensPath)
	if err != nil {
		closeDatabase(ctx, gdb)
		return nil, newCommandError(operation, "loading token sheet", err, "Fix the token sheet or omit --tokens to use the built-in one.")
	}

	profile := strings.TrimSpace(flags.profile)
	if profile == "" {
		profile = "default"
	}

	host := newTerminalHost(ctx, db.NewPreferenceStore(gdb), profile, sheet)
	controller := theme.NewController(theme.NewState(), host, theme.WithStorageKey(flags.storageKey))
	teardown := controller.Mount()
	applog.Debug(ctx, "theme session opened", "db", path, "profile", profile, "mode", controller.CurrentTheme())

	return &session{
		controller: controller,
		host:       host,
		close: func() {
			teardown()
			closeDatabase(ctx, gdb)
		},
	}, nil
}

func resolveDBPath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "doroga", "theme.db"), nil
}

func closeDatabase(ctx context.Context, gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		applog.Error(ctx, "failed to close preference database", "error", err)
	}
}
