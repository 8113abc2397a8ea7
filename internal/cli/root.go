package cli

import (
	"fmt"
	"strings"

	"github.com/a3faarms/petboarding/internal/backup"
	"github.com/a3faarms/petboarding/internal/logger"
	"github.com/a3faarms/petboarding/internal/models"
	"github.com/a3faarms/petboarding/internal/remote"
	"github.com/a3faarms/petboarding/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Remote *remote.Client
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseDateArg parses a YYYY-MM-DD flag value, defaulting to today when
// empty.
func ParseDateArg(s string) (models.Date, error) {
	if strings.TrimSpace(s) == "" {
		return models.Today(), nil
	}
	d, err := models.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

// FormatStay renders a booking's date range for display.
func FormatStay(b models.Booking) string {
	return fmt.Sprintf("%s → %s", b.CheckIn, b.CheckOut)
}
