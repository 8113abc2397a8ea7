package remote

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/a3faarms/petboarding/internal/constants"
	"github.com/a3faarms/petboarding/internal/keyring"
	"github.com/a3faarms/petboarding/internal/logger"
)

// Config points at the hosted bookings table. Both fields must be set for
// sync to be usable; an unconfigured client refuses inserts locally instead
// of sending doomed requests.
type Config struct {
	URL   string
	Key   string
	Table string
}

func (c Config) Configured() bool {
	return c.URL != "" && c.Key != ""
}

// LoadConfig resolves sync settings once at startup: a .env file in the
// working directory (if present) is merged into the process env, then the
// env vars are read, with the API key falling back to the OS keyring. No
// resolution failure is fatal; sync simply stays unconfigured.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Debug("No .env file loaded", "error", err)
	}

	cfg := Config{
		URL:   os.Getenv(constants.EnvSyncURL),
		Key:   os.Getenv(constants.EnvSyncKey),
		Table: constants.DefaultSyncTable,
	}

	if cfg.Key == "" {
		key, err := keyring.GetSyncKey()
		if err != nil {
			if err != keyring.ErrNotFound {
				logger.Debug("Keyring lookup for sync key failed", "error", err)
			}
		} else {
			cfg.Key = key
		}
	}

	return cfg
}
