package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/a3faarms/petboarding/internal/cli"
	"github.com/a3faarms/petboarding/internal/cli/backups"
	"github.com/a3faarms/petboarding/internal/cli/bookings"
	"github.com/a3faarms/petboarding/internal/cli/sync"
	"github.com/a3faarms/petboarding/internal/cli/system"
	"github.com/a3faarms/petboarding/internal/constants"
	apperrors "github.com/a3faarms/petboarding/internal/errors"
	"github.com/a3faarms/petboarding/internal/logger"
	"github.com/a3faarms/petboarding/internal/remote"
	"github.com/a3faarms/petboarding/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Bookings file path. A .db suffix selects the SQLite provider; anything else is stored as JSON." type:"string" default:"~/.config/petboard/bookings.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd `cmd:"" help:"Initialize petboard storage."`
	Tui     system.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Booking struct {
		Add    bookings.AddCmd    `cmd:"" help:"Add a new booking."`
		List   bookings.ListCmd   `cmd:"" help:"List bookings with search and category filters." default:"1"`
		Delete bookings.DeleteCmd `cmd:"" help:"Delete a booking."`
		Guided bookings.GuidedCmd `cmd:"" help:"Walk through booking questions and submit to the remote table."`
	} `cmd:"" help:"Manage bookings."`
	Capacity bookings.CapacityCmd `cmd:"" help:"Show occupancy for a date."`
	Today    bookings.TodayCmd    `cmd:"" help:"Show pets boarding today."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage bookings backups."`
	Sync struct {
		SetKey   sync.SetKeyCmd   `cmd:"" name:"set-key" help:"Store the remote API key in the OS keyring."`
		ClearKey sync.ClearKeyCmd `cmd:"" name:"clear-key" help:"Remove the remote API key from the OS keyring."`
		Status   sync.StatusCmd   `cmd:"" help:"Show remote sync configuration status." default:"1"`
	} `cmd:"" help:"Manage remote sync."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Pet boarding reservation manager"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// A .db suffix selects the SQLite provider; the JSON file store is the
	// default.
	var store storage.Provider
	if strings.HasSuffix(configPath, ".db") {
		store = storage.NewSQLiteStore(configPath)
	} else {
		store = storage.NewJSONStore(configPath)
	}

	// The remote client is built once here and shared; commands and the TUI
	// receive it through the context.
	appCtx := &cli.Context{
		Store:  store,
		Remote: remote.NewClient(remote.LoadConfig()),
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	apperrors.Fatal(ctx.Run(appCtx))
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
