package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "petboard"
	DefaultKeyringUser = "sync-api-key"
	DefaultConfigPath  = "~/.config/petboard/bookings.json"
	Version            = "v0.2.0"

	// DateFormat is the standard calendar date format used throughout the
	// application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Facility capacity, per pet type
	CatRoomsTotal  = 4
	DogSpacesTotal = 2

	// RecentBookingsShown is how many recent bookings the dashboard lists
	RecentBookingsShown = 5

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "petboard-"

	// Env vars for the remote sync pathway
	EnvSyncURL = "PETBOARD_SYNC_URL"
	EnvSyncKey = "PETBOARD_SYNC_KEY"

	// DefaultSyncTable is the remote table bookings are inserted into
	DefaultSyncTable = "bookings"
)

// Session states
const (
	StateHome SessionState = iota
	StateBookings
	StateNewBooking
	StateConfirmDelete

	// NumMainTabs is the number of top-level tabbed views
	NumMainTabs = 2
)
