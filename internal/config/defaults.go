package config

const (
	defaultConfigPath         = "~/.config/readtrack/config.toml"
	projectConfigName         = "readtrack.toml"
	defaultDataDir            = "~/.local/share/readtrack"
	defaultShelfFileName      = "bookshelf.json"
	defaultJournalName        = "journal.db"
	defaultLogDirName         = "logs"
	defaultLogFileName        = "readtrack.log"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLockTimeoutSeconds = 5
)

// Default returns a Config populated with repository defaults. Empty shelf,
// log, and journal paths are derived from the data directory during
// normalization.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Shelf: Shelf{
			Autosave:           true,
			Backup:             true,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
