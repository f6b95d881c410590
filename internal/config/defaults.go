package config

const (
	defaultMusicDir      = "~/music"
	defaultDataDir       = "~/.local/share/shelves"
	defaultShelf         = "Standard"
	defaultIncomingShelf = "Incoming"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MusicDir: defaultMusicDir,
			DataDir:  defaultDataDir,
		},
		Shelves: Shelves{
			DefaultShelf:  defaultShelf,
			IncomingShelf: defaultIncomingShelf,
		},
		Workflow: Workflow{
			Enabled: false,
			Stage1:  defaultIncomingShelf,
			Stage2:  defaultShelf,
		},
		TitleCleaner: TitleCleaner{
			Enabled:         true,
			OnlySoundtracks: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
