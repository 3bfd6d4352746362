package config

const (
	defaultFFprobeBinary   = "ffprobe"
	defaultFFmpegBinary    = "ffmpeg"
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultCacheDir        = "~/.cache/ffkit"
	defaultCacheMaxEntries = 512
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFprobeBinary: defaultFFprobeBinary,
			FFmpegBinary:  defaultFFmpegBinary,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Cache: Cache{
			Enabled:    true,
			Dir:        defaultCacheDir,
			MaxEntries: defaultCacheMaxEntries,
		},
	}
}
