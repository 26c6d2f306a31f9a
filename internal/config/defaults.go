package config

const (
	defaultThreshold       = 0.5
	defaultSource          = "dir"
	defaultSQLiteQuery     = "SELECT body FROM messages"
	defaultMaxMessageBytes = 1 << 20
	defaultOutputFormat    = "table"
	defaultPrecision       = 4
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scoring: Scoring{
			Threshold: defaultThreshold,
		},
		Input: Input{
			Source:          defaultSource,
			SQLiteQuery:     defaultSQLiteQuery,
			MaxMessageBytes: defaultMaxMessageBytes,
		},
		Output: Output{
			Format:    defaultOutputFormat,
			Precision: defaultPrecision,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
