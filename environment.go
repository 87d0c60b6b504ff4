package velocli

// defines available environment variables for configuration
const (
	EnvLogsVerbose = "VELOCLI_LOGS_VERBOSE" // enable verbose logging. boolean, see strconv.ParseBool for valid values.
	EnvInstance    = "VELOCLI_INSTANCE"     // named configuration instance to load when none is given on the command line.
)
