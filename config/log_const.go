package config

// ANSI color constants used by the service log prefixes.
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogWarnColor  = "\033[33m"
	LogColorReset = "\033[0m"
)

// Color constants for component loggers
const (
	ColorGreen   = "\033[32m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)
