package config

import "time"

// Application constants
const (
	AppName = "seodash"

	// Server
	DefaultPort           = 8080
	DefaultRequestTimeout = 60 * time.Second

	// Rate limiting
	DefaultRateLimit = 100 // requests per second
	DefaultBurstSize = 50

	// File paths (relative to the base directory)
	DefaultDataDir    = "data"
	DefaultExportsDir = "data/exports"
	DefaultLogsDir    = "logs"
	DefaultWebDir     = "web"

	// Export defaults
	DefaultPageSize = "A4"
	DefaultMarginMM = 10.0

	// Log settings
	DefaultLogLevel    = "info"
	DefaultLogFileName = "seodash.log"
	MaxLogFileSizeMB   = 100
	MaxLogFileAgeDays  = 30
	MaxLogFileBackups  = 10
)

// Log outputs
const (
	LogOutputConsole = "console"
	LogOutputFile    = "file"
	LogOutputBoth    = "both"
)

// Trace exporters
const (
	TraceExporterStdout = "stdout"
	TraceExporterNone   = "none"
)

// Download file names
const (
	LinkFileName = "utm_link.txt"
)
