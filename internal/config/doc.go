// Package config provides configuration management for the dashboard.
// It loads configuration from multiple sources, validates it, and resolves
// the directories the application reads from and writes to.
//
// # Configuration Sources
//
// Configuration is built in layers, later layers winning:
//
//	1. Default values (Default)
//	2. A YAML file: $SEODASH_CONFIG, seodash.yaml or configs/seodash.yaml
//	3. Environment variables (highest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SEODASH_<SECTION>_<KEY>:
//
//	SEODASH_SERVER_PORT=8080
//	SEODASH_LOGGING_LEVEL=debug
//	SEODASH_LOGGING_OUTPUT=both
//	SEODASH_PATHS_BASE_DIR=/srv/seodash
//	SEODASH_EXPORT_PAGE_SIZE=Letter
//	SEODASH_EXPORT_CSV_BOM=true
//
// # Path Management
//
// Paths holds absolute directories resolved against a base directory, the
// executable's directory unless configured:
//
//	paths, err := cfg.ResolvePaths()
//	exportPath := paths.GetExportPath("opportunities_report.pdf")
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
