// Package app wires the dashboard together: configuration, logging,
// telemetry, the data set catalog, the services and the HTTP router.
//
// # Initialization Flow
//
//	1. Load configuration (defaults, YAML file, SEODASH_* environment)
//	2. Resolve directories and initialize the logger
//	3. Initialize OpenTelemetry and the business metrics
//	4. Load the data sets into a read-only catalog
//	5. Create the services and mount the handlers
//	6. Serve until SIGINT or SIGTERM, then shut down gracefully
//
// # Usage
//
//	application, err := app.NewApplication(ctx)
//	if err != nil {
//	    return err
//	}
//	return application.Run()
//
// Initialization errors are returned to the caller; the package never
// calls os.Exit.
package app
