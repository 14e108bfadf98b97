// Package services implements the dashboard's business operations between
// the HTTP/CLI surfaces and the core packages.
//
//	- DataService: table summaries and paged table views for the data tabs
//	- ExportService: CSV, PDF and XLSX files for the Exports tab
//	- LinkService: campaign tracking links for the UTM Builder tab
//	- HealthService: liveness, readiness and version information
//
// Services receive their collaborators explicitly. The table catalog is
// loaded once by the host and shared read-only; services keep no state of
// their own between calls.
//
// Core packages (utm, exporter, dataset) never log. Services log the
// outcome of each operation with a component logger and record business
// metrics, then return the core package's typed error unchanged in its
// chain so the transport layer can map it to a problem response.
package services
