package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"seodash/internal/infrastructure"
	"seodash/pkg/contracts"
)

// Health status values
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
	StatusAlive    = "alive"
)

// HealthService provides health check functionality
type HealthService struct {
	version    string
	catalog    TableCatalog
	exportsDir string
	startTime  time.Time
	logger     *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Runtime   map[string]interface{}   `json:"runtime,omitempty"`
	Services  map[string]ServiceHealth `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthService creates a new health service. catalog may be nil
// before the data sets are loaded.
func NewHealthService(version string, catalog TableCatalog, exportsDir string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:    version,
		catalog:    catalog,
		exportsDir: exportsDir,
		startTime:  time.Now(),
		logger:     infrastructure.WithComponent(logger, "health_service"),
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    StatusOK,
		Timestamp: time.Now(),
		Version:   hs.version,
	}
}

// ReadinessCheck reports whether the data sets are loaded and the exports
// directory accepts files
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    StatusReady,
		Timestamp: time.Now(),
		Version:   hs.version,
		Services: map[string]ServiceHealth{
			"data":    hs.checkData(),
			"exports": hs.checkExports(),
		},
	}

	for name, svc := range status.Services {
		if svc.Status != StatusReady {
			status.Status = StatusNotReady
			hs.logger.WarnContext(ctx, "dependency not ready",
				slog.String("dependency", name),
				slog.String("message", svc.Message))
		}
	}

	return status
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    StatusAlive,
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// Version returns version information
func (hs *HealthService) Version() map[string]interface{} {
	info := contracts.GetVersionInfo()
	return map[string]interface{}{
		"version":      hs.version,
		"api_version":  info.APIVersion,
		"build_time":   info.BuildTime,
		"git_commit":   info.GitCommit,
		"go_version":   info.GoVersion,
		"os":           info.OS,
		"arch":         info.Architecture,
		"uptime":       time.Since(hs.startTime).Seconds(),
		"start_time":   hs.startTime.Format(time.RFC3339),
		"current_time": time.Now().Format(time.RFC3339),
	}
}

func (hs *HealthService) checkData() ServiceHealth {
	if hs.catalog == nil {
		return ServiceHealth{Status: StatusNotReady, Message: "data sets not loaded"}
	}
	names := hs.catalog.Names()
	if len(names) == 0 {
		return ServiceHealth{Status: StatusNotReady, Message: "no data sets loaded"}
	}
	return ServiceHealth{Status: StatusReady, Message: fmt.Sprintf("%d data sets loaded", len(names))}
}

// checkExports creates and removes a probe file in the exports directory
func (hs *HealthService) checkExports() ServiceHealth {
	if err := os.MkdirAll(hs.exportsDir, 0755); err != nil {
		return ServiceHealth{Status: StatusNotReady, Message: fmt.Sprintf("cannot create exports directory: %v", err)}
	}

	probe := filepath.Join(hs.exportsDir, ".probe-"+uuid.NewString())
	f, err := os.OpenFile(probe, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return ServiceHealth{Status: StatusNotReady, Message: fmt.Sprintf("exports directory not writable: %v", err)}
	}
	f.Close()
	os.Remove(probe)

	return ServiceHealth{Status: StatusReady}
}
