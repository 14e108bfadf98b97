package http

import (
	"context"

	api "seodash/pkg/contracts/api/v1"
	"seodash/pkg/contracts/domain"
)

// DataServiceInterface defines the interface for table reads
type DataServiceInterface interface {
	Summaries(ctx context.Context) []domain.TableSummary
	Table(ctx context.Context, name string, page api.TableRequest) (*domain.TableView, error)
}

// ExportServiceInterface defines the interface for file exports
type ExportServiceInterface interface {
	Export(ctx context.Context, req api.ExportRequest) (*domain.Report, error)
	Options() []domain.ReportOption
}

// LinkServiceInterface defines the interface for tracking links
type LinkServiceInterface interface {
	Build(ctx context.Context, req api.LinkRequest) (*domain.TrackingLink, error)
	Channels() []domain.Channel
	Channel(name string) (domain.Channel, error)
}
