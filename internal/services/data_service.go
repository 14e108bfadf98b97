package services

import (
	"context"
	"log/slog"

	"seodash/internal/infrastructure"
	api "seodash/pkg/contracts/api/v1"
	"seodash/pkg/contracts/domain"
)

// DataService serves the loaded tables to the dashboard tabs
type DataService struct {
	catalog TableCatalog
	logger  *slog.Logger
}

// NewDataService creates a data service over catalog
func NewDataService(catalog TableCatalog, logger *slog.Logger) *DataService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataService{
		catalog: catalog,
		logger:  infrastructure.WithComponent(logger, "data_service"),
	}
}

// Summaries lists every loaded table without its rows
func (s *DataService) Summaries(ctx context.Context) []domain.TableSummary {
	summaries := s.catalog.Summaries()
	out := make([]domain.TableSummary, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, domain.TableSummary{
			Name:     sum.Name,
			Title:    sum.Title,
			Columns:  sum.Columns,
			RowCount: sum.RowCount,
			Source:   sum.Source,
			LoadedAt: sum.LoadedAt,
		})
	}
	return out
}

// Table returns one page of the named table in column order. A zero limit
// returns every row from offset on.
func (s *DataService) Table(ctx context.Context, name string, page api.TableRequest) (*domain.TableView, error) {
	t, err := s.catalog.Get(name)
	if err != nil {
		s.logger.DebugContext(ctx, "table lookup failed",
			slog.String("table", name),
			slog.String("error", err.Error()))
		return nil, err
	}

	total := t.Len()
	start := min(max(page.Offset, 0), total)
	end := total
	if page.Limit > 0 {
		end = min(start+page.Limit, total)
	}

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, t.Values(i))
	}

	return &domain.TableView{
		Name:     t.Name,
		Title:    s.catalog.Title(name),
		Columns:  t.Header(),
		Rows:     rows,
		Offset:   start,
		RowCount: len(rows),
		Total:    total,
	}, nil
}
