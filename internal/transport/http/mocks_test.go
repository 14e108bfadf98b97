package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "seodash/internal/errors"
	"seodash/internal/middleware"
	"seodash/internal/shared/testutil"
	api "seodash/pkg/contracts/api/v1"
	"seodash/pkg/contracts/domain"
)

// MockDataService is a mock implementation of DataServiceInterface
type MockDataService struct {
	mock.Mock
}

func (m *MockDataService) Summaries(ctx context.Context) []domain.TableSummary {
	summaries, _ := m.Called().Get(0).([]domain.TableSummary)
	return summaries
}

func (m *MockDataService) Table(ctx context.Context, name string, page api.TableRequest) (*domain.TableView, error) {
	args := m.Called(name, page)
	view, _ := args.Get(0).(*domain.TableView)
	return view, args.Error(1)
}

// MockExportService is a mock implementation of ExportServiceInterface
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, req api.ExportRequest) (*domain.Report, error) {
	args := m.Called(req)
	report, _ := args.Get(0).(*domain.Report)
	return report, args.Error(1)
}

func (m *MockExportService) Options() []domain.ReportOption {
	options, _ := m.Called().Get(0).([]domain.ReportOption)
	return options
}

// MockLinkService is a mock implementation of LinkServiceInterface
type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) Build(ctx context.Context, req api.LinkRequest) (*domain.TrackingLink, error) {
	args := m.Called(req)
	link, _ := args.Get(0).(*domain.TrackingLink)
	return link, args.Error(1)
}

func (m *MockLinkService) Channels() []domain.Channel {
	channels, _ := m.Called().Get(0).([]domain.Channel)
	return channels
}

func (m *MockLinkService) Channel(name string) (domain.Channel, error) {
	args := m.Called(name)
	channel, _ := args.Get(0).(domain.Channel)
	return channel, args.Error(1)
}

// handlerDeps bundles the collaborators every handler takes
type handlerDeps struct {
	logger       *slog.Logger
	validator    *middleware.Validator
	errorHandler *apierrors.ErrorHandler
	logs         *testutil.BufferedSlogHandler
}

func newHandlerDeps(t *testing.T) handlerDeps {
	t.Helper()
	logger, logs := testutil.NewTestLogger(t)
	return handlerDeps{
		logger:       logger,
		validator:    middleware.NewValidator(logger),
		errorHandler: apierrors.NewErrorHandler(logger, false),
		logs:         logs,
	}
}

// decodeBody unmarshals a JSON response body into a generic map
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
