package services

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"seodash/internal/dataset"
)

// MockCatalog is a mock for the TableCatalog interface
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Get(name string) (*dataset.Table, error) {
	args := m.Called(name)
	t, _ := args.Get(0).(*dataset.Table)
	return t, args.Error(1)
}

func (m *MockCatalog) Title(name string) string {
	return m.Called(name).String(0)
}

func (m *MockCatalog) Names() []string {
	names, _ := m.Called().Get(0).([]string)
	return names
}

func (m *MockCatalog) Summaries() []dataset.Summary {
	summaries, _ := m.Called().Get(0).([]dataset.Summary)
	return summaries
}

func listingsTable(t *testing.T, rows int) *dataset.Table {
	t.Helper()
	records := make([][]string, rows)
	for i := range records {
		records[i] = []string{
			string(rune('A'+i%26)) + "-listing",
			"Handmade mug",
			"24.00",
			"120",
			"7",
		}
	}
	table, err := dataset.NewTable("listings", []string{"listing_id", "title", "price", "views", "favorites"}, records)
	require.NoError(t, err)
	return table
}

func testCatalog(t *testing.T) *dataset.Catalog {
	t.Helper()
	opportunities, err := dataset.NewTable("opportunities",
		[]string{"keyword", "volume", "competition", "current_rank", "suggested_listing"},
		[][]string{
			{"ceramic mug", "5400", "low", "14", "Handmade mug"},
			{"gift for her", "22000", "high", "", "Gift box"},
		})
	require.NoError(t, err)

	catalog, err := dataset.NewCatalog(opportunities, listingsTable(t, 3))
	require.NoError(t, err)
	return catalog
}
