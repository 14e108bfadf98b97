package dataset

// Data set names
const (
	Opportunities = "opportunities"
	Listings      = "listings"
	Queries       = "queries"
)

// Schema declares a data set and the columns its source file must provide.
// Extra columns in the file are kept.
type Schema struct {
	Name     string
	Title    string
	Required []string
}

// DefaultSchemas returns the dashboard's data sets in tab order
func DefaultSchemas() []Schema {
	return []Schema{
		{
			Name:     Opportunities,
			Title:    "Opportunities",
			Required: []string{"keyword", "volume", "competition", "current_rank", "suggested_listing"},
		},
		{
			Name:     Listings,
			Title:    "Listings",
			Required: []string{"listing_id", "title", "price", "views", "favorites"},
		},
		{
			Name:     Queries,
			Title:    "Queries",
			Required: []string{"query", "clicks", "impressions", "ctr", "position"},
		},
	}
}

// Check verifies that t declares every required column
func (s Schema) Check(t *Table) error {
	for _, col := range s.Required {
		if !t.HasColumn(col) {
			return &MalformedTableError{Table: s.Name, Row: -1, Column: col, Reason: "required column missing"}
		}
	}
	return nil
}
