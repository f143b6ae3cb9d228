package export

import "fmt"

// Table is positional tabular content shared by every exporter.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  string
}

// Exporter renders a Table into a downloadable document.
type Exporter interface {
	Render(table Table) ([]byte, error)
	ContentType() string
	Extension() string
}

func (t Table) validate() error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("table requires at least one header")
	}
	for i, row := range t.Rows {
		if len(row) > len(t.Headers) {
			return fmt.Errorf("row %d has %d columns, want at most %d", i, len(row), len(t.Headers))
		}
	}
	return nil
}

// cell returns the value at column i, tolerating short rows.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
