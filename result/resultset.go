package result

// ResultSet is the immutable output of a query
type ResultSet struct {
	columns []string
	rows    []Row
}

// NewResultSet wraps rows produced for columns
func NewResultSet(columns []string, rows []Row) *ResultSet {
	if rows == nil {
		rows = []Row{}
	}
	return &ResultSet{columns: columns, rows: rows}
}

// Columns returns the selected columns in order
func (rs *ResultSet) Columns() []string {
	return rs.columns
}

// Size returns the number of rows
func (rs *ResultSet) Size() int {
	return len(rs.rows)
}

// Rows returns all rows in record order
func (rs *ResultSet) Rows() []Row {
	return rs.rows
}

// First returns the first row, or an empty row when there are none
func (rs *ResultSet) First() Row {
	if len(rs.rows) == 0 {
		return Row{}
	}
	return rs.rows[0]
}

// Limit returns a result set holding at most n rows. A non-positive n keeps
// every row.
func (rs *ResultSet) Limit(n int) *ResultSet {
	if n <= 0 || n >= len(rs.rows) {
		return rs
	}
	return &ResultSet{columns: rs.columns, rows: rs.rows[:n]}
}
