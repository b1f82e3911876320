package kmap

// Table is a truth table as supplied by a front end: the variables in
// declaration order and one row per joint assignment.  Tables are plain
// data; indexing and validation happen in [New].
type Table struct {
	Vars []byte
	Rows []Row
}

// Row is a single truth-table row: one input per declared variable, in
// declaration order, and the row's outcome.
type Row struct {
	Inputs  []bool
	Outcome bool
}

// Assignment returns the row's inputs keyed by variable name.
func (t Table) Assignment(i int) Assignment {
	a := make(Assignment, len(t.Vars))
	for j, v := range t.Vars {
		a[v] = t.Rows[i].Inputs[j]
	}
	return a
}
