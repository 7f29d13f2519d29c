package importer

// duplicateTracker maps each standardized phone number to every row that
// produced it within one run. It is created fresh per run; the first
// occurrence of a phone keeps its record, later ones only join the
// group.
type duplicateTracker struct {
	rows  map[string][]int
	order []string
}

func newDuplicateTracker() *duplicateTracker {
	return &duplicateTracker{rows: make(map[string][]int)}
}

// Observe registers one occurrence of phone on rowNum and reports
// whether it is the first occurrence in the run.
func (t *duplicateTracker) Observe(phone string, rowNum int) bool {
	_, seen := t.rows[phone]
	t.rows[phone] = append(t.rows[phone], rowNum)
	if !seen {
		t.order = append(t.order, phone)
	}
	return !seen
}

// Groups returns every phone shared by more than one occurrence, in
// first-seen order.
func (t *duplicateTracker) Groups() []DuplicateGroup {
	var groups []DuplicateGroup
	for _, phone := range t.order {
		rows := t.rows[phone]
		if len(rows) > 1 {
			groups = append(groups, DuplicateGroup{
				Phone:      phone,
				Rows:       rows,
				Resolution: resolutionKeptFirst,
			})
		}
	}
	return groups
}
