package domain

// ImportRowError itemizes why one roster row was skipped.
type ImportRowError struct {
	PFNumber string
	Fields   map[string]string
}

// ImportReport summarizes a bulk member import. Per-row failures are
// data, not request failures; the import as a whole still succeeds.
type ImportReport struct {
	Created int
	Skipped int
	Errors  []ImportRowError
}
