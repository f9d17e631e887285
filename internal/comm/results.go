package comm

// ItemFailure records one unit that failed inside a bulk operation.
type ItemFailure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// MigrationSummary reports how many legacy records became per-folder
// records. Migrated <= Total; each failed record appears in Failures.
type MigrationSummary struct {
	Migrated int           `json:"migrated"`
	Total    int           `json:"total"`
	Failures []ItemFailure `json:"failures,omitempty"`
}

// CleanupSummary reports which orphan folders were removed.
type CleanupSummary struct {
	Deleted  int           `json:"deleted"`
	Removed  []string      `json:"removed,omitempty"`
	Failures []ItemFailure `json:"failures,omitempty"`
}

// PromoteSummary reports the outcome of a temp-to-permanent promotion.
// TempRemoved is false when some file failed to transfer: the temp
// folder is kept in that case so no attachment data is destroyed.
type PromoteSummary struct {
	Moved       int           `json:"moved"`
	Total       int           `json:"total"`
	Failures    []ItemFailure `json:"failures,omitempty"`
	TempRemoved bool          `json:"tempRemoved"`
}

// Complete reports whether every staged file transferred.
func (s PromoteSummary) Complete() bool { return s.Moved == s.Total }

// WipeSummary reports the outcome of a full data wipe. Each target is
// attempted independently; RootRemoved is true only when the data root
// ended up empty and was removed.
type WipeSummary struct {
	Removed     []string      `json:"removed,omitempty"`
	Failures    []ItemFailure `json:"failures,omitempty"`
	RootRemoved bool          `json:"rootRemoved"`
}
