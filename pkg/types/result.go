package types

// RecordView is the caller-facing projection of a Record. Field names are
// part of the external contract.
type RecordView struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Description string `json:"description"`
}

// SearchResponse is the structured result of a search operation.
type SearchResponse struct {
	Results      []RecordView `json:"results"`
	TotalFound   int          `json:"total_found"`
	StrategyUsed string       `json:"strategy_used"`
}

// VerifyMatch is one exact hit from a verify operation.
type VerifyMatch struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
}

// VerifyResult reports whether an API reference or full signature exists.
type VerifyResult struct {
	Valid   bool          `json:"valid"`
	Matches []VerifyMatch `json:"matches"`
}

// LibraryInfo carries metadata about the indexed library.
type LibraryInfo struct {
	Name     string            `json:"package_name"`
	Version  string            `json:"version"`
	Location string            `json:"location"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ComponentInfo is the debug-level description of one discovered component.
type ComponentInfo struct {
	Name          string        `json:"name"`
	Kind          ComponentKind `json:"kind"`
	MemberCount   int           `json:"member_count"`
	SampleMembers []string      `json:"sample_members,omitempty"`
}
