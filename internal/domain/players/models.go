// Package players holds the canonical player shapes used across the tool.
package players

// Candidate is one player directory entry matching a name query.
type Candidate struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	FromYear int    `json:"fromYear"`
	ToYear   int    `json:"toYear"`
}
