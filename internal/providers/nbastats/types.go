package nbastats

// envelope is the common stats.nba.com response shape: every endpoint returns
// one or more named tabular result sets.
type envelope struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}
