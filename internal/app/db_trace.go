package app

import "strings"

// Traced statements are collapsed to one line and capped so span attributes
// stay readable when the stats queries carry long EXTRACT/JOIN clauses.
const tracedQueryLimit = 512

func formatDBQueryForTrace(query string) string {
	flat := strings.Join(strings.Fields(query), " ")
	if len(flat) <= tracedQueryLimit {
		return flat
	}
	return flat[:tracedQueryLimit] + "..."
}
