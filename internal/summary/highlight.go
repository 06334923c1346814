// internal/summary/highlight.go
package summary

import "sort"

// Rank is the highlight tier of a cell. Lower values are better.
type Rank int

const (
	RankNone Rank = iota
	RankBest
	RankSecond
	RankThird
)

// String returns the CSS-friendly name of the rank.
func (r Rank) String() string {
	switch r {
	case RankBest:
		return "best"
	case RankSecond:
		return "second"
	case RankThird:
		return "third"
	}
	return ""
}

// Highlight ranks the three lowest distinct values of each summary metric
// across columns. The result is aligned with rows and columns: out[i][j] is
// the rank of rows[i] in columns[j]. Equal values share a rank and missing
// cells are never ranked.
func Highlight(rows []PivotRow, columns []string) [][]Rank {
	out := make([][]Rank, len(rows))
	for i := range out {
		out[i] = make([]Rank, len(columns))
	}

	for _, metric := range SummaryMetrics {
		distinct := make(map[float64]struct{})
		for _, row := range rows {
			if row.Metric != metric {
				continue
			}
			for _, col := range columns {
				if v, ok := row.Value(col); ok {
					distinct[v] = struct{}{}
				}
			}
		}
		if len(distinct) == 0 {
			continue
		}

		sorted := make([]float64, 0, len(distinct))
		for v := range distinct {
			sorted = append(sorted, v)
		}
		sort.Float64s(sorted)

		ranks := make(map[float64]Rank, 3)
		for i, tier := range []Rank{RankBest, RankSecond, RankThird} {
			if i < len(sorted) {
				ranks[sorted[i]] = tier
			}
		}

		for i, row := range rows {
			if row.Metric != metric {
				continue
			}
			for j, col := range columns {
				if v, ok := row.Value(col); ok {
					out[i][j] = ranks[v]
				}
			}
		}
	}
	return out
}
