// Package fixture is sample source text used to exercise the line-mode
// diff path against a file-sized input rather than short in-memory strings.
package fixture

import (
	"fmt"
	"sort"
	"strings"
)

// Record holds a single name/score pair.
type Record struct {
	Name  string
	Score int
}

// ByScore sorts Records by Score descending, then Name ascending.
type ByScore []Record

func (b ByScore) Len() int      { return len(b) }
func (b ByScore) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b ByScore) Less(i, j int) bool {
	if b[i].Score != b[j].Score {
		return b[i].Score > b[j].Score
	}
	return b[i].Name < b[j].Name
}

// Rank sorts records and returns a ranked report, one line per record.
func Rank(records []Record) string {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Sort(ByScore(sorted))

	var lines []string
	for i, r := range sorted {
		lines = append(lines, fmt.Sprintf("%d. %s (%d)", i+1, r.Name, r.Score))
	}
	return strings.Join(lines, "\n")
}

// Sum adds up every record's score.
func Sum(records []Record) int {
	total := 0
	for _, r := range records {
		total += r.Score
	}
	return total
}

// Average returns the mean score, or 0 for an empty slice.
func Average(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	return float64(Sum(records)) / float64(len(records))
}

// TopN returns the n highest-scoring records.
func TopN(records []Record, n int) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Sort(ByScore(sorted))
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Filter returns the subset of records for which keep returns true.
func Filter(records []Record, keep func(Record) bool) []Record {
	var out []Record
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// GroupByInitial buckets records by the first letter of their name.
func GroupByInitial(records []Record) map[byte][]Record {
	groups := make(map[byte][]Record)
	for _, r := range records {
		if len(r.Name) == 0 {
			continue
		}
		initial := r.Name[0]
		groups[initial] = append(groups[initial], r)
	}
	return groups
}
