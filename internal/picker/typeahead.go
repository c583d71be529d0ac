package picker

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// matchRow returns the enabled row that best matches a type-to-jump query,
// or -1 when nothing matches.
func matchRow(rows []Row, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return -1
	}
	lower := strings.ToLower(trimmed)
	candidates := make([]int, 0, len(rows))
	labels := make([]string, 0, len(rows))
	for i, row := range rows {
		if !row.Enabled {
			continue
		}
		candidates = append(candidates, i)
		labels = append(labels, row.Entry.Title)
	}
	if len(candidates) == 0 {
		return -1
	}
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return candidates[i]
		}
	}
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return candidates[i]
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return candidates[i]
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(candidates) {
		return -1
	}
	return candidates[best.OriginalIndex]
}
