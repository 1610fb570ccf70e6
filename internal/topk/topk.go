// Package topk selects the k highest- or lowest-scoring keys from a
// score map, breaking ties on the key itself for determinism. It is
// grounded on pynetim.utils.topk, generalized from Python's dict-sort
// idiom to a small generic helper reused by the max-cover step and the
// heuristic selectors.
package topk

import "sort"

// Select returns the k keys with the largest (or, if largest is false,
// smallest) values in scores. Ties are broken by the natural order of
// the key type, smallest first, matching the "smallest node id wins"
// tie-break spec.md requires of every selector.
func Select[K int | int64](scores map[K]float64, k int, largest bool) []K {
	keys := make([]K, 0, len(scores))
	for key := range scores {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		si, sj := scores[keys[i]], scores[keys[j]]
		if si != sj {
			if largest {
				return si > sj
			}
			return si < sj
		}
		return keys[i] < keys[j]
	})

	if k > len(keys) {
		k = len(keys)
	}
	return keys[:k]
}
