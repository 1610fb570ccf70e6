package ris

import "github.com/gilchrisn/influence-maximization/internal/topk"

// MaxCover greedily selects up to k nodes that cover the most RR sets
// (spec.md §4.8): each round picks the node hitting the largest number
// of currently-uncovered sets, ties broken by smallest node id, then
// removes every set that node just covered from every other node's
// count. It returns the chosen nodes and how many of the sets ended up
// covered.
func MaxCover(sets []map[int]struct{}, n, k int) (seeds []int, covered int) {
	if k > n {
		k = n
	}
	if k <= 0 || len(sets) == 0 {
		return []int{}, 0
	}

	memberOf := make([][]int, n)
	for idx, s := range sets {
		for v := range s {
			memberOf[v] = append(memberOf[v], idx)
		}
	}

	remaining := make([]int, n)
	for v := 0; v < n; v++ {
		remaining[v] = len(memberOf[v])
	}
	coveredSet := make([]bool, len(sets))
	selected := make([]bool, n)

	for round := 0; round < k; round++ {
		scores := make(map[int]float64, n-round)
		for v := 0; v < n; v++ {
			if !selected[v] && remaining[v] > 0 {
				scores[v] = float64(remaining[v])
			}
		}
		top := topk.Select(scores, 1, true)
		if len(top) == 0 {
			break
		}
		best := top[0]
		selected[best] = true
		seeds = append(seeds, best)

		for _, idx := range memberOf[best] {
			if coveredSet[idx] {
				continue
			}
			coveredSet[idx] = true
			covered++
			for w := range sets[idx] {
				remaining[w]--
			}
		}
	}
	return seeds, covered
}
