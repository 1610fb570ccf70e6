// Package imerr defines the closed set of error kinds surfaced by the
// influence-maximization packages. Every exported operation either
// returns a result or fails with one of these sentinels; nothing is
// swallowed or retried internally.
package imerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", kind) to attach
// context; callers discriminate with errors.Is.
var (
	// InvalidNode is returned when a node id falls outside [0, n).
	InvalidNode = errors.New("imerr: node id out of range")

	// EdgeNotFound is returned by an update or removal on an edge that
	// does not exist.
	EdgeNotFound = errors.New("imerr: edge not found")

	// LengthMismatch is returned when parallel edge/weight arrays passed
	// to a batch operation differ in length.
	LengthMismatch = errors.New("imerr: parallel arrays have different lengths")

	// InvalidParameter is returned for out-of-range thresholds, a
	// negative budget, or non-positive ε/ℓ.
	InvalidParameter = errors.New("imerr: invalid parameter")

	// BudgetExceedsNodes is returned by selectors that require distinct
	// nodes when k > n. The default behavior (see each selector's Run)
	// is to clamp to n rather than return this error; setting a
	// selector's Strict field opts out of clamping and gets this error
	// instead.
	BudgetExceedsNodes = errors.New("imerr: seed budget exceeds node count")
)

// ClampBudget validates a seed budget k against the node count n
// (spec.md §7): negative k is always InvalidParameter; k > n clamps to
// n unless strict is set, in which case it fails with
// BudgetExceedsNodes. Shared by every selector (selector.Greedy/CELF,
// ris.BaseRIS/IMM) so the clamp-vs-fail contract can't drift between
// implementations. op is the caller's name, used only to label the
// returned error (e.g. "selector.Greedy.Run").
func ClampBudget(op string, k, n int, strict bool) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%s: k=%d: %w", op, k, InvalidParameter)
	}
	if k > n {
		if strict {
			return 0, fmt.Errorf("%s: k=%d exceeds n=%d: %w", op, k, n, BudgetExceedsNodes)
		}
		return n, nil
	}
	return k, nil
}
