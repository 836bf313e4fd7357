// SPDX-License-Identifier: MIT

package quad

import "fmt"

// ValidateOrder checks that ord visits each (I,J,K) ∈ {0,1}³ exactly once.
// For Closure it also requires every K=0 step to precede every K=1 step.
func ValidateOrder(sched Schedule, ord Order) error {
	var seen [2][2][2]bool
	lastK0, firstK1 := -1, len(ord)
	for pos, st := range ord {
		if st.I < 0 || st.I > 1 || st.J < 0 || st.J > 1 || st.K < 0 || st.K > 1 {
			return fmt.Errorf("ValidateOrder: step %d %+v: %w", pos, st, ErrBadOrder)
		}
		if seen[st.I][st.J][st.K] {
			return fmt.Errorf("ValidateOrder: step %d %+v repeated: %w", pos, st, ErrBadOrder)
		}
		seen[st.I][st.J][st.K] = true
		if st.K == 0 {
			lastK0 = pos
		} else if pos < firstK1 {
			firstK1 = pos
		}
	}
	if sched == Closure && lastK0 > firstK1 {
		return fmt.Errorf("ValidateOrder: k=1 step %d precedes k=0 step %d: %w", firstK1, lastK0, ErrBadOrder)
	}

	return nil
}
