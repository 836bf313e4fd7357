// SPDX-License-Identifier: MIT

package cachesim

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Policy selects the victim line on a miss in a full set.
type Policy int

const (
	// LRU evicts the least recently used line.
	LRU Policy = iota + 1
	// LFU evicts the least frequently used line; ties go to the lowest way.
	LFU
	// FIFO evicts the line filled earliest; hits do not refresh it.
	FIFO
	// Random evicts a uniformly chosen way (seeded).
	Random
)

var policyNames = map[Policy]string{
	LRU:    "lru",
	LFU:    "lfu",
	FIFO:   "fifo",
	Random: "random",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// Policies lists all policies in declaration order.
func Policies() []Policy {
	return []Policy{LRU, LFU, FIFO, Random}
}

// PolicyNames lists the policy tokens in declaration order.
func PolicyNames() []string {
	return lo.Map(Policies(), func(p Policy, _ int) string { return p.String() })
}

// ParsePolicy resolves a policy token, case-insensitively. "rand" is
// accepted as an alias of "random".
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(s)
	if s == "rand" {
		return Random, nil
	}
	p, ok := lo.Find(Policies(), func(p Policy) bool { return p.String() == s })
	if !ok {
		return 0, fmt.Errorf("ParsePolicy(%q): want one of %v: %w", s, PolicyNames(), ErrUnknownPolicy)
	}

	return p, nil
}
