// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/samber/lo"
)

// Variant selects the loop structure used by an operation. It is resolved
// once at the program boundary with ParseVariant.
type Variant int

const (
	Naive Variant = iota + 1
	Transposed
	Recursive
	Tiled
)

var variantNames = map[Variant]string{
	Naive:      "naive",
	Transposed: "transposed",
	Recursive:  "recursive",
	Tiled:      "tiled",
}

// String returns the selector token for v.
func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}

	return fmt.Sprintf("Variant(%d)", int(v))
}

// Variants lists all variants in declaration order.
func Variants() []Variant {
	return []Variant{Naive, Transposed, Recursive, Tiled}
}

// VariantNames lists the selector tokens in declaration order.
func VariantNames() []string {
	return lo.Map(Variants(), func(v Variant, _ int) string { return v.String() })
}

// ParseVariant resolves a selector token ("naive", "transposed",
// "recursive", "tiled"). Empty or unknown tokens return ErrInvalidArgument.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return 0, fmt.Errorf("ParseVariant: empty selector (want one of %v): %w", VariantNames(), ErrInvalidArgument)
	}
	v, ok := lo.Find(Variants(), func(v Variant) bool { return v.String() == s })
	if !ok {
		return 0, fmt.Errorf("ParseVariant(%q): want one of %v: %w", s, VariantNames(), ErrInvalidArgument)
	}

	return v, nil
}
