// SPDX-License-Identifier: MIT
// Package: cobench/internal/cli
//
// values.go - pflag.Value types that validate at parse time, so a bad
// flag is reported by cobra with usage, before any file is touched.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/cobench/cachesim"
	"github.com/katalvlaran/cobench/grid"
)

var (
	_ pflag.Value = (*pow2Value)(nil)
	_ pflag.Value = (*policyValue)(nil)
)

// pow2Value is an int flag restricted to positive powers of two
// (or 0 when allowZero is set).
type pow2Value struct {
	v         *int
	allowZero bool
}

func newPow2Value(def int, p *int, allowZero bool) *pow2Value {
	*p = def

	return &pow2Value{v: p, allowZero: allowZero}
}

func (p *pow2Value) String() string { return strconv.Itoa(*p.v) }

func (p *pow2Value) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if !(p.allowZero && n == 0) && !grid.IsPowerOfTwo(n) {
		return fmt.Errorf("%d is not a power of two", n)
	}
	*p.v = n

	return nil
}

func (p *pow2Value) Type() string { return "pow2" }

// policyValue is a cachesim.Policy flag.
type policyValue struct{ v *cachesim.Policy }

func newPolicyValue(def cachesim.Policy, p *cachesim.Policy) *policyValue {
	*p = def

	return &policyValue{v: p}
}

func (p *policyValue) String() string { return p.v.String() }

func (p *policyValue) Set(s string) error {
	pol, err := cachesim.ParsePolicy(s)
	if err != nil {
		return err
	}
	*p.v = pol

	return nil
}

func (p *policyValue) Type() string { return "policy" }
