// Package transform holds pure table-to-table functions used by the
// pipeline. None of them mutate their input.
package transform

import "ads-etl/internal/core/domain"

// Func maps one table to another.
type Func func(domain.Table) (domain.Table, error)

// Chain is an ordered list of transforms.
type Chain []Func

// Apply runs every transform in order, feeding each the previous result.
// It stops at the first error.
func (c Chain) Apply(t domain.Table) (domain.Table, error) {
	out := t
	for _, fn := range c {
		var err error
		if out, err = fn(out); err != nil {
			return domain.Table{}, err
		}
	}
	return out, nil
}
