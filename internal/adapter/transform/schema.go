package transform

import (
	"fmt"

	"ads-etl/internal/core/domain"
)

// Rule is the expected kind of one required column.
type Rule struct {
	Column string
	Kind   domain.Kind
}

// Rules lists the required columns of each known dataset.
var Rules = map[string][]Rule{
	"campaign_budget": {
		{Column: "campaign_id", Kind: domain.KindInt},
		{Column: "budget", Kind: domain.KindFloat},
	},
	"campaign_result": {
		{Column: "campaign_id", Kind: domain.KindInt},
		{Column: "user_id", Kind: domain.KindInt},
		{Column: "checkout_id", Kind: domain.KindInt},
		{Column: "is_click", Kind: domain.KindInt},
	},
	"product_checkout": {
		{Column: "checkout_id", Kind: domain.KindInt},
		{Column: "is_checkout", Kind: domain.KindInt},
		{Column: "qty", Kind: domain.KindInt},
		{Column: "unit_price", Kind: domain.KindFloat},
	},
}

// ValidateSchema checks a dataset against its rules and returns every
// violation found. Datasets without rules always pass. Integer values
// are accepted in float columns.
func ValidateSchema(dataset string, t domain.Table) domain.Violations {
	var out domain.Violations
	for _, rule := range Rules[dataset] {
		idx, ok := t.ColumnIndex(rule.Column)
		if !ok {
			out = append(out, domain.Violation{
				Dataset:  dataset,
				Column:   rule.Column,
				Row:      -1,
				Expected: rule.Kind,
				Got:      "missing",
			})
			continue
		}
		for i, row := range t.Rows {
			if got, ok := matches(row[idx], rule.Kind); !ok {
				out = append(out, domain.Violation{
					Dataset:  dataset,
					Column:   rule.Column,
					Row:      i,
					Expected: rule.Kind,
					Got:      got,
				})
			}
		}
	}
	return out
}

func matches(v any, want domain.Kind) (string, bool) {
	kind, ok := domain.KindOf(v)
	if !ok {
		if v == nil {
			return "null", false
		}
		return fmt.Sprintf("%T", v), false
	}
	if kind == want || (want == domain.KindFloat && kind == domain.KindInt) {
		return string(kind), true
	}
	return fmt.Sprintf("%s %v", kind, v), false
}
