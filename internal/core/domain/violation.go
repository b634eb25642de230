package domain

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Violation is a single schema mismatch found in a dataset. Row is -1
// when the whole column is missing.
type Violation struct {
	Dataset  string `json:"dataset"`
	Column   string `json:"column"`
	Row      int    `json:"row"`
	Expected Kind   `json:"expected"`
	Got      string `json:"got"`
}

func (v Violation) Error() string {
	if v.Row < 0 {
		return fmt.Sprintf("%s: column %q is missing (expected %s)", v.Dataset, v.Column, v.Expected)
	}
	return fmt.Sprintf("%s: row %d column %q: expected %s, got %s", v.Dataset, v.Row, v.Column, v.Expected, v.Got)
}

// Violations is the full result of a schema check.
type Violations []Violation

// Err folds all violations into a single error, or nil when there are none.
func (vs Violations) Err() error {
	var result *multierror.Error
	for _, v := range vs {
		result = multierror.Append(result, v)
	}
	return result.ErrorOrNil()
}
