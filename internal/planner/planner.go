// Package planner resolves the order in which normalized files are loaded.
package planner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// Identity returns the discovery order [0, n).
func Identity(n int) sqlstage.ExecutionOrder {
	order := make(sqlstage.ExecutionOrder, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// Parse converts the operator's ordering input into zero-based indices.
// "0" or blank input selects Identity(n); anything else is read as
// whitespace-separated 1-based file numbers. Parse does not check the
// numbers against n, see Validate.
func Parse(input string, n int) (sqlstage.ExecutionOrder, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || trimmed == sqlstage.NaturalOrder {
		return Identity(n), nil
	}

	fields := strings.Fields(trimmed)
	order := make(sqlstage.ExecutionOrder, 0, len(fields))
	for _, field := range fields {
		num, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not a file number: %w", field, sqlstage.ErrInvalidOrder)
		}
		order = append(order, num-1)
	}

	return order, nil
}

// Validate rejects indices outside [0, n) and indices listed more than once.
// Omitting files is allowed. All violations are reported together.
func Validate(order sqlstage.ExecutionOrder, n int) error {
	var errs []error
	seen := make(map[int]bool, len(order))

	for _, idx := range order {
		if idx < 0 || idx >= n {
			errs = append(errs, fmt.Errorf("file number %d is out of range 1..%d: %w", idx+1, n, sqlstage.ErrInvalidOrder))
			continue
		}
		if seen[idx] {
			errs = append(errs, fmt.Errorf("file number %d is listed more than once: %w", idx+1, sqlstage.ErrInvalidOrder))
			continue
		}
		seen[idx] = true
	}

	return errors.Join(errs...)
}

// Plan parses and validates input in one step.
func Plan(input string, n int) (sqlstage.ExecutionOrder, error) {
	order, err := Parse(input, n)
	if err != nil {
		return nil, err
	}
	if err := Validate(order, n); err != nil {
		return nil, err
	}
	return order, nil
}
