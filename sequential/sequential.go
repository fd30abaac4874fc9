// Package sequential provides a sequential implementation of the
// mapping functions provided by the parmap package. This is useful for
// testing and debugging.
//
// It is not recommended to use this package for any other purpose: the
// parmap package already runs small inputs sequentially, and for large
// inputs its parallel execution is the point.
package sequential

import "github.com/parmap/parmap"

// Map applies f to every element of input in order, entirely in the
// calling goroutine, and returns the outputs in the same order.
//
// For any stateless f, Map returns the same results as parmap.Map.
func Map[T, R any](input []T, f parmap.Transform[T, R]) []R {
	result := make([]R, 0, len(input))
	for _, item := range input {
		result = append(result, f(item))
	}
	return result
}
