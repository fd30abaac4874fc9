// Package internal provides the chunk-planning arithmetic and panic
// handling shared by the parmap packages.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// A Plan divides an input of Size elements into Workers contiguous
// chunks of at most ChunkSize elements each.
type Plan struct {
	Size      int
	Workers   int
	ChunkSize int
}

// ComputePlan determines how many workers an input of the given size
// should be divided among, and how many elements each worker handles.
//
// The worker count is the size divided by the threshold, rounded up and
// capped at maxWorkers; the chunk size is the size divided by that
// count, rounded up. Capping can leave trailing chunks empty, so the
// worker count is then reduced to the number of non-empty chunks: every
// worker in the returned plan has at least one element, the chunks
// never overlap, and together they cover the input exactly.
//
// ComputePlan panics if size, threshold, or maxWorkers is less than 1.
func ComputePlan(size, threshold, maxWorkers int) Plan {
	if size < 1 {
		panic(fmt.Sprintf("invalid input size: %v", size))
	}
	if threshold < 1 || maxWorkers < 1 {
		panic(fmt.Sprintf("invalid plan parameters: threshold %v, maxWorkers %v", threshold, maxWorkers))
	}
	workers := ((size - 1) / threshold) + 1
	if workers > maxWorkers {
		workers = maxWorkers
	}
	chunkSize := ((size - 1) / workers) + 1
	workers = ((size - 1) / chunkSize) + 1
	return Plan{Size: size, Workers: workers, ChunkSize: chunkSize}
}

// Bounds returns the half-open element range assigned to the given
// worker, with 0 <= worker < p.Workers. The last chunk may be shorter
// than p.ChunkSize.
func (p Plan) Bounds(worker int) (low, high int) {
	low = worker * p.ChunkSize
	high = low + p.ChunkSize
	if high > p.Size {
		high = p.Size
	}
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p any) any {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
