package parmap

import (
	"fmt"
	"sync"

	"github.com/parmap/parmap/internal"
)

// A pair carries an element or a result together with its position in
// the original input, so that results may arrive in any order.
type pair[E any] struct {
	index int
	value E
}

// goSpawn starts a worker goroutine. It is a variable to support
// counting spawns in unit tests.
var goSpawn = func(f func()) { go f() }

// Map applies f to every element of input and returns the outputs in
// input order, using DefaultThreshold and DefaultMaxWorkers.
//
// Inputs shorter than DefaultThreshold are mapped in the calling
// goroutine; longer inputs are divided among freshly spawned worker
// goroutines, at most DefaultMaxWorkers of them. Either way the output
// has the same length and order as the input, and Map returns only
// once every element has been transformed.
//
// If f panics for some element, the whole call aborts: the panic is
// rethrown in the calling goroutine and no results are returned.
func Map[T, R any](input []T, f Transform[T, R]) []R {
	return MapN(input, DefaultThreshold, DefaultMaxWorkers, f)
}

// MapN behaves like Map with an explicit threshold and worker cap.
//
// Inputs shorter than threshold are mapped in the calling goroutine.
// For longer inputs the number of workers is the input length divided
// by the threshold, rounded up and capped at maxWorkers; each worker
// receives one contiguous chunk of the input.
//
// A threshold or maxWorkers of 0 selects the package default. MapN
// panics if either is negative.
func MapN[T, R any](input []T, threshold, maxWorkers int, f Transform[T, R]) []R {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if maxWorkers == 0 {
		maxWorkers = DefaultMaxWorkers
	}
	if threshold < 0 || maxWorkers < 0 {
		panic(fmt.Sprintf("invalid map parameters: threshold %v, maxWorkers %v", threshold, maxWorkers))
	}
	if len(input) < threshold {
		logger.Debug().Int("len", len(input)).Msg("mapping in the calling goroutine")
		return mapDirect(input, f)
	}
	return mapWorkers(input, threshold, maxWorkers, f)
}

// mapDirect applies f sequentially in the calling goroutine.
func mapDirect[T, R any](input []T, f Transform[T, R]) []R {
	result := make([]R, 0, len(input))
	for _, item := range input {
		result = append(result, f(item))
	}
	return result
}

// mapWorkers partitions input into contiguous chunks, hands each chunk
// with its original indices to its own goroutine, and reassembles the
// emitted results by index.
func mapWorkers[T, R any](input []T, threshold, maxWorkers int, f Transform[T, R]) []R {
	plan := internal.ComputePlan(len(input), threshold, maxWorkers)
	logger.Debug().
		Int("len", len(input)).
		Int("workers", plan.Workers).
		Int("chunk_size", plan.ChunkSize).
		Msg("fanning out across workers")

	// Buffering to the input length means a send can never block, so
	// every worker runs to completion no matter how the drain loop below
	// is scheduled.
	results := make(chan pair[R], len(input))
	panics := make([]any, plan.Workers)
	var wg sync.WaitGroup
	wg.Add(plan.Workers)
	for i := 0; i < plan.Workers; i++ {
		low, high := plan.Bounds(i)
		chunk := make([]pair[T], 0, high-low)
		for j, item := range input[low:high] {
			chunk = append(chunk, pair[T]{low + j, item})
		}
		worker := i
		goSpawn(func() {
			defer func() {
				panics[worker] = internal.WrapPanic(recover())
				wg.Done()
			}()
			work(chunk, results, f)
		})
	}

	// The channel closes once the last worker is done; that closure is
	// the sole termination condition of the drain loop.
	go func() {
		wg.Wait()
		close(results)
	}()

	output := make([]R, len(input))
	for p := range results {
		output[p.index] = p.value
	}
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
	logger.Debug().Int("len", len(input)).Msg("all results collected")
	return output
}

// work computes f for every element of its chunk and emits each result
// tagged with the element's original index. A panicking transform
// unwinds the worker; mapWorkers recovers it and aborts the batch.
func work[T, R any](chunk []pair[T], results chan<- pair[R], f Transform[T, R]) {
	for _, in := range chunk {
		results <- pair[R]{in.index, f(in.value)}
	}
}
