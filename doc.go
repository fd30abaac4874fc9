// Package parmap maps a pure function over a slice, transparently
// deciding whether to apply it sequentially in the calling goroutine or
// to fan the work out across a bounded number of worker goroutines.
//
// Map and MapN are single synchronous batch operations: they return
// only once every element has been transformed, and the output slice
// always has the same length and order as the input. Workers are
// spawned fresh for every call and never reused, there is no work
// stealing, no cancellation, and no streaming of partial results.
//
// Inputs shorter than the threshold (DefaultThreshold, or the value
// given to MapN) are mapped directly in the calling goroutine, since
// spawning goroutines for a handful of elements costs more than it
// saves. Longer inputs are partitioned into contiguous chunks, one
// worker per chunk, with the number of workers capped at
// DefaultMaxWorkers (or the MapN argument) regardless of input size.
//
// The transform must be stateless and safe to invoke from multiple
// goroutines concurrently. A transform that panics aborts the whole
// batch: the panic is recovered in the worker and rethrown in the
// calling goroutine, and no result slice is returned.
//
// Parmap provides the following subpackage:
//
// parmap/sequential provides a sequential implementation of the
// mapping functions, for testing and debugging.
package parmap
