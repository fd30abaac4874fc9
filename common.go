package parmap

// A Transform maps a single input element to an output element.
//
// Map invokes the same Transform from multiple goroutines concurrently,
// so it must be stateless: no side effects, and no captured state that
// any invocation mutates. This is a precondition the caller must
// enforce; Map cannot verify it.
type Transform[T, R any] func(T) R

const (
	// DefaultThreshold is the input length below which Map applies the
	// transform in the calling goroutine instead of fanning out.
	DefaultThreshold = 8

	// DefaultMaxWorkers bounds the number of worker goroutines a single
	// Map call spawns, regardless of input size. Larger inputs get
	// larger chunks per worker rather than more workers.
	DefaultMaxWorkers = 64
)
