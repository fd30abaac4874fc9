// Command evens maps an evenness predicate over two integer sequences,
// one short enough to stay in the calling goroutine and one long enough
// to fan out across workers. Run with --verbose to watch the mapper's
// scheduling decisions.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"

	"github.com/parmap/parmap"
)

var (
	threshold  = flag.Int("threshold", parmap.DefaultThreshold, "input length at which mapping moves off the calling goroutine")
	maxWorkers = flag.Int("max-workers", parmap.DefaultMaxWorkers, "upper bound on concurrent workers")
	verbose    = flag.BoolP("verbose", "v", false, "print mapper diagnostics")
)

func isEven(n int) bool {
	return n%2 == 0
}

func main() {
	flag.Parse()

	if *verbose {
		parmap.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger())
	}

	small := []int{1, 2, 3, 4}
	fmt.Println(parmap.MapN(small, *threshold, *maxWorkers, isEven))

	large := lo.RangeFrom(1, 34)
	fmt.Println(parmap.MapN(large, *threshold, *maxWorkers, isEven))
}
