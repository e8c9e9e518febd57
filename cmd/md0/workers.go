package main

import (
	"fmt"
	"io"
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md0/internal/config"
)

// cpuDivisor leaves half the processors to the rest of the system.
const cpuDivisor = 2

// resolveWorkers determines the number of conversion workers.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < 1 {
		return 1
	}
	if n > config.MaxWorkers {
		return config.MaxWorkers
	}
	return n
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota, logging the
// change to w when verbose.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(w io.Writer, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// wantsVerbose reports whether args carry -v or --verbose before any "--".
func wantsVerbose(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}
