package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork runs do for every index in [0, workSize) across routines goroutines.
// Indices are handed out through a shared counter, so each index is processed exactly once.
// init is called sequentially for every routine before any work starts, and may be nil.
// routines <= 0 selects runtime.NumCPU().
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if workSize == 0 {
		return nil
	}

	if routines <= 0 {
		routines = runtime.NumCPU()
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	var counter atomic.Uint64

	if init != nil {
		for routineIndex := 0; routineIndex < routines; routineIndex++ {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var eg errgroup.Group

	for routineIndex := 0; routineIndex < routines; routineIndex++ {
		eg.Go(func() error {
			for {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					return err
				}
			}
		})
	}
	return eg.Wait()
}
