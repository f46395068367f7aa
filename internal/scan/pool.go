package scan

import (
	"runtime"
	"sync"
)

// Pool fans paths out to a fixed pool of worker goroutines and blocks
// until every path has been handled. fn must be safe for concurrent use.
// No ordering is guaranteed across files.
func Pool(paths []string, workers int, fn func(path string)) {
	if workers < 1 {
		workers = runtime.NumCPU() * 2
	}

	fileChan := make(chan string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range fileChan {
				fn(path)
			}
		}()
	}

	for _, path := range paths {
		fileChan <- path
	}
	close(fileChan)

	wg.Wait()
}
