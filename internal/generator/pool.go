package generator

import (
	"context"
	"errors"
	"sync"
)

const defaultWorkers = 4

// runPool calls fn for every index in [0, total) on up to workers goroutines.
// Cancellation stops handing out indexes and is reported ahead of task
// errors; task errors are joined.
func runPool(ctx context.Context, workers, total int, fn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	workers = min(workers, total)

	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexCh {
				if err := fn(idx); err != nil {
					errCh <- err
				}
			}
		}()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	if err := ctx.Err(); err != nil {
		return err
	}
	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
