package predictionio

import (
	"fmt"

	"github.com/klevunin/incubator-predictionio/engine"
)

// PrepareOperation - A generic function for transforming one training data
// element into one prepared data element. Must be pure with respect to stage
// parameters: the same element always yields the same result, with no state
// shared across elements, so the engine may run it concurrently for distinct
// elements and re-execute it on failure.
type PrepareOperation[TD, PD any] func(td TD) (PD, error)

// DatasetPrepareOperation - A generic function for transforming an entire
// training dataset handle into a prepared dataset handle. Receives the engine
// Context and is free to perform arbitrary engine operations; determinism is
// the author's responsibility.
type DatasetPrepareOperation[TD, PD any] func(pctx engine.Context, td engine.Dataset[TD]) (engine.Dataset[PD], error)

// safePrepareOperation wraps a PrepareOperation such that panics are recovered
// and nice error messages are constructed
func safePrepareOperation[TD, PD any](prepareOp PrepareOperation[TD, PD]) PrepareOperation[TD, PD] {
	return func(td TD) (pd PD, err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Prepare Panic: %w", anErr)
				} else {
					err = fmt.Errorf("Prepare Panic: %v", r)
				}
			}
		}()
		return prepareOp(td)
	}
}

// safeDatasetPrepareOperation wraps a DatasetPrepareOperation such that panics
// are recovered and nice error messages are constructed
func safeDatasetPrepareOperation[TD, PD any](prepareOp DatasetPrepareOperation[TD, PD]) DatasetPrepareOperation[TD, PD] {
	return func(pctx engine.Context, td engine.Dataset[TD]) (pd engine.Dataset[PD], err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Prepare Panic: %w", anErr)
				} else {
					err = fmt.Errorf("Prepare Panic: %v", r)
				}
			}
		}()
		return prepareOp(pctx, td)
	}
}
