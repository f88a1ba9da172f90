package engine

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	multierror "github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/klevunin/incubator-predictionio/errors"
	"github.com/klevunin/incubator-predictionio/logging"
)

// Map applies fn independently to every element of in, producing a Dataset with
// the same partition structure: element i of output partition p is fn applied
// to element i of input partition p. Partitions are processed concurrently by
// up to NumWorkers workers, so fn must be safe to call concurrently for
// distinct elements.
//
// A failing element aborts the whole operation unless the Context is configured
// to ignore element errors, in which case failing elements are dropped from the
// output and their failures logged as a single aggregate warning per partition.
func Map[T, P any](pctx Context, in Dataset[T], fn func(elem T) (P, error)) (Dataset[P], error) {
	out := make([][]P, in.NumPartitions())
	err := eachPartition(pctx, in.NumPartitions(), func(idx int) error {
		elems, err := in.Partition(idx)
		if err != nil {
			return err
		}
		mapped := make([]P, 0, len(elems))
		var skipped *multierror.Error
		for _, elem := range elems {
			p, err := fn(elem)
			if err != nil {
				if pctx.IgnoreElementErrors() {
					skipped = multierror.Append(skipped, err)
					continue
				}
				return err
			}
			mapped = append(mapped, p)
		}
		if skipped != nil {
			pctx.Logger().Logf(logging.WarnLevel, "partition %d: skipped %d element(s): %v", idx, skipped.Len(), skipped)
		}
		out[idx] = mapped
		return nil
	})
	if err != nil {
		return nil, err
	}
	return CreateDataset(out), nil
}

// Filter produces a Dataset retaining the elements of in for which fn returns
// true, preserving partition structure and in-partition order
func Filter[T any](pctx Context, in Dataset[T], fn func(elem T) (bool, error)) (Dataset[T], error) {
	out := make([][]T, in.NumPartitions())
	err := eachPartition(pctx, in.NumPartitions(), func(idx int) error {
		elems, err := in.Partition(idx)
		if err != nil {
			return err
		}
		kept := make([]T, 0, len(elems))
		for _, elem := range elems {
			keep, err := fn(elem)
			if err != nil {
				return err
			}
			if keep {
				kept = append(kept, elem)
			}
		}
		out[idx] = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return CreateDataset(out), nil
}

// Reduce folds every element of in into a single value using fn, which merges
// its right argument into its left. fn must be associative and commutative:
// partitions are reduced concurrently and partial results merged in partition
// order. Reducing an empty Dataset fails with an EmptyDatasetError.
func Reduce[T any](pctx Context, in Dataset[T], fn func(lelem T, relem T) (T, error)) (T, error) {
	var zero T
	partials := make([]*T, in.NumPartitions())
	err := eachPartition(pctx, in.NumPartitions(), func(idx int) error {
		elems, err := in.Partition(idx)
		if err != nil {
			return err
		}
		if len(elems) == 0 {
			return nil
		}
		acc := elems[0]
		for _, elem := range elems[1:] {
			if acc, err = fn(acc, elem); err != nil {
				return err
			}
		}
		partials[idx] = &acc
		return nil
	})
	if err != nil {
		return zero, err
	}
	var acc *T
	for _, partial := range partials {
		if partial == nil {
			continue
		}
		if acc == nil {
			acc = partial
			continue
		}
		merged, err := fn(*acc, *partial)
		if err != nil {
			return zero, err
		}
		acc = &merged
	}
	if acc == nil {
		return zero, errors.EmptyDatasetError{DatasetID: in.ID()}
	}
	return *acc, nil
}

// Count returns the total number of elements in a Dataset
func Count[T any](in Dataset[T]) (int, error) {
	total := 0
	for i := 0; i < in.NumPartitions(); i++ {
		elems, err := in.Partition(i)
		if err != nil {
			return 0, err
		}
		total += len(elems)
	}
	return total, nil
}

// Repartition redistributes the elements of in across numPartitions partitions
// by hashing the key fn derives for each element. Elements with equal keys land
// in the same partition, and relative input order is preserved among elements
// assigned to the same partition.
func Repartition[T any](pctx Context, in Dataset[T], numPartitions int, keyfn func(elem T) ([]byte, error)) (Dataset[T], error) {
	if numPartitions < 1 {
		return nil, fmt.Errorf("cannot repartition into %d partitions", numPartitions)
	}
	out := make([][]T, numPartitions)
	for i := 0; i < in.NumPartitions(); i++ {
		elems, err := in.Partition(i)
		if err != nil {
			return nil, err
		}
		for _, elem := range elems {
			key, err := keyfn(elem)
			if err != nil {
				return nil, err
			}
			bucket := xxhash.Sum64(key) % uint64(numPartitions)
			out[bucket] = append(out[bucket], elem)
		}
	}
	return CreateDataset(out), nil
}

// eachPartition fans partition work out to NumWorkers workers and waits for the
// first failure or full completion
func eachPartition(pctx Context, numPartitions int, work func(idx int) error) error {
	numWorkers := pctx.NumWorkers()
	if numWorkers > numPartitions {
		numWorkers = numPartitions
	}
	indices := make(chan int, numPartitions)
	for i := 0; i < numPartitions; i++ {
		indices <- i
	}
	close(indices)
	g, gctx := errgroup.WithContext(pctx)
	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for idx := range indices {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if err := work(idx); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
