package engine

import (
	uuid "github.com/gofrs/uuid"

	"github.com/klevunin/incubator-predictionio/errors"
)

// A Dataset is an opaque handle to data spread across the partitions of an
// execution engine. Stages never mutate a Dataset in place - every engine
// primitive produces a new handle. Partition returns the elements of one
// partition in their stable order; callers must treat the returned slice as
// read-only.
type Dataset[T any] interface {
	ID() string                       // ID retrieves the ID of this Dataset
	NumPartitions() int               // NumPartitions retrieves the number of partitions in this Dataset
	Partition(idx int) ([]T, error)   // Partition retrieves the elements of a specific partition
}

// PartitionedDataset is the reference engine's in-memory Dataset
type PartitionedDataset[T any] struct {
	id         string
	partitions [][]T
}

// CreateDataset builds a Dataset directly from pre-split partitions. Partition
// boundaries and element order are preserved exactly as given.
func CreateDataset[T any](partitions [][]T) *PartitionedDataset[T] {
	id, err := uuid.NewV4()
	if err != nil {
		// NewV4 only fails when the system entropy source does
		panic(err)
	}
	return &PartitionedDataset[T]{id: id.String(), partitions: partitions}
}

// Parallelize splits elems into partitions of at most the Context's target
// partition size, preserving element order across partition boundaries
func Parallelize[T any](pctx Context, elems []T) *PartitionedDataset[T] {
	size := pctx.TargetPartitionSize()
	partitions := make([][]T, 0, len(elems)/size+1)
	for len(elems) > size {
		partitions = append(partitions, elems[:size:size])
		elems = elems[size:]
	}
	partitions = append(partitions, elems)
	return CreateDataset(partitions)
}

// ID retrieves the ID of this Dataset
func (d *PartitionedDataset[T]) ID() string {
	return d.id
}

// NumPartitions retrieves the number of partitions in this Dataset
func (d *PartitionedDataset[T]) NumPartitions() int {
	return len(d.partitions)
}

// Partition retrieves the elements of a specific partition
func (d *PartitionedDataset[T]) Partition(idx int) ([]T, error) {
	if idx < 0 || idx >= len(d.partitions) {
		return nil, errors.PartitionOutOfRangeError{Index: idx, NumPartitions: len(d.partitions)}
	}
	return d.partitions[idx], nil
}

// Collect flattens a Dataset into a single slice, concatenating partitions in
// partition order. Intended for drivers and tests, not for stage code.
func Collect[T any](in Dataset[T]) ([]T, error) {
	var out []T
	for i := 0; i < in.NumPartitions(); i++ {
		elems, err := in.Partition(i)
		if err != nil {
			return nil, err
		}
		out = append(out, elems...)
	}
	return out, nil
}

// CollectPartitions returns a Dataset's partitions as nested slices, preserving
// partition boundaries. Intended for drivers and tests.
func CollectPartitions[T any](in Dataset[T]) ([][]T, error) {
	out := make([][]T, in.NumPartitions())
	for i := 0; i < in.NumPartitions(); i++ {
		elems, err := in.Partition(i)
		if err != nil {
			return nil, err
		}
		out[i] = elems
	}
	return out, nil
}
