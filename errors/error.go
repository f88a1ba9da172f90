package errors

import (
	"fmt"
)

// HydrationError occurs when a text payload cannot be decoded into the target type.
// Hydration failures are always synchronous and local, and are never retried.
type HydrationError struct {
	// TypeName is the name of the target type the payload was decoded against
	TypeName string
	// Reason describes why the payload did not conform
	Reason string
}

// Error returns a textual representation of this HydrationError
func (e HydrationError) Error() string {
	return fmt.Sprintf("Unable to hydrate value of type %s: %s", e.TypeName, e.Reason)
}

// StageExecutionError occurs when an author-supplied prepare function fails during
// either per-element or whole-dataset execution. It is propagated unchanged to the
// stage's caller - this layer performs no retry and no partial-result salvage.
type StageExecutionError struct {
	// Stage names the preparator variant which failed
	Stage string
	// Err is the originating failure
	Err error
}

// Error returns a textual representation of this StageExecutionError
func (e StageExecutionError) Error() string {
	return fmt.Sprintf("%s preparator failed: %v", e.Stage, e.Err)
}

// Unwrap returns the originating failure
func (e StageExecutionError) Unwrap() error {
	return e.Err
}

// UnknownTypeError occurs when a decoder Registry has no decoder for a type identifier
type UnknownTypeError struct {
	// TypeName is the unregistered type identifier
	TypeName string
}

// Error returns a textual representation of this UnknownTypeError
func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("No decoder registered for type %s", e.TypeName)
}

// EmptyDatasetError occurs when an operation requiring at least one element is
// applied to an empty Dataset
type EmptyDatasetError struct {
	// DatasetID is the ID of the empty Dataset
	DatasetID string
}

// Error returns a textual representation of this EmptyDatasetError
func (e EmptyDatasetError) Error() string {
	return fmt.Sprintf("Dataset %s contains no elements", e.DatasetID)
}

// PartitionOutOfRangeError occurs when a partition index is outside a Dataset's bounds
type PartitionOutOfRangeError struct {
	// Index is the requested partition index
	Index int
	// NumPartitions is the number of partitions in the Dataset
	NumPartitions int
}

// Error returns a textual representation of this PartitionOutOfRangeError
func (e PartitionOutOfRangeError) Error() string {
	return fmt.Sprintf("Partition index %d out of range (dataset has %d partitions)", e.Index, e.NumPartitions)
}
