// Package memory provides a Source over data already resident in memory,
// useful for small pipelines and as a fixture in tests.
package memory

import (
	"github.com/klevunin/incubator-predictionio/engine"
)

// Source is a buffer of training data elements which will be partitioned by
// the engine when read
type Source[TD any] struct {
	elems      []TD
	partitions [][]TD
}

// CreateSource returns a Source over elems. Partitioning is left to the
// engine's target partition size.
func CreateSource[TD any](elems []TD) *Source[TD] {
	return &Source[TD]{elems: elems}
}

// CreatePartitionedSource returns a Source over pre-split partitions, which
// are handed to the engine exactly as given
func CreatePartitionedSource[TD any](partitions [][]TD) *Source[TD] {
	return &Source[TD]{partitions: partitions}
}

// ReadTraining produces a Dataset over this Source's elements
func (s *Source[TD]) ReadTraining(pctx engine.Context) (engine.Dataset[TD], error) {
	if s.partitions != nil {
		return engine.CreateDataset(s.partitions), nil
	}
	return engine.Parallelize(pctx, s.elems), nil
}
