package predictionio

import (
	"github.com/klevunin/incubator-predictionio/engine"
)

// A Preparator transforms raw training data into a form ready for model
// training. It is the single seam between the orchestrator and the two
// execution strategies: the orchestrator holds a Preparator and always calls
// PrepareBase, never branching on which variant it holds, so pipeline authors
// can swap a LocalPreparator for a ParallelPreparator (or vice versa) without
// touching orchestration code.
type Preparator[TD, PD any] interface {
	// PrepareBase transforms a training dataset handle into a prepared
	// dataset handle. Failures surface unchanged to the caller: this layer
	// performs no retry and considers no partial output valid.
	PrepareBase(pctx engine.Context, td engine.Dataset[TD]) (engine.Dataset[PD], error)
}
