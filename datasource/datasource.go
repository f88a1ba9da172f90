// Package datasource defines the contract between a pipeline's data-source
// stage and the stages downstream of it. A preparation stage is blind to how
// its training data was produced; it only sees the Dataset handle a Source
// yields.
package datasource

import (
	"github.com/klevunin/incubator-predictionio/engine"
)

// A Source produces the training data for one pipeline run. ReadTraining is
// invoked once per run by the orchestrator; the shape of the returned Dataset
// (its partitioning) is decided by the Source together with the engine.
type Source[TD any] interface {
	ReadTraining(pctx engine.Context) (engine.Dataset[TD], error)
}
