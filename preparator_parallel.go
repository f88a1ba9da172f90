package predictionio

import (
	"github.com/klevunin/incubator-predictionio/engine"
	"github.com/klevunin/incubator-predictionio/errors"
)

// ParallelPreparator hands the entire training dataset handle to the
// author-supplied transform, which may perform arbitrary engine operations
// (aggregations, repartitions, joins) to produce the prepared dataset. This is
// the escape hatch for preparation logic which cannot be expressed as an
// independent per-element map, such as global normalization. No shape or
// determinism guarantee is imposed; the produced handle should stay small
// enough to broadcast later in the pipeline, which the engine warns about but
// does not enforce.
type ParallelPreparator[TD, PD any] struct {
	params  Params
	prepare DatasetPrepareOperation[TD, PD]
}

// CreateParallelPreparator returns a ParallelPreparator applying fn to the
// whole dataset
func CreateParallelPreparator[TD, PD any](params Params, fn DatasetPrepareOperation[TD, PD]) *ParallelPreparator[TD, PD] {
	return &ParallelPreparator[TD, PD]{
		params:  params,
		prepare: safeDatasetPrepareOperation(fn),
	}
}

// Params returns the configuration this preparator was constructed with
func (p *ParallelPreparator[TD, PD]) Params() Params {
	return p.params
}

// PrepareBase runs the whole-dataset transform. From the caller's point of
// view this is one synchronous invocation; any parallelism happens inside the
// engine operations the transform uses.
func (p *ParallelPreparator[TD, PD]) PrepareBase(pctx engine.Context, td engine.Dataset[TD]) (engine.Dataset[PD], error) {
	pd, err := p.prepare(pctx, td)
	if err != nil {
		return nil, errors.StageExecutionError{Stage: "parallel", Err: err}
	}
	return pd, nil
}
