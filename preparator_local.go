package predictionio

import (
	"github.com/klevunin/incubator-predictionio/engine"
	"github.com/klevunin/incubator-predictionio/errors"
)

// LocalPreparator applies an element-level transform independently to every
// element of the training dataset, producing a prepared dataset with the same
// partition structure and the same in-partition element order. The engine
// decides which elements run where and how many partitions exist; a pure
// transform therefore yields the same output for any partitioning of the same
// elements.
type LocalPreparator[TD, PD any] struct {
	params  Params
	prepare PrepareOperation[TD, PD]
}

// CreateLocalPreparator returns a LocalPreparator applying fn to each element
func CreateLocalPreparator[TD, PD any](params Params, fn PrepareOperation[TD, PD]) *LocalPreparator[TD, PD] {
	return &LocalPreparator[TD, PD]{
		params:  params,
		prepare: safePrepareOperation(fn),
	}
}

// Params returns the configuration this preparator was constructed with
func (p *LocalPreparator[TD, PD]) Params() Params {
	return p.params
}

// PrepareBase maps the element-level transform over every element of td. A
// single failing element fails the whole stage - no partial output is valid.
func (p *LocalPreparator[TD, PD]) PrepareBase(pctx engine.Context, td engine.Dataset[TD]) (engine.Dataset[PD], error) {
	pd, err := engine.Map(pctx, td, p.prepare)
	if err != nil {
		return nil, errors.StageExecutionError{Stage: "local", Err: err}
	}
	return pd, nil
}
