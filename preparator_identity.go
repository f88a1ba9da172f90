package predictionio

import (
	"github.com/klevunin/incubator-predictionio/datasource"
	"github.com/klevunin/incubator-predictionio/engine"
)

// IdentityPreparator returns its training data unchanged. It is the default
// when a pipeline declares no preparation step, and the conformance reference
// for the Preparator contract: a correct pass-through implementation must be
// indistinguishable from it.
type IdentityPreparator[TD any] struct{}

// CreateIdentityPreparator returns the IdentityPreparator for element type TD
func CreateIdentityPreparator[TD any]() *IdentityPreparator[TD] {
	return &IdentityPreparator[TD]{}
}

// Params returns EmptyParams - the identity stage takes no configuration
func (p *IdentityPreparator[TD]) Params() Params {
	return EmptyParams{}
}

// PrepareBase returns td unchanged
func (p *IdentityPreparator[TD]) PrepareBase(pctx engine.Context, td engine.Dataset[TD]) (engine.Dataset[TD], error) {
	return td, nil
}

// IdentityPreparatorFor resolves the IdentityPreparator specialized to a data
// source's declared element type, so a pipeline with no preparation step can
// be auto-wired without the author naming the type twice
func IdentityPreparatorFor[TD any](_ datasource.Source[TD]) *IdentityPreparator[TD] {
	return CreateIdentityPreparator[TD]()
}
