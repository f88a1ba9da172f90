// Package predictionio contains the preparation stage contracts of a machine
// learning pipeline: the Preparator interface the orchestrator drives, its
// local and parallel implementations, and the parameter types which configure
// them. This root package is an excellent overview of how preparation stages
// plug into the rest of a pipeline.
package predictionio
