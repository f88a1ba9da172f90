package predictionio

// Params is a stage configuration value, supplied by the pipeline author when a
// stage is constructed and owned by the stage for the lifetime of the run.
// Params values are pure data: no mutable state, equality by field value, and
// they must round-trip through JSON so the orchestrator can checkpoint and
// re-submit jobs.
type Params interface{}

// EmptyParams is the Params value for stages which take no configuration
type EmptyParams struct{}
