// Package engine defines the seam between preparation stages and the execution
// engine which runs them: a Context carrying execution configuration, an opaque
// Dataset handle over partitioned data, and the two primitives stages rely on -
// mapping a function over every element of a partitioned dataset, and running a
// closure against a whole dataset handle. An in-process reference engine backs
// the same contracts for tests and single-node runs.
package engine
