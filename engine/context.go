package engine

import (
	"context"
	"runtime"

	"github.com/klevunin/incubator-predictionio/logging"
)

// A Context is a Context enhanced with the execution configuration a stage needs
// while running against this engine
type Context interface {
	context.Context
	NumWorkers() int            // NumWorkers returns the number of concurrent workers partition work is fanned out to
	TargetPartitionSize() int   // TargetPartitionSize returns the intended maximum number of elements per outgoing partition
	IgnoreElementErrors() bool  // IgnoreElementErrors returns true iff element-level transform failures are skipped rather than fatal
	Logger() *logging.Logger    // Logger returns the logger for this engine run
}

// ContextConf configures an engine Context. Zero values select defaults.
type ContextConf struct {
	NumWorkers          int  // The number of concurrent workers. Defaults to the number of CPUs.
	TargetPartitionSize int  // The maximum number of elements per Partition. Defaults to 128.
	IgnoreElementErrors bool // Skip elements whose transform fails, instead of failing the whole operation. Defaults to false.
	LogLevel            int  // The minimum level of log messages to emit. Defaults to logging.InfoLevel.
}

type engineContext struct {
	context.Context
	conf   *ContextConf
	logger *logging.Logger
}

// CreateContext returns an engine Context wrapping ctx
func CreateContext(ctx context.Context, conf *ContextConf) Context {
	if conf == nil {
		conf = &ContextConf{}
	}
	if conf.NumWorkers == 0 {
		conf.NumWorkers = runtime.NumCPU()
	}
	if conf.TargetPartitionSize == 0 {
		conf.TargetPartitionSize = 128
	}
	if conf.LogLevel == 0 {
		conf.LogLevel = logging.InfoLevel
	}
	return &engineContext{
		Context: ctx,
		conf:    conf,
		logger:  logging.NewLogger(conf.LogLevel),
	}
}

func (c *engineContext) NumWorkers() int {
	return c.conf.NumWorkers
}

func (c *engineContext) TargetPartitionSize() int {
	return c.conf.TargetPartitionSize
}

func (c *engineContext) IgnoreElementErrors() bool {
	return c.conf.IgnoreElementErrors
}

func (c *engineContext) Logger() *logging.Logger {
	return c.logger
}
