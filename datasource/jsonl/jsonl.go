// Package jsonl provides a Source over JSON lines data, hydrating each line
// into a typed training data element as it is read. It is the serialization
// boundary for pipelines whose training data arrives pre-serialized rather
// than as native in-memory values.
package jsonl

import (
	"bufio"
	"io"

	"github.com/klevunin/incubator-predictionio/engine"
	"github.com/klevunin/incubator-predictionio/hydrate"
)

// SourceConf configures a JSONL Source
type SourceConf struct {
	HeaderLines   int // The number of lines to ignore from the beginning of the stream. Defaults to 0.
	MaxBufferSize int // Maximum size in bytes of the buffer used to read lines from the stream
}

// Source produces typed training data from JSON lines. Each line must hydrate
// into a TD; a line which does not fails the read with a HydrationError.
type Source[TD any] struct {
	r        io.Reader
	conf     *SourceConf
	hydrator *hydrate.Hydrator[TD]
}

// CreateSource returns a new JSONL Source reading from r. Lines are decoded
// against TD's declared fields; values which do not correspond to a field are
// ignored.
func CreateSource[TD any](r io.Reader, conf *SourceConf) *Source[TD] {
	if conf == nil {
		conf = &SourceConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Source[TD]{
		r:        r,
		conf:     conf,
		hydrator: hydrate.NewHydrator[TD](),
	}
}

// ReadTraining scans the stream line by line, hydrating each line into a TD
// and partitioning the result by the engine's target partition size. May only
// be called once per Source, as it consumes the underlying reader.
func (s *Source[TD]) ReadTraining(pctx engine.Context) (engine.Dataset[TD], error) {
	scanner := bufio.NewScanner(s.r)
	scanner.Buffer(make([]byte, 0, 4096), s.conf.MaxBufferSize)
	for i := 0; i < s.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	var elems []TD
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		elem, err := s.hydrator.Hydrate(line)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return engine.Parallelize(pctx, elems), nil
}
