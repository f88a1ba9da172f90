package engine

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/pierrec/lz4"

	"github.com/klevunin/incubator-predictionio/logging"
)

// BroadcastSoftLimit is the advisory upper bound, in compressed bytes, on a
// dataset intended for broadcast. Exceeding it is logged as a warning, never
// rejected: the bound exists so that oversized broadcasts are visible, not to
// fail otherwise-correct pipelines.
const BroadcastSoftLimit = 16 * 1024

// SerializeDataset writes a gob-encoded, lz4-compressed snapshot of a Dataset
// to w, preserving partition boundaries
func SerializeDataset[T any](in Dataset[T], w io.Writer) error {
	partitions, err := CollectPartitions(in)
	if err != nil {
		return err
	}
	compressor := lz4.NewWriter(w)
	if err := gob.NewEncoder(compressor).Encode(partitions); err != nil {
		return err
	}
	return compressor.Close()
}

// DeserializeDataset reconstructs a Dataset from a snapshot written by
// SerializeDataset. The reconstructed Dataset has the same partition structure
// and element order as the original, under a fresh ID.
func DeserializeDataset[T any](r io.Reader) (Dataset[T], error) {
	var partitions [][]T
	if err := gob.NewDecoder(lz4.NewReader(r)).Decode(&partitions); err != nil {
		return nil, err
	}
	return CreateDataset(partitions), nil
}

// Broadcast materializes a Dataset into a compact serialized blob suitable for
// redistribution to every worker later in a pipeline. Blobs larger than
// BroadcastSoftLimit are logged as a warning.
func Broadcast[T any](pctx Context, in Dataset[T]) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeDataset(in, &buf); err != nil {
		return nil, err
	}
	if buf.Len() > BroadcastSoftLimit {
		pctx.Logger().Logf(logging.WarnLevel, "broadcast of dataset %s is %d bytes (soft limit %d)", in.ID(), buf.Len(), BroadcastSoftLimit)
	}
	return buf.Bytes(), nil
}
