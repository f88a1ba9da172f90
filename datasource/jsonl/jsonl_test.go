package jsonl

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klevunin/incubator-predictionio/engine"
	perrors "github.com/klevunin/incubator-predictionio/errors"
	"github.com/klevunin/incubator-predictionio/logging"
)

type event struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

func testContext(partitionSize int) engine.Context {
	return engine.CreateContext(context.Background(), &engine.ContextConf{
		NumWorkers:          2,
		TargetPartitionSize: partitionSize,
		LogLevel:            logging.ErrorLevel,
	})
}

func TestJSONLSource(t *testing.T) {
	data := strings.Join([]string{
		`{"name": "view", "index": 1}`,
		`{"name": "buy", "index": 2}`,
		`{"name": "view", "index": 3}`,
		`{"name": "rate", "index": 4}`,
	}, "\n")

	source := CreateSource[event](strings.NewReader(data), nil)
	td, err := source.ReadTraining(testContext(2))
	require.Nil(t, err)
	require.Equal(t, 2, td.NumPartitions())

	elems, err := engine.Collect(td)
	require.Nil(t, err)
	require.Equal(t, []event{
		{Name: "view", Index: 1},
		{Name: "buy", Index: 2},
		{Name: "view", Index: 3},
		{Name: "rate", Index: 4},
	}, elems)
}

func TestJSONLSourceSkipsHeaderLines(t *testing.T) {
	data := "exported 2026-08-30\n" + `{"name": "view", "index": 1}`

	source := CreateSource[event](strings.NewReader(data), &SourceConf{HeaderLines: 1})
	td, err := source.ReadTraining(testContext(128))
	require.Nil(t, err)

	elems, err := engine.Collect(td)
	require.Nil(t, err)
	require.Equal(t, []event{{Name: "view", Index: 1}}, elems)
}

func TestJSONLSourceMalformedLine(t *testing.T) {
	data := `{"name": "view", "index": 1}` + "\n{not valid}"

	source := CreateSource[event](strings.NewReader(data), nil)
	_, err := source.ReadTraining(testContext(128))
	require.NotNil(t, err)
	var herr perrors.HydrationError
	require.True(t, stderrors.As(err, &herr))
}

func TestJSONLSourceMissingMandatoryField(t *testing.T) {
	source := CreateSource[event](strings.NewReader(`{"name": "view"}`), nil)
	_, err := source.ReadTraining(testContext(128))
	require.NotNil(t, err)
	var herr perrors.HydrationError
	require.True(t, stderrors.As(err, &herr))
	require.Contains(t, herr.Reason, "index")
}
