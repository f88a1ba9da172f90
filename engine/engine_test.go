package engine

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	perrors "github.com/klevunin/incubator-predictionio/errors"
	"github.com/klevunin/incubator-predictionio/logging"
)

func testContext(conf *ContextConf) Context {
	if conf == nil {
		conf = &ContextConf{}
	}
	if conf.NumWorkers == 0 {
		conf.NumWorkers = 4
	}
	if conf.LogLevel == 0 {
		conf.LogLevel = logging.ErrorLevel
	}
	return CreateContext(context.Background(), conf)
}

func TestParallelizeSplitsByTargetPartitionSize(t *testing.T) {
	pctx := testContext(&ContextConf{TargetPartitionSize: 2})
	ds := Parallelize(pctx, []int{1, 2, 3, 4, 5})

	parts, err := CollectPartitions[int](ds)
	require.Nil(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, parts)
}

func TestPartitionOutOfRange(t *testing.T) {
	ds := CreateDataset([][]int{{1}})
	_, err := ds.Partition(3)
	require.NotNil(t, err)
	var perr perrors.PartitionOutOfRangeError
	require.True(t, stderrors.As(err, &perr))
	require.Equal(t, 3, perr.Index)
}

func TestMapPreservesPartitionStructureAndOrder(t *testing.T) {
	pctx := testContext(nil)
	in := CreateDataset([][]int{{1, 2}, {3}})

	out, err := Map(pctx, Dataset[int](in), func(x int) (int, error) {
		return x * 2, nil
	})
	require.Nil(t, err)

	parts, err := CollectPartitions(out)
	require.Nil(t, err)
	require.Equal(t, [][]int{{2, 4}, {6}}, parts)
}

func TestMapElementFailureIsFatal(t *testing.T) {
	pctx := testContext(nil)
	in := CreateDataset([][]int{{1, 2}, {3}})

	_, err := Map(pctx, Dataset[int](in), func(x int) (int, error) {
		if x == 2 {
			return 0, fmt.Errorf("bad element %d", x)
		}
		return x * 2, nil
	})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "bad element 2")
}

func TestMapIgnoreElementErrorsDropsFailures(t *testing.T) {
	pctx := testContext(&ContextConf{IgnoreElementErrors: true})
	in := CreateDataset([][]int{{1, 2}, {3}})

	out, err := Map(pctx, Dataset[int](in), func(x int) (int, error) {
		if x == 2 {
			return 0, fmt.Errorf("bad element %d", x)
		}
		return x * 2, nil
	})
	require.Nil(t, err)

	parts, err := CollectPartitions(out)
	require.Nil(t, err)
	require.Equal(t, [][]int{{2}, {6}}, parts)
}

func TestFilterPreservesOrder(t *testing.T) {
	pctx := testContext(nil)
	in := CreateDataset([][]int{{1, 2, 3, 4}, {5, 6}})

	out, err := Filter(pctx, Dataset[int](in), func(x int) (bool, error) {
		return x%2 == 0, nil
	})
	require.Nil(t, err)

	parts, err := CollectPartitions(out)
	require.Nil(t, err)
	require.Equal(t, [][]int{{2, 4}, {6}}, parts)
}

func TestReduceSum(t *testing.T) {
	pctx := testContext(nil)
	in := CreateDataset([][]int{{1, 2}, {3, 4}, {}})

	sum, err := Reduce(pctx, Dataset[int](in), func(l int, r int) (int, error) {
		return l + r, nil
	})
	require.Nil(t, err)
	require.Equal(t, 10, sum)
}

func TestReduceEmptyDataset(t *testing.T) {
	pctx := testContext(nil)
	in := CreateDataset([][]int{{}, {}})

	_, err := Reduce(pctx, Dataset[int](in), func(l int, r int) (int, error) {
		return l + r, nil
	})
	require.NotNil(t, err)
	var eerr perrors.EmptyDatasetError
	require.True(t, stderrors.As(err, &eerr))
}

func TestCount(t *testing.T) {
	in := CreateDataset([][]string{{"a", "b"}, {"c"}})
	total, err := Count[string](in)
	require.Nil(t, err)
	require.Equal(t, 3, total)
}

func TestRepartitionGroupsEqualKeys(t *testing.T) {
	pctx := testContext(nil)
	in := CreateDataset([][]string{{"a", "b", "a"}, {"c", "b"}})
	keyfn := func(s string) ([]byte, error) { return []byte(s), nil }

	out, err := Repartition(pctx, Dataset[string](in), 4, keyfn)
	require.Nil(t, err)
	require.Equal(t, 4, out.NumPartitions())

	// every element survives, and equal keys land in the same partition
	seen := map[string]int{}
	total := 0
	for i := 0; i < out.NumPartitions(); i++ {
		elems, err := out.Partition(i)
		require.Nil(t, err)
		total += len(elems)
		for _, elem := range elems {
			if prev, ok := seen[elem]; ok {
				require.Equal(t, prev, i)
			} else {
				seen[elem] = i
			}
		}
	}
	require.Equal(t, 5, total)

	// hashing is stable, so repartitioning twice yields identical layouts
	again, err := Repartition(pctx, Dataset[string](in), 4, keyfn)
	require.Nil(t, err)
	firstParts, err := CollectPartitions(out)
	require.Nil(t, err)
	againParts, err := CollectPartitions(again)
	require.Nil(t, err)
	require.Equal(t, firstParts, againParts)
}

func TestSerializeDatasetRoundTrip(t *testing.T) {
	in := CreateDataset([][]string{{"a", "b"}, {"c"}})

	var buf bytes.Buffer
	require.Nil(t, SerializeDataset[string](in, &buf))

	out, err := DeserializeDataset[string](&buf)
	require.Nil(t, err)
	parts, err := CollectPartitions(out)
	require.Nil(t, err)
	require.Equal(t, [][]string{{"a", "b"}, {"c"}}, parts)
}

func TestBroadcastRoundTrip(t *testing.T) {
	pctx := testContext(nil)
	in := CreateDataset([][]float64{{0.5, 1.5}, {2.5}})

	blob, err := Broadcast[float64](pctx, in)
	require.Nil(t, err)
	require.True(t, len(blob) > 0)

	out, err := DeserializeDataset[float64](bytes.NewReader(blob))
	require.Nil(t, err)
	parts, err := CollectPartitions(out)
	require.Nil(t, err)
	require.Equal(t, [][]float64{{0.5, 1.5}, {2.5}}, parts)
}
