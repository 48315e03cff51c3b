package cmd

import (
	"bufio"
	"os"
	"path"
	"strconv"
	"testing"

	"randgen/numgen"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

func TestChunkSizes(t *testing.T) {
	t.Parallel()

	data := []struct {
		name  string
		count int
		split int
		want  []int
	}{
		{name: "exact", count: 3000, split: 1000, want: []int{1000, 1000, 1000}},
		{name: "remainder", count: 2500, split: 1000, want: []int{1000, 1000, 500}},
		{name: "single-file", count: 10, split: 1000, want: []int{10}},
		{name: "one-per-file", count: 3, split: 1, want: []int{1, 1, 1}},
	}

	for _, item := range data {
		t.Run(item.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, item.want, chunkSizes(item.count, item.split))
		})
	}
}

func TestRunBulkWritesAllValues(t *testing.T) {
	bulkFlags = BulkFlags{
		Kind:        "int",
		Min:         1,
		Max:         6,
		Count:       2500,
		SplitLines:  1000,
		Output:      t.TempDir(),
		Concurrency: 2,
	}

	require.NoError(t, runBulk())

	entries, err := os.ReadDir(bulkFlags.OutputDirectory)
	require.NoError(t, err)

	total := 0
	manifestSeen := false

	for _, entry := range entries {
		if entry.Name() == "manifest.toml" {
			manifestSeen = true
			continue
		}

		f, err := os.Open(path.Join(bulkFlags.OutputDirectory, entry.Name()))
		require.NoError(t, err)

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			v, err := strconv.ParseInt(scanner.Text(), 10, 64)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, int64(1))
			require.LessOrEqual(t, v, int64(6))
			total++
		}
		require.NoError(t, scanner.Err())
		require.NoError(t, f.Close())
	}

	require.True(t, manifestSeen)
	require.Equal(t, bulkFlags.Count, total)

	var manifest struct {
		Generator struct {
			Kind  string  `toml:"kind"`
			Min   float64 `toml:"min"`
			Max   float64 `toml:"max"`
			Count int     `toml:"count"`
		} `toml:"generator"`
		Layout struct {
			LinesPerFile int `toml:"lines-per-file"`
			Files        int `toml:"files"`
		} `toml:"layout"`
	}

	b, err := os.ReadFile(path.Join(bulkFlags.OutputDirectory, "manifest.toml"))
	require.NoError(t, err)
	require.NoError(t, toml.Unmarshal(b, &manifest))
	require.Equal(t, "int", manifest.Generator.Kind)
	require.Equal(t, 2500, manifest.Generator.Count)
	require.Equal(t, 3, manifest.Layout.Files)
	require.Equal(t, 1000, manifest.Layout.LinesPerFile)
}

func TestRunBulkInvalidInputs(t *testing.T) {
	base := BulkFlags{
		Kind:        "int",
		Min:         1,
		Max:         6,
		Count:       100,
		SplitLines:  10,
		Output:      t.TempDir(),
		Concurrency: 2,
	}

	bulkFlags = base
	bulkFlags.Min, bulkFlags.Max = 6, 1
	require.ErrorIs(t, runBulk(), numgen.ErrInvalidRange)

	bulkFlags = base
	bulkFlags.Count = 0
	require.ErrorIs(t, runBulk(), numgen.ErrInvalidArgument)

	bulkFlags = base
	bulkFlags.Kind = "bool"
	require.ErrorIs(t, runBulk(), numgen.ErrInvalidArgument)
}
