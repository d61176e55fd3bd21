package report_test

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/keilerkonzept/countmin/internal/report"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func TestRelativeError(t *testing.T) {
	require.Equal(t, 0.0, report.RelativeError(5, 5))
	require.Equal(t, 1.5, report.RelativeError(10, 4))
	require.Equal(t, 0.0, report.RelativeError(0, 0))
	require.True(t, math.IsInf(report.RelativeError(3, 0), 1))
}

func TestDistribution(t *testing.T) {
	d := report.NewDistribution([]float64{4, 0, 2, 1, 3})

	if diff := cmp.Diff(report.Distribution{0, 1, 2, 3, 4}, d); diff != "" {
		t.Error(diff)
	}
	require.Equal(t, 2.0, d.Median())
	require.Equal(t, 0.0, d.Min())
	require.Equal(t, 4.0, d.Max())
	require.Equal(t, 2.0, d.Mean())
	require.Equal(t, 3.0, d.Quantile(0.75))
	require.Equal(t, 4.0, d.Quantile(7))
	require.True(t, d.NonNegative())

	require.False(t, report.NewDistribution([]float64{0.5, -0.1}).NonNegative())
}

func TestDistribution_Empty(t *testing.T) {
	var d report.Distribution
	require.True(t, math.IsNaN(d.Median()))
	require.True(t, math.IsNaN(d.Mean()))
	require.True(t, d.NonNegative())

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, d))
	require.Equal(t, "[]\n", buf.String())
}

func TestSummarize(t *testing.T) {
	values := make([]float64, 101)
	for i := range values {
		values[i] = float64(100 - i)
	}
	expected := report.Summary{Count: 101, Min: 0, Median: 50, P90: 90, P99: 99, Mean: 50, Max: 100}
	if diff := cmp.Diff(expected, report.NewDistribution(values).Summarize()); diff != "" {
		t.Error(diff)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, report.Distribution{0, 0.25, 3}))
	require.JSONEq(t, "[0, 0.25, 3]", buf.String())

	require.Error(t, report.WriteJSON(&buf, report.Distribution{math.Inf(1)}))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	d := report.Distribution{0, 0.5, 1}

	plain := filepath.Join(dir, "are.json")
	require.NoError(t, report.WriteFile(plain, d, false))
	data, err := os.ReadFile(plain)
	require.NoError(t, err)
	var got []float64
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff([]float64(d), got); diff != "" {
		t.Error(diff)
	}

	compressed := filepath.Join(dir, "are.json.gz")
	require.NoError(t, report.WriteFile(compressed, d, true))
	f, err := os.Open(compressed)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	got = nil
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	if diff := cmp.Diff([]float64(d), got); diff != "" {
		t.Error(diff)
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	err := report.WriteFile(filepath.Join(t.TempDir(), "missing", "are.json"), nil, false)
	require.Error(t, err)
}
