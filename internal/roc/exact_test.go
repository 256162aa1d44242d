package roc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestComputeExact_WorkedExample(t *testing.T) {
	t.Parallel()

	scores := []float32{0.9, 0.8, 0.4, 0.3}
	labels := []uint8{1, 0, 1, 0}
	out := make([]Point, len(scores)+2)

	w, auc, err := ComputeExact(scores, labels, out, true)
	require.NoError(t, err)

	want := []Point{
		{Fpr: 0, Tpr: 0, Threshold: posInf},
		{Fpr: 0, Tpr: 0.5, Threshold: 0.9},
		{Fpr: 0.5, Tpr: 0.5, Threshold: 0.8},
		{Fpr: 0.5, Tpr: 1, Threshold: 0.4},
		{Fpr: 1, Tpr: 1, Threshold: 0.3},
		{Fpr: 1, Tpr: 1, Threshold: negInf},
	}
	require.Equal(t, len(want), w)
	if diff := cmp.Diff(want, out[:w], approx); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 0.75, auc, 1e-12)
}

func TestComputeExact_TieGroupIsOneVertex(t *testing.T) {
	t.Parallel()

	scores := []float32{0.5, 0.5, 0.5, 0.5}
	labels := []uint8{1, 0, 1, 0}
	out := make([]Point, len(scores)+2)

	w, auc, err := ComputeExact(scores, labels, out, false)
	require.NoError(t, err)
	require.Equal(t, 3, w, "a single tie group must produce a single vertex")

	assert.Equal(t, Point{Fpr: 1, Tpr: 1, Threshold: 0.5}, out[1])
	assert.InDelta(t, 0.5, auc, 1e-12)
}

func TestComputeExact_PartialTies(t *testing.T) {
	t.Parallel()

	// Groups: 0.9 {+}, 0.6 {+,-}, 0.2 {-}
	scores := []float32{0.6, 0.9, 0.2, 0.6}
	labels := []uint8{0, 1, 0, 1}
	out := make([]Point, len(scores)+2)

	w, auc, err := ComputeExact(scores, labels, out, false)
	require.NoError(t, err)

	want := []Point{
		{Fpr: 0, Tpr: 0, Threshold: posInf},
		{Fpr: 0, Tpr: 0.5, Threshold: 0.9},
		{Fpr: 0.5, Tpr: 1, Threshold: 0.6},
		{Fpr: 1, Tpr: 1, Threshold: 0.2},
		{Fpr: 1, Tpr: 1, Threshold: negInf},
	}
	require.Equal(t, len(want), w)
	if diff := cmp.Diff(want, out[:w], approx); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	// 0.5*(1+0.5)/2 + 0.5*(1+1)/2
	assert.InDelta(t, 0.875, auc, 1e-12)
}

func TestComputeExact_PerfectSeparator(t *testing.T) {
	t.Parallel()

	scores := []float32{0.95, 0.1, 0.85, 0.2, 0.7, 0.3}
	labels := []uint8{1, 0, 1, 0, 1, 0}
	out := make([]Point, len(scores)+2)

	_, auc, err := ComputeExact(scores, labels, out, true)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, auc, 1e-12)
}

func TestComputeExact_InvertedSeparator(t *testing.T) {
	t.Parallel()

	scores := []float32{0.1, 0.9, 0.2, 0.8}
	labels := []uint8{1, 0, 1, 0}
	out := make([]Point, len(scores)+2)

	_, auc, err := ComputeExact(scores, labels, out, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, auc, 1e-12)
}

func TestComputeExact_DegenerateClasses(t *testing.T) {
	t.Parallel()

	scores := []float32{0.9, 0.4, 0.4, 0.1}

	t.Run("all positive", func(t *testing.T) {
		t.Parallel()
		out := make([]Point, len(scores)+2)
		w, auc, err := ComputeExact(scores, []uint8{1, 1, 1, 1}, out, true)
		require.NoError(t, err)
		for i, p := range out[:w] {
			assert.Zerof(t, p.Fpr, "point %d", i)
		}
		assert.Equal(t, 1.0, out[w-1].Tpr)
		assert.Zero(t, auc)
	})

	t.Run("all negative", func(t *testing.T) {
		t.Parallel()
		out := make([]Point, len(scores)+2)
		w, auc, err := ComputeExact(scores, []uint8{0, 0, 0, 0}, out, true)
		require.NoError(t, err)
		for i, p := range out[:w] {
			assert.Zerof(t, p.Tpr, "point %d", i)
		}
		assert.Equal(t, 1.0, out[w-1].Fpr)
		assert.Zero(t, auc)
	})
}

func TestComputeExact_SingleSample(t *testing.T) {
	t.Parallel()

	out := make([]Point, 3)
	w, _, err := ComputeExact([]float32{0.3}, []uint8{1}, out, true)
	require.NoError(t, err)
	require.Equal(t, 3, w)
	assert.Equal(t, posInf, out[0].Threshold)
	assert.Equal(t, float32(0.3), out[1].Threshold)
	assert.Equal(t, negInf, out[2].Threshold)
}

func TestComputeExact_Clamp(t *testing.T) {
	t.Parallel()

	scores := []float32{-2, 3, 0.5, 1.5}
	labels := []uint8{0, 1, 0, 1}

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		out := make([]Point, len(scores)+2)
		w, _, err := ComputeExact(scores, labels, out, true)
		require.NoError(t, err)
		// 3 and 1.5 collapse into one group at 1.
		require.Equal(t, 5, w)
		got := []float32{out[1].Threshold, out[2].Threshold, out[3].Threshold}
		assert.Equal(t, []float32{1, 0.5, 0}, got)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		out := make([]Point, len(scores)+2)
		w, _, err := ComputeExact(scores, labels, out, false)
		require.NoError(t, err)
		require.Equal(t, 6, w)
		got := []float32{out[1].Threshold, out[2].Threshold, out[3].Threshold, out[4].Threshold}
		assert.Equal(t, []float32{3, 1.5, 0.5, -2}, got)
	})
}

func TestComputeExact_NaNScoreTerminates(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	scores := []float32{0.8, nan, 0.2}
	labels := []uint8{1, 0, 0}
	out := make([]Point, len(scores)+2)

	w, _, err := ComputeExact(scores, labels, out, false)
	require.NoError(t, err)
	assert.LessOrEqual(t, w, len(scores)+2)
	assert.GreaterOrEqual(t, w, 3)
}

func TestComputeExact_LeavesTailUntouched(t *testing.T) {
	t.Parallel()

	sentinel := Point{Fpr: -1, Tpr: -1, Threshold: 42}
	out := make([]Point, 10)
	for i := range out {
		out[i] = sentinel
	}

	w, _, err := ComputeExact([]float32{0.5, 0.5, 0.1}, []uint8{1, 0, 1}, out, true)
	require.NoError(t, err)
	for i := w; i < len(out); i++ {
		assert.Equal(t, sentinel, out[i], "slot %d beyond written count was modified", i)
	}
}

func TestComputeExact_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	scores := []float32{0.3, 0.9, 0.1, 0.9}
	labels := []uint8{0, 1, 0, 2}
	scoresCopy := append([]float32(nil), scores...)
	labelsCopy := append([]uint8(nil), labels...)

	_, _, err := ComputeExact(scores, labels, make([]Point, 6), true)
	require.NoError(t, err)
	assert.Equal(t, scoresCopy, scores)
	assert.Equal(t, labelsCopy, labels)
}

func TestComputeExact_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		scores []float32
		labels []uint8
		out    []Point
		want   Status
	}{
		{"nil_scores", nil, []uint8{1}, make([]Point, 3), StatusNullPointer},
		{"nil_labels", []float32{0.5}, nil, make([]Point, 3), StatusNullPointer},
		{"nil_out", []float32{0.5}, []uint8{1}, nil, StatusNullPointer},
		{"length_mismatch", []float32{0.5, 0.2}, []uint8{1}, make([]Point, 4), StatusLengthMismatch},
		{"empty", []float32{}, []uint8{}, make([]Point, 2), StatusInvalidN},
		{"undersized_out", []float32{0.5, 0.2}, []uint8{1, 0}, make([]Point, 3), StatusInvalidOutLen},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for i := range tc.out {
				tc.out[i] = Point{Threshold: 7}
			}
			w, auc, err := ComputeExact(tc.scores, tc.labels, tc.out, true)
			require.ErrorIs(t, err, tc.want)
			assert.Zero(t, w)
			assert.Zero(t, auc)
			for i, p := range tc.out {
				assert.Equal(t, Point{Threshold: 7}, p, "slot %d written on failure", i)
			}
		})
	}
}
