package roc

// validateSamples applies the checks common to both sweeps, in order:
// nil buffers, length mismatch, empty input.
func validateSamples(scores []float32, labels []uint8, out []Point) error {
	if scores == nil || labels == nil || out == nil {
		return StatusNullPointer
	}
	if len(labels) != len(scores) {
		return StatusLengthMismatch
	}
	if len(scores) == 0 {
		return StatusInvalidN
	}
	return nil
}

// ComputeBinned sweeps buckets+1 evenly spaced thresholds from 1.0 down to
// 0.0 and writes one point per threshold into out[:buckets+1]. It returns
// the trapezoidal AUC of those points.
//
// out must hold at least buckets+1 points. On error nothing is written.
func ComputeBinned(scores []float32, labels []uint8, buckets int, out []Point, clamp bool) (float64, error) {
	if err := validateSamples(scores, labels, out); err != nil {
		return 0, err
	}
	if buckets <= 0 {
		return 0, StatusInvalidBuckets
	}
	bins := buckets + 1
	if len(out) < bins {
		return 0, StatusInvalidOutLen
	}

	n := len(scores)
	idx := make([]int, n)
	rankDescending(idx, scores, clamp)
	totals := countLabels(labels)

	var tp, fp uint64
	var auc float64
	cursor := 0
	for b := 0; b < bins; b++ {
		cut := float32(1 - float64(b)/float64(buckets))

		// Thresholds only decrease, so the cursor never moves back.
		for cursor < n && scoreAt(scores, idx[cursor], clamp) >= cut {
			if labels[idx[cursor]] != 0 {
				tp++
			} else {
				fp++
			}
			cursor++
		}

		fpr, tpr := totals.rates(tp, fp)
		out[b] = Point{Fpr: fpr, Tpr: tpr, Threshold: cut}
		if b > 0 {
			auc = addTrapezoid(auc, out[b-1], out[b])
		}
	}
	return auc, nil
}
