package roc

// ComputeExact writes one point per distinct score into out, preceded by a
// (0,0,+Inf) sentinel and followed by a (1,1,-Inf) sentinel. Samples sharing
// a score form one tie group and are admitted in a single step, so a tie
// never splits across two vertices.
//
// out must hold at least len(scores)+2 points; the number actually written
// (between 3 and len(scores)+2) is returned along with the trapezoidal AUC.
// On error nothing is written.
func ComputeExact(scores []float32, labels []uint8, out []Point, clamp bool) (int, float64, error) {
	if err := validateSamples(scores, labels, out); err != nil {
		return 0, 0, err
	}
	n := len(scores)
	if len(out) < n+2 {
		return 0, 0, StatusInvalidOutLen
	}

	idx := make([]int, n)
	rankDescending(idx, scores, clamp)
	totals := countLabels(labels)

	w := 0
	out[w] = Point{Fpr: 0, Tpr: 0, Threshold: posInf}
	w++

	var tp, fp uint64
	for cursor := 0; cursor < n; {
		group := scoreAt(scores, idx[cursor], clamp)
		j := cursor
		for j < n && scoreAt(scores, idx[j], clamp) == group {
			if labels[idx[j]] != 0 {
				tp++
			} else {
				fp++
			}
			j++
		}
		// NaN never equals itself; admit it alone rather than spin.
		if j == cursor {
			if labels[idx[j]] != 0 {
				tp++
			} else {
				fp++
			}
			j++
		}
		cursor = j

		fpr, tpr := totals.rates(tp, fp)
		out[w] = Point{Fpr: fpr, Tpr: tpr, Threshold: group}
		w++
	}

	// Everything predicted positive: (1,1) whenever both classes are present.
	// An absent class keeps its rate at 0 for the whole curve.
	fpr, tpr := totals.rates(totals.Pos, totals.Neg)
	out[w] = Point{Fpr: fpr, Tpr: tpr, Threshold: negInf}
	w++

	return w, AUC(out[:w]), nil
}
