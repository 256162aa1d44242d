// Package roc computes Receiver Operating Characteristic curves and the area
// under them from classifier scores and binary labels.
//
// Two sweeps are provided. ComputeBinned walks a fixed grid of thresholds
// from 1.0 down to 0.0; ComputeExact emits one vertex per distinct score,
// bracketed by (0,0) and (1,1) sentinels. Both write into caller-allocated
// buffers and allocate nothing beyond one index permutation per call.
// Evaluate wraps either sweep and returns a right-sized Curve.
package roc

import "math"

// Point is one vertex of a ROC curve. A sample is predicted positive when
// its score is >= Threshold.
type Point struct {
	Fpr       float64
	Tpr       float64
	Threshold float32
}

var (
	posInf = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)

// Totals holds the class counts used as rate denominators.
type Totals struct {
	Pos uint64
	Neg uint64
}

// countLabels counts nonzero labels as positive and the rest as negative.
func countLabels(labels []uint8) Totals {
	var pos uint64
	for _, l := range labels {
		if l != 0 {
			pos++
		}
	}
	return Totals{Pos: pos, Neg: uint64(len(labels)) - pos}
}

// rates converts running counts to (fpr, tpr). An empty class yields a rate
// of 0 rather than a division by zero.
func (t Totals) rates(tp, fp uint64) (fpr, tpr float64) {
	if t.Neg > 0 {
		fpr = float64(fp) / float64(t.Neg)
	}
	if t.Pos > 0 {
		tpr = float64(tp) / float64(t.Pos)
	}
	return fpr, tpr
}

// addTrapezoid adds the trapezoid between prev and cur to auc. A negative
// FPR step, which can only come from rounding, contributes nothing.
func addTrapezoid(auc float64, prev, cur Point) float64 {
	dx := cur.Fpr - prev.Fpr
	if dx < 0 {
		dx = 0
	}
	return auc + dx*(cur.Tpr+prev.Tpr)*0.5
}

// AUC integrates pts with the trapezoidal rule in the order given.
func AUC(pts []Point) float64 {
	var auc float64
	for i := 1; i < len(pts); i++ {
		auc = addTrapezoid(auc, pts[i-1], pts[i])
	}
	return auc
}
