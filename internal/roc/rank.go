package roc

import "slices"

// clamp01 limits x to [0,1]. NaN is returned unchanged.
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// scoreAt returns the score of sample i as seen by the ranker and the sweeps.
func scoreAt(scores []float32, i int, clamp bool) float32 {
	s := scores[i]
	if clamp {
		return clamp01(s)
	}
	return s
}

// rankDescending fills idx with sample indices ordered by score, highest
// first. Equal scores keep ascending index order so tie groups and repeated
// calls are reproducible. len(idx) must equal len(scores).
func rankDescending(idx []int, scores []float32, clamp bool) {
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		sa, sb := scoreAt(scores, a, clamp), scoreAt(scores, b, clamp)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}
		return a - b
	})
}
