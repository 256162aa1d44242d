package roc

import (
	"errors"
	"fmt"
)

// Mode selects the sweep used by Evaluate.
type Mode int

const (
	ModeExact Mode = iota
	ModeBinned
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeBinned:
		return "binned"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// DefaultBuckets is the binned resolution used by DefaultOptions.
const DefaultBuckets = 100

// Options controls Evaluate. Buckets is only consulted in binned mode.
type Options struct {
	Mode    Mode
	Buckets int
	// Clamp limits scores to [0,1] before ranking and thresholding.
	Clamp bool
}

// DefaultOptions returns an exact sweep with clamping enabled.
func DefaultOptions() Options {
	return Options{
		Mode:    ModeExact,
		Buckets: DefaultBuckets,
		Clamp:   true,
	}
}

// Validate checks that the options describe a runnable sweep.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeExact:
	case ModeBinned:
		if o.Buckets <= 0 {
			return fmt.Errorf("buckets must be positive, got %d: %w", o.Buckets, StatusInvalidBuckets)
		}
	default:
		return fmt.Errorf("unknown mode %v", o.Mode)
	}
	return nil
}

// Curve is a computed ROC curve together with its AUC.
type Curve struct {
	Mode   Mode
	Points []Point
	AUC    float64
}

// ErrNilInput is returned by Evaluate when scores or labels is nil.
var ErrNilInput = errors.New("scores and labels must not be nil")

// Evaluate computes a ROC curve, allocating an output buffer of the size the
// chosen sweep needs. The returned Points slice holds only written points.
func Evaluate(scores []float32, labels []bool, opts Options) (Curve, error) {
	if scores == nil || labels == nil {
		return Curve{}, fmt.Errorf("evaluate roc: %w: %w", ErrNilInput, StatusNullPointer)
	}
	if len(scores) != len(labels) {
		return Curve{}, fmt.Errorf("evaluate roc: %d scores, %d labels: %w", len(scores), len(labels), StatusLengthMismatch)
	}
	if len(scores) == 0 {
		return Curve{}, fmt.Errorf("evaluate roc: scores and labels are empty: %w", StatusInvalidN)
	}
	if err := opts.Validate(); err != nil {
		return Curve{}, fmt.Errorf("evaluate roc: %w", err)
	}

	labels8 := make([]uint8, len(labels))
	for i, l := range labels {
		if l {
			labels8[i] = 1
		}
	}

	switch opts.Mode {
	case ModeBinned:
		pts := make([]Point, opts.Buckets+1)
		auc, err := ComputeBinned(scores, labels8, opts.Buckets, pts, opts.Clamp)
		if err != nil {
			return Curve{}, fmt.Errorf("roc (binned) failed: %w", err)
		}
		return Curve{Mode: ModeBinned, Points: pts, AUC: auc}, nil
	default:
		buf := make([]Point, len(scores)+2)
		w, auc, err := ComputeExact(scores, labels8, buf, opts.Clamp)
		if err != nil {
			return Curve{}, fmt.Errorf("roc (exact) failed: %w", err)
		}
		// Shrink so the unused tail is not retained.
		pts := make([]Point, w)
		copy(pts, buf[:w])
		return Curve{Mode: ModeExact, Points: pts, AUC: auc}, nil
	}
}
