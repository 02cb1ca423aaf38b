// SPDX-License-Identifier: MIT

package sccs

import (
	"fmt"

	"github.com/katalvlaran/statick/array"
	"github.com/katalvlaran/statick/model"
)

// Slots of the derived dimension record.
const (
	varIntervals = iota
	varSamples
	varObservations
	varLaggedFeatures
	varFeatures
	nVars
)

// DAO is the SCCS model data access object.
//
// Feature and label handles are shared with the caller; the DAO never writes
// through them. All other state is owned and only exposed as copies.
type DAO[T array.Float] struct {
	vars      [nVars]int
	nLags     []uint64
	colOffset []uint64
	censoring []uint64
	features  []array.Matrix[T]
	labels    []*array.Vector[int32]
	kind      array.Kind
	lip       *model.Lipschitz[T]
}

// New assembles a DAO from per-sample features and labels and validates it.
//
// Implementation:
//   - Stage 1: copy the handle slices; default n_lags to zeros of width
//     features[0].Cols() and censoring to ones of length len(features).
//   - Stage 2: take the storage kind from the first feature matrix.
//   - Stage 3: run Load.
func New[T array.Float](features []array.Matrix[T], labels []*array.Vector[int32], opts ...Option) (*DAO[T], error) {
	o := gatherOptions(opts...)
	d := &DAO[T]{
		features:  append([]array.Matrix[T](nil), features...),
		labels:    append([]*array.Vector[int32](nil), labels...),
		nLags:     o.nLags,
		censoring: o.censoring,
		lip:       &model.Lipschitz[T]{},
	}
	if len(d.features) > 0 && !array.IsNil(d.features[0]) {
		if d.nLags == nil {
			d.nLags = make([]uint64, d.features[0].Cols())
		}
		if d.features[0].IsSparse() {
			d.kind = array.KindSparse
		}
	}
	if d.censoring == nil {
		d.censoring = array.Filled(len(d.features), DefaultCensoring).Data()
	}
	if err := d.Load(); err != nil {
		return nil, err
	}

	return d, nil
}

// Load validates the DAO and derives the five dimensions and col_offset.
//
// Checks, in order:
//   - features and labels non-empty, no nil entries      (ErrEmpty)
//   - every n_lags[i] < n_intervals                       (ErrLagOutOfRange)
//   - len(features) == len(labels) == len(censoring)      (ErrSampleCount)
//   - every feature matrix has the DAO's storage kind     (ErrFeatureKind)
//   - every feature matrix has n_intervals rows           (ErrIntervalShape)
//   - every feature matrix has n_lagged_features cols     (ErrLaggedShape)
//   - every label vector has n_intervals entries          (ErrLabelShape)
//
// Load never touches features or labels and only assigns derived fields on
// success, so repeated calls yield identical results. It must not run
// concurrently with solvers reading the DAO.
func (d *DAO[T]) Load() error {
	if len(d.features) == 0 || len(d.labels) == 0 || array.IsNil(d.features[0]) {
		return ErrEmpty
	}

	var vars [nVars]int
	vars[varIntervals] = d.features[0].Rows()
	vars[varSamples] = len(d.features)
	vars[varObservations] = vars[varIntervals] * vars[varSamples]
	lagged := len(d.nLags)
	for _, l := range d.nLags {
		lagged += int(l)
	}
	vars[varLaggedFeatures] = lagged
	vars[varFeatures] = len(d.nLags)

	nIntervals := vars[varIntervals]
	colOffset := make([]uint64, len(d.nLags))
	for i, l := range d.nLags {
		if l >= uint64(nIntervals) {
			return fmt.Errorf("sccs.Load: n_lags[%d]=%d, n_intervals=%d: %w", i, l, nIntervals, ErrLagOutOfRange)
		}
		if i > 0 {
			colOffset[i] = colOffset[i-1] + d.nLags[i-1] + 1
		}
	}

	nSamples := vars[varSamples]
	if nSamples != len(d.labels) || nSamples != len(d.censoring) {
		return fmt.Errorf("sccs.Load: %d features, %d labels, %d censoring: %w",
			nSamples, len(d.labels), len(d.censoring), ErrSampleCount)
	}
	for i := 0; i < nSamples; i++ {
		f, l := d.features[i], d.labels[i]
		if array.IsNil(f) || l == nil {
			return fmt.Errorf("sccs.Load: sample %d: %w", i, ErrEmpty)
		}
		if f.IsSparse() != (d.kind == array.KindSparse) {
			return fmt.Errorf("sccs.Load: sample %d is not %s: %w", i, d.kind, ErrFeatureKind)
		}
		if f.Rows() != nIntervals {
			return fmt.Errorf("sccs.Load: all feature matrices should have %d rows, sample %d has %d: %w",
				nIntervals, i, f.Rows(), ErrIntervalShape)
		}
		if f.Cols() != lagged {
			return fmt.Errorf("sccs.Load: all feature matrices should have %d cols, sample %d has %d: %w",
				lagged, i, f.Cols(), ErrLaggedShape)
		}
		if l.Len() != nIntervals {
			return fmt.Errorf("sccs.Load: all labels should have %d rows, sample %d has %d: %w",
				nIntervals, i, l.Len(), ErrLabelShape)
		}
	}

	d.vars = vars
	d.colOffset = colOffset

	return nil
}

// NIntervals returns the number of time intervals per sample.
func (d *DAO[T]) NIntervals() int { return d.vars[varIntervals] }

// NSamples returns the number of samples.
func (d *DAO[T]) NSamples() int { return d.vars[varSamples] }

// NObservations returns n_intervals * n_samples.
func (d *DAO[T]) NObservations() int { return d.vars[varObservations] }

// NLaggedFeatures returns the width of every feature matrix.
func (d *DAO[T]) NLaggedFeatures() int { return d.vars[varLaggedFeatures] }

// NFeatures returns the number of raw features (len(n_lags)).
func (d *DAO[T]) NFeatures() int { return d.vars[varFeatures] }

// Kind returns the feature storage kind.
func (d *DAO[T]) Kind() array.Kind { return d.kind }

// NLags returns a copy of the lag table.
func (d *DAO[T]) NLags() []uint64 { return append([]uint64(nil), d.nLags...) }

// ColOffset returns a copy of the lagged-column offsets.
func (d *DAO[T]) ColOffset() []uint64 { return append([]uint64(nil), d.colOffset...) }

// Censoring returns a copy of the censoring flags.
func (d *DAO[T]) Censoring() []uint64 { return append([]uint64(nil), d.censoring...) }

// Features returns the shared feature handles.
func (d *DAO[T]) Features() []array.Matrix[T] { return append([]array.Matrix[T](nil), d.features...) }

// Labels returns the shared label handles.
func (d *DAO[T]) Labels() []*array.Vector[int32] {
	return append([]*array.Vector[int32](nil), d.labels...)
}

// Lipschitz returns the embedded Lipschitz sub-DAO.
func (d *DAO[T]) Lipschitz() *model.Lipschitz[T] { return d.lip }

// LaggedColumns returns the [lo, hi) lagged column range of raw feature j.
func (d *DAO[T]) LaggedColumns(j int) (lo, hi int, err error) {
	if j < 0 || j >= len(d.nLags) {
		return 0, 0, fmt.Errorf("sccs.LaggedColumns(%d): %w", j, array.ErrOutOfRange)
	}
	lo = int(d.colOffset[j])

	return lo, lo + int(d.nLags[j]) + 1, nil
}
