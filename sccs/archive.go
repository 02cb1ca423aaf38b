// SPDX-License-Identifier: MIT

package sccs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/statick/array"
	"github.com/katalvlaran/statick/model"
)

// headerOrder is the persisted order of the dimension record.
var headerOrder = [nVars]int{varSamples, varFeatures, varObservations, varLaggedFeatures, varIntervals}

// Encode writes the DAO in its fixed archive order.
func (d *DAO[T]) Encode(enc *array.Encoder) error {
	if err := d.lip.Encode(enc); err != nil {
		return err
	}
	if err := enc.Bool(d.kind == array.KindSparse); err != nil {
		return err
	}
	for _, slot := range headerOrder {
		if err := enc.Uint64(uint64(d.vars[slot])); err != nil {
			return err
		}
	}
	if err := array.NewVectorFrom(d.nLags).Encode(enc); err != nil {
		return err
	}
	if err := array.NewVectorFrom(d.colOffset).Encode(enc); err != nil {
		return err
	}
	for _, l := range d.labels {
		if err := l.Encode(enc); err != nil {
			return err
		}
	}
	for _, f := range d.features {
		if err := f.Encode(enc); err != nil {
			return err
		}
	}

	return array.NewVectorFrom(d.censoring).Encode(enc)
}

// Decode reads a DAO whose features must be stored as kind.
//
// Implementation:
//   - Stage 1: Lipschitz record, then the sparse_features discriminant; a
//     value not matching kind is ErrFeatureKind.
//   - Stage 2: the five dimensions, n_lags and col_offset.
//   - Stage 3: n_samples labels, n_samples features, censoring.
//   - Stage 4: Load, then compare the persisted dimensions and offsets with the
//     derived ones (ErrCorruptHeader on disagreement).
func Decode[T array.Float](dec *array.Decoder, kind array.Kind) (*DAO[T], error) {
	lip, err := model.DecodeLipschitz[T](dec)
	if err != nil {
		return nil, fmt.Errorf("sccs.Decode: %w", err)
	}
	sparse, err := dec.Bool()
	if err != nil {
		return nil, fmt.Errorf("sccs.Decode: %w", err)
	}
	if sparse != (kind == array.KindSparse) {
		return nil, fmt.Errorf("sccs.Decode: found sparse=%t, expected %s: %w", sparse, kind, ErrFeatureKind)
	}

	var vars [nVars]int
	for _, slot := range headerOrder {
		if vars[slot], err = dec.Int(); err != nil {
			return nil, fmt.Errorf("sccs.Decode: %w", err)
		}
	}
	nLags, err := array.DecodeVector[uint64](dec)
	if err != nil {
		return nil, fmt.Errorf("sccs.Decode: n_lags: %w", err)
	}
	colOffset, err := array.DecodeVector[uint64](dec)
	if err != nil {
		return nil, fmt.Errorf("sccs.Decode: col_offset: %w", err)
	}

	n := vars[varSamples]
	var labels []*array.Vector[int32]
	for i := 0; i < n; i++ {
		l, err := array.DecodeVector[int32](dec)
		if err != nil {
			return nil, fmt.Errorf("sccs.Decode: label %d: %w", i, err)
		}
		labels = append(labels, l)
	}
	var features []array.Matrix[T]
	for i := 0; i < n; i++ {
		f, err := decodeFeature[T](dec, kind)
		if err != nil {
			return nil, fmt.Errorf("sccs.Decode: feature %d: %w", i, err)
		}
		features = append(features, f)
	}
	censoring, err := array.DecodeVector[uint64](dec)
	if err != nil {
		return nil, fmt.Errorf("sccs.Decode: censoring: %w", err)
	}

	d := &DAO[T]{
		nLags:     nLags.Data(),
		censoring: censoring.Data(),
		features:  features,
		labels:    labels,
		kind:      kind,
		lip:       lip,
	}
	if err := d.Load(); err != nil {
		return nil, fmt.Errorf("sccs.Decode: %w", err)
	}
	if d.vars != vars || !slices.Equal(d.colOffset, colOffset.Data()) {
		return nil, fmt.Errorf("sccs.Decode: persisted %v, derived %v: %w", vars, d.vars, ErrCorruptHeader)
	}

	return d, nil
}

func decodeFeature[T array.Float](dec *array.Decoder, kind array.Kind) (array.Matrix[T], error) {
	if kind == array.KindSparse {
		return array.DecodeSparse[T](dec)
	}

	return array.DecodeDense[T](dec)
}

// LoadFrom reads a DAO archive from path.
func LoadFrom[T array.Float](path string, kind array.Kind) (*DAO[T], error) {
	var d *DAO[T]
	err := array.ReadFile(path, func(dec *array.Decoder) (err error) {
		d, err = Decode[T](dec, kind)
		return err
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

// SaveTo writes the DAO archive to path.
func (d *DAO[T]) SaveTo(path string) error {
	return array.WriteFile(path, d.Encode)
}
