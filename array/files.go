// SPDX-License-Identifier: MIT

package array

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile opens path as an archive and hands the decoder to fn.
// This is the only blocking I/O in the module; it runs at construction time.
func ReadFile(path string, fn func(*Decoder) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := NewDecoder(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := fn(dec); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// WriteFile writes the archive header to a temporary file next to path, hands
// the encoder to fn and renames the result over path. On any error the
// temporary file is removed and an existing file at path is left as it was.
func WriteFile(path string, fn func(*Encoder) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	enc, err := NewEncoder(w)
	if err != nil {
		return err
	}
	if err = fn(enc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// LoadDense reads a single dense record from path.
func LoadDense[T Float](path string) (*Dense[T], error) {
	var m *Dense[T]
	err := ReadFile(path, func(dec *Decoder) (err error) {
		m, err = DecodeDense[T](dec)
		return err
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// LoadSparse reads a single sparse record from path.
func LoadSparse[T Float](path string) (*Sparse[T], error) {
	var m *Sparse[T]
	err := ReadFile(path, func(dec *Decoder) (err error) {
		m, err = DecodeSparse[T](dec)
		return err
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// LoadVector reads a single vector record from path.
func LoadVector[E Element](path string) (*Vector[E], error) {
	var v *Vector[E]
	err := ReadFile(path, func(dec *Decoder) (err error) {
		v, err = DecodeVector[E](dec)
		return err
	})
	if err != nil {
		return nil, err
	}

	return v, nil
}

// Save writes any record (Matrix or Vector) to path as its own archive.
func Save(path string, r interface{ Encode(*Encoder) error }) error {
	return WriteFile(path, r.Encode)
}
