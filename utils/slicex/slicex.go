// File: slicex.go
// Title: Core Sequence Utilities
// Description: Lazy batching and de-duplication over iter.Seq, eager
//              iteration helpers and a few slice conveniences.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-15 v0.2.0: Moved to iter.Seq, added Batch and DistinctBy

package slicex

import (
	"iter"
	"slices"

	"github.com/goldenacre/extensions/core/errors"
)

// ===============================
// Lazy Sequence Functions
// ===============================

// Batch splits seq into consecutive chunks of size elements; the last chunk
// may be shorter. Nothing is read from seq until the result is ranged over.
//
// All chunks share one forward cursor over seq. Each chunk must be consumed
// inside the loop body that received it, before the next chunk is requested.
// A chunk can be ranged over only once.
func Batch[T any](seq iter.Seq[T], size int) (iter.Seq[iter.Seq[T]], error) {
	if seq == nil {
		return nil, errors.SlicexNilSequence("batch")
	}
	if size <= 0 {
		return nil, errors.SlicexInvalidSize("batch", size)
	}

	return func(yield func(iter.Seq[T]) bool) {
		next, stop := iter.Pull(seq)
		defer stop()

		for {
			first, ok := next()
			if !ok {
				return
			}
			if !yield(batchOf(first, next, size)) {
				return
			}
		}
	}, nil
}

// batchOf yields first followed by up to size-1 further elements from next
func batchOf[T any](first T, next func() (T, bool), size int) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true

		if !yield(first) {
			return
		}
		for i := 1; i < size; i++ {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// DistinctBy yields the elements of seq whose key has not been seen before,
// in their original order. Each range over the result starts with an empty
// set of seen keys.
func DistinctBy[T any, K comparable](seq iter.Seq[T], key func(T) K) (iter.Seq[T], error) {
	if seq == nil {
		return nil, errors.SlicexNilSequence("distinct_by")
	}
	if key == nil {
		return nil, errors.SlicexNilFunction("distinct_by")
	}

	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// ===============================
// Eager Iteration Functions
// ===============================

// ForEach calls fn for every element of seq
func ForEach[T any](seq iter.Seq[T], fn func(T)) error {
	if seq == nil {
		return errors.SlicexNilSequence("for_each")
	}
	if fn == nil {
		return errors.SlicexNilFunction("for_each")
	}

	for v := range seq {
		fn(v)
	}
	return nil
}

// ForEachIndexed calls fn with the zero-based position of every element
func ForEachIndexed[T any](seq iter.Seq[T], fn func(int, T)) error {
	if seq == nil {
		return errors.SlicexNilSequence("for_each_indexed")
	}
	if fn == nil {
		return errors.SlicexNilFunction("for_each_indexed")
	}

	i := 0
	for v := range seq {
		fn(i, v)
		i++
	}
	return nil
}

// Collect gathers seq into a slice; a nil seq gives nil
func Collect[T any](seq iter.Seq[T]) []T {
	if seq == nil {
		return nil
	}
	return slices.Collect(seq)
}

// IsFirst reports whether element is the first element of seq
func IsFirst[T comparable](seq iter.Seq[T], element T) bool {
	if seq == nil {
		return false
	}

	next, stop := iter.Pull(seq)
	defer stop()

	first, ok := next()
	return ok && first == element
}

// IsLast reports whether element is the last element of seq
func IsLast[T comparable](seq iter.Seq[T], element T) bool {
	if seq == nil {
		return false
	}

	var last T
	found := false
	for v := range seq {
		last, found = v, true
	}
	return found && last == element
}

// ===============================
// Slice Functions
// ===============================

// Chunk splits the slice into chunks of the specified size. The chunks
// share the backing array of slice.
func Chunk[T any](slice []T, size int) [][]T {
	if slice == nil || size <= 0 {
		return nil
	}

	var chunks [][]T
	for i := 0; i < len(slice); i += size {
		end := min(i+size, len(slice))
		chunks = append(chunks, slice[i:end:end])
	}
	return chunks
}

// AppendIfMissing appends item unless the slice already contains it
func AppendIfMissing[T comparable](slice []T, item T) []T {
	if slices.Contains(slice, item) {
		return slice
	}
	return append(slice, item)
}

// AppendIf appends item when cond is true
func AppendIf[T any](slice []T, cond bool, item T) []T {
	if !cond {
		return slice
	}
	return append(slice, item)
}

// MapInPlace replaces every element with fn(index, element) and returns
// the same slice
func MapInPlace[T any](slice []T, fn func(int, T) T) []T {
	if fn == nil {
		return slice
	}
	for i, v := range slice {
		slice[i] = fn(i, v)
	}
	return slice
}
