// Package slicex provides sequence helpers built on iter.Seq.
//
// Package: slicex
// Title: Sequence Utilities
// Description: Lazy Batch and DistinctBy over iter.Seq, ForEach helpers that
//              validate their arguments, and small slice conveniences.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: iter.Seq based Batch and DistinctBy
//
// Usage:
//
//	batches, err := slicex.Batch(slices.Values(ids), 100)
//	if err != nil {
//		return err
//	}
//	for batch := range batches {
//		if err := store.DeleteMany(slices.Collect(batch)); err != nil {
//			return err
//		}
//	}
//
// Batch and DistinctBy read their input only while the result is being
// ranged over; breaking out of the loop stops reading.
package slicex
