// Package mathx provides small generic helpers for bounds and bit flags.
//
// Package: mathx
// Title: Bounds and Flag Helpers
// Description: Clamp and Between over cmp.Ordered values, HasFlag and
//              HasAllFlags over unsigned flag types.
// Author: goldenacre
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Generic bounds and flag helpers
//
// Usage:
//
//	size = mathx.Clamp(size, 1, 500)
//
//	type Perm uint8
//	const (
//		Read Perm = 1 << iota
//		Write
//	)
//	canWrite := mathx.HasFlag(p, Write)
package mathx
