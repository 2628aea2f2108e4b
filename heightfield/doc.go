// SPDX-License-Identifier: MIT

// Package heightfield provides the square altitude grid that terrain
// generators fill and tile maps stitch together.
//
// What:
//
//   - Field is an n×n grid of integer altitude samples, n = 2^k+1 (k ≥ 1).
//   - Every cell starts unset; presence is tracked in a bitmap next to the
//     values, so any integer (negative ones included) is a legal altitude.
//   - Point access (At/Set/IsSet) and whole-edge access (Edge/SetEdge/ZeroEdge)
//     for the four sides Top, Bottom, Left and Right.
//   - Reader is the read-only interface handed to renderers and analysers;
//     View is a concrete read-only window onto a Field (no mutators).
//
// Coordinates:
//
//	(0,0) ──── x ────► (n-1,0)      Top    = row    y = 0
//	  │                              Bottom = row    y = n-1
//	  y                              Left   = column x = 0
//	  ▼                              Right  = column x = n-1
//	(0,n-1)          (n-1,n-1)
//
// Edge slices run along increasing x (Top/Bottom) or increasing y (Left/Right).
//
// Errors:
//
//   - ErrInvalidSize: side length is not of the form 2^k+1.
//   - ErrOutOfRange: coordinate outside [0, n-1].
//   - ErrUnset: read of a cell that holds no value yet.
//   - ErrLengthMismatch: edge slice length differs from n.
//   - ErrUnknownSide: Side value outside Top..Right.
//
// Complexity:
//
//   - New, Clone: O(n²). At, Set, IsSet: O(1). Edge, SetEdge, ZeroEdge: O(n).
package heightfield
