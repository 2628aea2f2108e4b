// SPDX-License-Identifier: MIT

// Package diamondsquare fills a heightfield.Field by recursive midpoint
// displacement (the Diamond-Square algorithm).
//
// 🚀 What is Diamond-Square?
//
//	Starting from four corner altitudes, the algorithm alternates two passes
//	over ever smaller squares:
//	  • diamond: the centre of each square gets the mean of its four corners;
//	  • square:  each edge midpoint gets the mean of its orthogonal neighbours;
//	and perturbs every new value by a random jitter whose amplitude is
//	proportional to the current square length, so coarse features are rough
//	and fine detail is gentle.
//
// ✨ Key properties:
//   - Only unset cells are written. Corners and whole edges seeded before
//     Generate (for example from a neighbouring tile) are preserved, which is
//     how tiles join without seams.
//   - Boundary points average only their in-bounds neighbours (2, 3 or 4).
//   - Jitter: trunc(avg + (U[0,2L) - L) * Jitter), clamped to [MinAlt, MaxAlt].
//   - Deterministic: the generator owns an explicit *rand.Rand; a fixed seed,
//     config and starting field reproduce the output exactly.
//
// ⚙️ Usage:
//
//	f, _ := heightfield.New(257)
//	g, _ := diamondsquare.NewSeeded(diamondsquare.DefaultConfig(), 42)
//	if err := g.Generate(f); err != nil {
//	  // handle error
//	}
//
// Performance:
//
//   - Time:   O(n²) per field.
//   - Memory: O(1) beyond the field itself.
//
// Concurrency:
//
//   - A Generator is not safe for concurrent use (it owns a math/rand.Rand).
//     Use one generator per goroutine, each with its own seed.
package diamondsquare
