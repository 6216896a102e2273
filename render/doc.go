// Package render turns the lazy shape stream of a Wick/Isserlis expansion
// into a human-readable sum of covariance products.
//
// 🚀 Pipeline position:
//
//	pairing.Enumerate → stationary.Reduce/Analytical → render.Tally → render.Render
//
//	Tally folds the shape stream into a CountTable of multiplicities; Render
//	writes the table as a plain-text arithmetic expression or LaTeX-style
//	markup, one term per line, sorted by multiplicity:
//
//	  s(0)^2
//	  + 2*s(t_1)^2
//
// ✨ Key features:
//   - insertion-ordered tallying — equal-multiplicity terms render in
//     first-seen order, so output is deterministic for a given strategy
//   - caller-supplied lag labeling (LagLabeler); StationaryLabels derives
//     labels like s(t_2-t_1) from the analytical integer assignment
//   - optional ANSI color and aligned coefficient columns for terminals
//
// Shape lengths are treated as significant: (1) and (1,0) tally separately,
// exactly as the reducer emits them.
package render
