// Package wick expands moments of jointly Gaussian variables into sums of
// pairwise covariance products — Wick's/Isserlis' theorem, made enumerable.
//
// 🚀 What is wick?
//
//	Isserlis' theorem states that for jointly Gaussian X_1,…,X_2n,
//	E{X_1·…·X_2n} equals the sum over all partitions into pairs of the
//	product of pairwise covariances. This library enumerates those
//	partitions, specializes them to stationary-process lag structure, and
//	renders the resulting sum:
//		• pairing/    — partition-into-pairs enumerator, (2n-1)!! pairings
//		• stationary/ — lag-shape reduction + analytical token labeling
//		• render/     — multiplicity tally and text/LaTeX output
//		• cmd/wick    — demo CLI driver
//
// ✨ Why choose wick?
//
//   - Exact – integer lag arithmetic end to end, no floating point
//   - Lazy – pairings and shapes stream via iter.Seq, nothing is stored twice
//   - Pure – the library has no I/O, no globals, no hidden state
//   - Small inputs by design – the enumeration is (2n-1)!!; correctness over
//     scalability is the explicit contract
//
// Quick example, E{X_t² X_{t+t_1}²}:
//
//	labels, shapes, _ := stationary.Analytical(
//	    []string{"t", "t", "t+t_1", "t+t_1"}, pairing.DefaultOptions())
//	table := render.Tally(shapes)
//	fmt.Println(render.Render(table,
//	    render.StationaryLabels(labels, nil, render.Text),
//	    render.DefaultOptions()))
//	// s(0)^2
//	// + 2*s(t_1)^2
//
//	go get github.com/katalvlaran/wick
package wick
