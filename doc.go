// Package magnitude is the module root of a diversity toolkit for text:
// it measures how many genuinely distinct items a set is worth and picks
// small subsets that keep as much of that worth as possible.
//
// 🚀 What is in the box?
//
//	• Distances: normalized edit distance (memoized), token Jaccard, char n-grams
//	• Magnitude: Z = exp(-t·D), solve Z·w = 1, report sum(w) with a human summary
//	• Incremental updates: extend a prior result by one item without rebuilding D
//	• Greedy selection: pick k items by largest magnitude gain
//	• Ambient pieces: zerolog logging, koanf config, Prometheus metrics, a cobra CLI
//
// Under the hood the module is organized as:
//
//	matrix/        — Dense storage, element-wise Apply, Gaussian elimination Solve
//	distance/      — Provider interface, Edit/Cosine/NGram, distance matrices
//	magnitude/     — Engine: Compute, ComputeIncremental, DiversityContribution, Select
//	metrics/       — Prometheus Collector implementing the engine and cache observers
//	logging/       — zerolog logger construction
//	config/        — layered defaults, YAML and MAGNITUDE_* environment settings
//	cmd/magnitude/ — command line front end
//
// Quick example:
//
//	eng, _ := magnitude.New(magnitude.WithDistanceName("ngram"))
//	res, _ := eng.Compute([]string{"red fox", "red dog", "blue whale"}, false)
//	fmt.Println(res.Interpretation)
//
// A set of n unrelated items has magnitude close to n; n copies of one item
// have magnitude 1.
//
//	go install github.com/katalvlaran/magnitude/cmd/magnitude@latest
package magnitude
