// Package builder generates benchmark Bayesian networks — fixed
// topologies (path, cycle, star, wheel, complete) wired up with random
// discrete conditional probability tables — for the report package's
// benchmark rows and for tests to exercise Tree and Loopy
// against a variety of graph shapes without hand-writing a BIF file for
// each one.
//
// Design contract (kept from the teacher's builder package):
//   - One orchestrator per topology: Path/Cycle/Star/Wheel/Complete all
//     take a vertex count and a BuilderOption set and return a ready
//     *graph.Graph.
//   - Determinism: WithSeed freezes the random CPT generator so the
//     same (n, seed, option set) always produces byte-identical graphs.
//   - Safety: constructors never panic; invalid sizes return sentinel
//     errors.
package builder
