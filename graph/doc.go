// Package graph implements the frozen, CSR-indexed Bayesian network
// that infer operates on: nodes (random variables with a current
// marginal/evidence vector) and directed edges (conditional
// probability tables plus a live message vector), built incrementally
// and then indexed once for constant-time neighbor lookup.
package graph
