// Package bif builds a graph.Graph from a parsed BIF compilation unit:
// one node per declared variable, one edge per (parent, child) pair,
// with each edge's conditional probability table projected out of its
// child's full joint table by uniformly averaging over the other
// parents.
package bif
