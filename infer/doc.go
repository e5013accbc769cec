// Package infer implements sum-product belief propagation over a
// graph.Graph: Combine/Send/Marginalize as shared primitives, Tree for
// exact inference on acyclic networks, and Loopy for synchronous
// approximate inference on networks with cycles.
package infer
