// Package beliefprop is a sum-product belief-propagation engine for
// discrete Bayesian networks.
//
// 🔗 What is beliefprop?
//
//	A small, dependency-light pipeline that turns a BIF (Bayesian
//	Interchange Format) network description into posterior marginals:
//
//	  • Parsing: lexer/ast/parser/bif turn BIF text into a frozen graph
//	  • Inference: infer runs exact (tree) or approximate (loopy)
//	    sum-product message passing over that graph
//	  • Reporting: config/report back a CLI-style benchmark harness
//
// Everything is organized under sibling subpackages:
//
//	token/   — lexical token kinds shared by lexer and parser
//	lexer/   — BIF character scanner
//	ast/     — parsed BIF syntax tree
//	parser/  — recursive-descent BIF grammar
//	graph/   — CSR-indexed node/edge arena belief networks are built into
//	bif/     — two-pass AST-to-graph builder, including CPT projection
//	infer/   — Combine/Send/Marginalize primitives, Tree and Loopy
//	config/  — YAML-backed runtime options (epsilon, iterations, strict mode)
//	report/  — benchmark CSV row type + writer
//
// Quick shape:
//
//	BIF text ─▶ lexer ─▶ parser ─▶ ast ─▶ bif.Build ─▶ graph.Graph ─▶ infer.Tree / infer.Loopy
//
// Dive into SPEC_FULL.md and DESIGN.md for the full design rationale.
package beliefprop
