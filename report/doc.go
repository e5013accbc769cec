// Package report models one benchmark row of a belief-propagation run
// and writes a batch of them as CSV, matching the column set the
// original driver printed per network/algorithm combination.
package report
