// row.go — Row type and CSV writer.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Row is one benchmark measurement: which network, which propagation
// algorithm ran over it, its shape, and how long it took.
type Row struct {
	FileName        string
	PropagationType string
	NumNodes        int
	NumEdges        int
	Diameter        int
	NumIterations   int
	RunTimeSeconds  float64
}

var header = []string{
	"file_name", "propagation_type", "num_nodes", "num_edges",
	"diameter", "num_iterations", "run_time_seconds",
}

// WriteCSV writes rows to w with a header row, column order matching
// header. Nothing is buffered beyond one flush at the end.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.FileName,
			r.PropagationType,
			strconv.Itoa(r.NumNodes),
			strconv.Itoa(r.NumEdges),
			strconv.Itoa(r.Diameter),
			strconv.Itoa(r.NumIterations),
			strconv.FormatFloat(r.RunTimeSeconds, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
