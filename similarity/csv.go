// SPDX-License-Identifier: MIT

package similarity

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVHeaderFirstCell is the first header cell of the CSV serialization.
const CSVHeaderFirstCell = "Source Artifact"

// WriteCSV writes the dense view of m: a header "Source Artifact,<targets>"
// and one row per source, both in sorted order, with 4-decimal scores and
// 0.0000 for absent pairs. A pair added more than once is written with the
// score of its first link, matching Score. An empty matrix writes nothing.
func (m *Matrix) WriteCSV(w io.Writer) error {
	sources, targets := m.Sources(), m.Targets()
	if len(sources) == 0 || len(targets) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, len(targets)+1)
	header = append(header, CSVHeaderFirstCell)
	header = append(header, targets...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("similarity: write csv header: %w", err)
	}

	record := make([]string, len(targets)+1)
	for _, s := range sources {
		first := make(map[string]float64, len(m.rows[s]))
		for _, l := range m.rows[s] {
			if _, seen := first[l.Target]; !seen {
				first[l.Target] = l.Score
			}
		}
		record[0] = s
		for j, t := range targets {
			record[j+1] = strconv.FormatFloat(first[t], 'f', 4, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("similarity: write csv row %s: %w", s, err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("similarity: flush csv: %w", err)
	}
	return nil
}
