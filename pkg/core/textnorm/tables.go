package textnorm

import (
	"regexp"
	"strings"
)

// Table is a run of consecutive table-like lines found in text.
type Table struct {
	Rows        [][]string `json:"rows"`
	RowCount    int        `json:"row_count"`
	ColumnCount int        `json:"column_count"` // max row width observed
}

var multiSpaceRE = regexp.MustCompile(`\s{3,}`)

// DetectTables scans text line by line for table-like structures. A line is
// table-like when it contains a tab or a run of three or more spaces;
// consecutive table-like lines form one candidate, closed by the first
// non-table-like line or end of input. Cells split on tabs when a tab is
// present, otherwise on 3+-space runs; empty cells are dropped after trimming.
func DetectTables(text string) []Table {
	var tables []Table
	var current [][]string

	closeTable := func() {
		if len(current) == 0 {
			return
		}
		maxCols := 0
		for _, row := range current {
			if len(row) > maxCols {
				maxCols = len(row)
			}
		}
		tables = append(tables, Table{
			Rows:        current,
			RowCount:    len(current),
			ColumnCount: maxCols,
		})
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if !isTableLine(line) {
			closeTable()
			continue
		}

		var raw []string
		if strings.Contains(line, "\t") {
			raw = strings.Split(line, "\t")
		} else {
			raw = multiSpaceRE.Split(line, -1)
		}

		var cells []string
		for _, c := range raw {
			if c = strings.TrimSpace(c); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			current = append(current, cells)
		}
	}
	closeTable()

	return tables
}

func isTableLine(line string) bool {
	return strings.Contains(line, "\t") || multiSpaceRE.MatchString(line)
}
