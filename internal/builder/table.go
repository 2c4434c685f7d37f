// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package builder

import (
	"regexp"

	"github.com/pdiddy/doc-converter/pkg/types"
)

var (
	// rowPattern matches one table row, spanning newlines.
	rowPattern = regexp.MustCompile(`(?s)<tr(?:\s[^>]*)?>(.*?)</tr>`)

	// headerCellPattern matches a header cell. The attribute group keeps
	// <thead> from matching.
	headerCellPattern = regexp.MustCompile(`(?s)<th(?:\s[^>]*)?>(.*?)</th>`)

	// dataCellPattern matches a data cell.
	dataCellPattern = regexp.MustCompile(`(?s)<td(?:\s[^>]*)?>(.*?)</td>`)
)

// ExtractTable builds a table from the markup between <table> and </table>.
// The first row supplies the header cells (<th>), every later row supplies
// data cells (<td>). It reports false when body has no rows at all.
func ExtractTable(body string) (types.Table, bool) {
	rows := rowPattern.FindAllStringSubmatch(body, -1)
	if len(rows) == 0 {
		return types.Table{}, false
	}

	table := types.Table{
		Header: cells(headerCellPattern, rows[0][1]),
		Rows:   make([][]string, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		table.Rows = append(table.Rows, cells(dataCellPattern, row[1]))
	}
	return table, true
}

func cells(pattern *regexp.Regexp, row string) []string {
	matches := pattern.FindAllStringSubmatch(row, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, Clean(m[1]))
	}
	return out
}
