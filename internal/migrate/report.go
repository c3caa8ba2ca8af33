// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package migrate

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteReport renders one row per file of a batch run.
func WriteReport(w io.Writer, r BatchResult) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Input", "Output", "Status", "Translated", "Passed", "Failed"})

	for _, f := range r.Files {
		table.Append([]string{
			f.Input,
			f.Output,
			string(f.Status),
			strconv.Itoa(f.Documents.Translated),
			strconv.Itoa(f.Documents.PassedThrough),
			strconv.Itoa(f.Documents.Failed),
		})
	}
	table.Render()
}
