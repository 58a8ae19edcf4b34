package output

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/paylens/paylens/pkg/bands"
	"github.com/paylens/paylens/pkg/records"
)

var amounts = message.NewPrinter(language.English)

// Amount formats a salary value with thousands separators.
func Amount(v float64) string {
	return amounts.Sprintf("%.2f", v)
}

// BandsToTableData converts the band table plus its aligned benchmark
// series to table format.
func BandsToTableData(bs []bands.Band, benchmark []float64) Data {
	rows := make([][]string, 0, len(bs))
	for i, b := range bs {
		row := []string{
			strconv.Itoa(b.Grade),
			Amount(b.Minimum),
			Amount(b.Midpoint),
			Amount(b.Maximum),
		}
		if i < len(benchmark) {
			row = append(row, Amount(benchmark[i]))
		} else {
			row = append(row, "-")
		}
		rows = append(rows, row)
	}

	return Data{
		Headers: []string{"Grade", "Minimum", "Midpoint", "Maximum", "Market"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight, AlignRight, AlignRight, AlignRight, AlignRight,
		},
	}
}

// RecordsToTableData converts a record set to table format, grouped by
// ascending grade with outliers marked.
func RecordsToTableData(set *records.Set) Data {
	var rows [][]string
	for _, g := range set.Grades() {
		inBand, outliers := set.Partition(g)
		for _, r := range inBand {
			rows = append(rows, recordRow(r, ""))
		}
		for _, r := range outliers {
			rows = append(rows, recordRow(r, "OUTLIER"))
		}
	}

	return Data{
		Headers: []string{"ID", "Name", "Grade", "Total", "Status"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft,
		},
	}
}

// OutliersToTableData converts only the flagged records to table format.
func OutliersToTableData(set *records.Set) Data {
	var rows [][]string
	for _, r := range set.Outliers() {
		rows = append(rows, recordRow(r, "OUTLIER"))
	}

	return Data{
		Headers: []string{"ID", "Name", "Grade", "Total", "Status"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft,
		},
	}
}

func recordRow(r records.Record, status string) []string {
	return []string{
		r.ID,
		r.Name,
		fmt.Sprintf("%d", r.Grade),
		Amount(r.Total),
		status,
	}
}
