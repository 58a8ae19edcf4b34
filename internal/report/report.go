// Package report renders a markdown reconciliation report from the
// chart-ready dataset: the band table, grade-by-grade market comparison,
// and the outlier listing. The report is the hand-off artifact for the
// rendering layer and for download; it carries numbers, not drawings.
package report

import (
	"fmt"
	"io"
	"time"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/paylens/paylens/pkg/chart"
)

// Options controls report rendering.
type Options struct {
	Title       string    // Report title; defaults to "Salary Structure Analysis"
	Currency    string    // Currency label for amounts; defaults to "AED"
	GeneratedAt time.Time // Date stamp; defaults to now
}

// Write renders the dataset as a markdown report.
func Write(w io.Writer, ds *chart.Dataset, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Salary Structure Analysis"
	}
	if opts.Currency == "" {
		opts.Currency = "AED"
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	p := message.NewPrinter(language.English)
	amount := func(v float64) string {
		return p.Sprintf("%s %.2f", opts.Currency, v)
	}

	doc := md.NewMarkdown(w)
	doc.H1(opts.Title).LF()
	doc.PlainText("Comparing internal salary structure with market benchmarks.").LF().LF()
	doc.PlainTextf("Report generated: %s", opts.GeneratedAt.Format("January 2, 2006")).LF().LF()

	doc.H2("Grade Bands").LF()
	bandRows := make([][]string, len(ds.Grades))
	for i, g := range ds.Grades {
		bandRows[i] = []string{
			fmt.Sprintf("Grade %d", g),
			amount(ds.Minimums[i]),
			amount(ds.Midpoints[i]),
			amount(ds.Maximums[i]),
			amount(ds.Benchmark[i]),
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"Grade", "Minimum", "Midpoint", "Maximum", "Market 50th Percentile"},
		Rows:   bandRows,
	})
	doc.LF()

	if len(ds.Groups) == 0 {
		doc.PlainText("No employee data loaded; the report covers grade ranges and market values only.").LF()
		return doc.Build()
	}

	total, outliers := 0, 0
	for _, g := range ds.Groups {
		total += len(g.InBand) + len(g.Outliers)
		outliers += len(g.Outliers)
	}

	doc.H2("Employees").LF()
	doc.PlainTextf("%d employee records across %d grades, %d outside their grade's band.",
		total, len(ds.Groups), outliers).LF().LF()

	if outliers > 0 {
		doc.H2("Outliers").LF()
		var rows [][]string
		for _, g := range ds.Groups {
			for _, pt := range g.Outliers {
				rows = append(rows, []string{
					pt.ID,
					pt.Name,
					fmt.Sprintf("Grade %d", g.Grade),
					pt.Designation,
					pt.Department,
					amount(pt.Total),
				})
			}
		}
		doc.Table(md.TableSet{
			Header: []string{"ID", "Name", "Grade", "Designation", "Department", "Total"},
			Rows:   rows,
		})
		doc.LF()
	}

	return doc.Build()
}
