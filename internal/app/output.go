package app

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/series"
)

// asTable normalizes a computed value for output. A series that lost its
// name, such as a sum of differently named series, is named fallback.
func asTable(v calc.Value, fallback string) (*series.Table, error) {
	switch v := v.(type) {
	case *series.Series:
		if v.Name == "" {
			v = v.Rename(fallback)
		}
		return series.NewTable(v)
	case *series.Table:
		return v, nil
	default:
		return nil, fmt.Errorf("output node produced %T, expected a series or a table", v)
	}
}

// writeText prints one row per period and one column per series. Periods a
// column does not cover are left blank.
func writeText(w io.Writer, t *series.Table) error {
	cols := t.Columns()

	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, c := range cols {
		for _, d := range c.Index {
			if !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "date")
	for _, c := range cols {
		fmt.Fprintf(tw, "\t%s", c.Name)
	}
	fmt.Fprintln(tw)

	for _, d := range dates {
		fmt.Fprint(tw, d.Format(time.DateOnly))
		for _, c := range cols {
			cell := ""
			if v, ok := c.At(d); ok {
				cell = strconv.FormatFloat(v, 'g', -1, 64)
			}
			fmt.Fprintf(tw, "\t%s", cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
