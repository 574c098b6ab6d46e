package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Scenario Suite: %s ===\n\n", r.Meta.Suite)

	header := []string{"Scenario", "Outcomes", "Vars", "Duration", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, e := range r.Entries {
		status := "OK"
		if !e.Passed() {
			status = "FAIL"
		}
		row := []string{
			e.ScenarioID,
			strings.Join(e.Outcomes, ","),
			fmt.Sprintf("%d", e.Variables),
			e.Duration.Truncate(time.Microsecond).String(),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed\n", r.Passed, r.Failed)

	writeFailures(tw, r)

	tw.Flush()
}

func writeFailures(tw *tabwriter.Writer, r *Report) {
	if r.Failed == 0 {
		return
	}
	fmt.Fprintf(tw, "\n--- Failures ---\n\n")
	for _, e := range r.Entries {
		if e.Passed() {
			continue
		}
		if e.Error != "" {
			fmt.Fprintf(tw, "%s: %s\n", e.ScenarioID, e.Error)
		}
		for _, m := range e.Mismatches {
			fmt.Fprintf(tw, "%s: %s\n", e.ScenarioID, m)
		}
	}
}
