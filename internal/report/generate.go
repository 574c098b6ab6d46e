package report

import "github.com/DjordjeVuckovic/base-checker/internal/scenario"

func Generate(res *scenario.Result) *Report {
	r := &Report{
		Meta: Meta{
			Suite:       res.SuiteName,
			Timestamp:   res.Started,
			Environment: NewEnvironmentInfo(),
		},
	}

	for _, sr := range res.Scenarios {
		e := Entry{
			ScenarioID: sr.ID,
			Variables:  sr.Variables,
			Mismatches: sr.Mismatches,
			Duration:   sr.Duration,
		}
		for _, d := range sr.Diagnostics {
			e.Outcomes = append(e.Outcomes, d.Kind.String())
		}
		if sr.Error != nil {
			e.Error = sr.Error.Error()
		}
		if e.Passed() {
			r.Passed++
		} else {
			r.Failed++
		}
		r.Entries = append(r.Entries, e)
	}

	return r
}
