package report

import (
	"encoding/json"
	"os"

	"github.com/dshills/pbt/pkg/quantifier"
	"github.com/dshills/pbt/pkg/runner"
)

// document is the JSON shape of a runner.Summary. Field names are
// stable: this is the machine-readable report format, not a debug dump.
type document struct {
	Seed       uint64           `json:"seed"`
	Passed     int              `json:"passed"`
	Failed     int              `json:"failed"`
	Properties []propertyRecord `json:"properties"`
}

type propertyRecord struct {
	Name           string `json:"name"`
	Status         string `json:"status"`
	SamplesRun     int    `json:"samples_run"`
	Counterexample string `json:"counterexample,omitempty"`
	Error          string `json:"error,omitempty"`
}

func toDocument(summary *runner.Summary) document {
	doc := document{
		Seed:   summary.Seed,
		Passed: summary.Passed(),
		Failed: summary.Failed(),
	}
	for _, r := range summary.Results {
		rec := propertyRecord{
			Name:       r.Name,
			Status:     r.Status.String(),
			SamplesRun: r.SamplesRun,
		}
		if r.Failing != nil {
			rec.Counterexample = r.Failing.Env.String()
			if r.Failing.Kind == quantifier.PredicateErrorKind && r.Failing.Err != nil {
				rec.Error = r.Failing.Err.Error()
			}
		}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		doc.Properties = append(doc.Properties, rec)
	}
	return doc
}

// JSON serializes summary with 2-space indentation.
func JSON(summary *runner.Summary) ([]byte, error) {
	return json.MarshalIndent(toDocument(summary), "", "  ")
}

// SaveJSONToFile writes JSON(summary) to path with 0644 permissions.
func SaveJSONToFile(summary *runner.Summary, path string) error {
	data, err := JSON(summary)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
