package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dshills/pbt/pkg/quantifier"
	"github.com/dshills/pbt/pkg/report"
	"github.com/dshills/pbt/pkg/runner"
)

func sampleSummary() *runner.Summary {
	return &runner.Summary{
		Seed: 42,
		Results: []runner.PropertyResult{
			{Name: "commutative-add", Status: runner.StatusPassed, SamplesRun: 100},
			{
				Name:       "div-by-x",
				Status:     runner.StatusFailed,
				SamplesRun: 7,
				Failing: &quantifier.Outcome{
					Kind: quantifier.PredicateErrorKind,
					Env:  nil,
					Err:  errDivByZero,
				},
			},
		},
	}
}

var errDivByZero = &divError{}

type divError struct{}

func (*divError) Error() string { return "division by zero" }

func TestJSONRoundTripsSummaryShape(t *testing.T) {
	data, err := report.JSON(sampleSummary())
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var decoded struct {
		Seed       uint64 `json:"seed"`
		Passed     int    `json:"passed"`
		Failed     int    `json:"failed"`
		Properties []struct {
			Name       string `json:"name"`
			Status     string `json:"status"`
			SamplesRun int    `json:"samples_run"`
			Error      string `json:"error"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v\ndata: %s", err, data)
	}
	if decoded.Seed != 42 || decoded.Passed != 1 || decoded.Failed != 1 {
		t.Fatalf("decoded = %+v, want Seed=42 Passed=1 Failed=1", decoded)
	}
	if len(decoded.Properties) != 2 {
		t.Fatalf("got %d properties, want 2", len(decoded.Properties))
	}
	if decoded.Properties[1].Error != "division by zero" {
		t.Fatalf("Properties[1].Error = %q, want %q", decoded.Properties[1].Error, "division by zero")
	}
}

func TestSVGProducesOneRowPerProperty(t *testing.T) {
	data, err := report.SVG(sampleSummary(), report.DefaultSVGOptions())
	if err != nil {
		t.Fatalf("SVG() error: %v", err)
	}
	limit := len(data)
	if limit > 200 {
		limit = 200
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("SVG() output does not look like SVG: %s", data[:limit])
	}
	if !bytes.Contains(data, []byte("commutative-add")) {
		t.Fatal("expected the (untruncated) passing property's name to appear as a row label")
	}
	if bytes.Count(data, []byte("passed")) != 1 {
		t.Fatalf("expected exactly one 'passed' row label, got %d", bytes.Count(data, []byte("passed")))
	}
	if bytes.Count(data, []byte("failed")) != 1 {
		t.Fatalf("expected exactly one 'failed' row label, got %d", bytes.Count(data, []byte("failed")))
	}
}
