package verify

import (
	"fmt"
	"io"

	"github.com/davejbax/memalign/internal/iometa"
	jsoniter "github.com/json-iterator/go"
)

// Result is the outcome of one check of one subject against one alignment.
type Result struct {
	Check     string `json:"check"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Alignment uint64 `json:"alignment"`
	Want      string `json:"want"`
	Got       string `json:"got"`
	Pass      bool   `json:"pass"`
}

// String formats r the way the original smoke test printed its cases.
func (r *Result) String() string {
	line := fmt.Sprintf("Test: %s<%s>(%s, %d) == %s : ", r.Check, r.Type, r.Value, r.Alignment, r.Want)
	if r.Pass {
		return line + "OK"
	}

	return line + "FAIL (" + r.Got + ")"
}

// Report holds every result of a run with pass and fail counts.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// NewReport marks each result as passed or failed and counts them.
func NewReport(results []Result) *Report {
	r := &Report{Results: results}
	for i := range r.Results {
		res := &r.Results[i]
		res.Pass = res.Want == res.Got
		if res.Pass {
			r.Passed++
		} else {
			r.Failed++
		}
	}

	return r
}

// FailuresOnly returns a copy of r holding only the failed results. The
// counts are kept.
func (r *Report) FailuresOnly() *Report {
	out := &Report{Passed: r.Passed, Failed: r.Failed}
	for _, res := range r.Results {
		if !res.Pass {
			out.Results = append(out.Results, res)
		}
	}

	return out
}

// WriteTo writes one line per result followed by a summary line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := iometa.NewCountingWriter(w)

	for i := range r.Results {
		cw.Println(r.Results[i].String())
	}

	cw.Printf("%d checks, %d passed, %d failed\n", r.Passed+r.Failed, r.Passed, r.Failed)

	return cw.Result()
}

// WriteJSON writes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}
