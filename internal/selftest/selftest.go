// Package selftest runs the documented entity examples and reports which
// produced the expected output.
package selftest

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Example is one documented call and its expected outcome. When WantErr is
// set the example passes only if Run returns an error matching it;
// otherwise Run must succeed and return exactly Want.
type Example struct {
	Name    string
	Want    string
	WantErr error
	Run     func() (string, error)
}

// Result is the outcome of a single Example.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Got    string `json:"got,omitempty"`
	Want   string `json:"want,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Report collects the results of one run.
type Report struct {
	RunID   string   `json:"run_id"`
	Locale  string   `json:"locale"`
	Results []Result `json:"results"`
}

// Passed returns the number of passing examples.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of failing examples.
func (r Report) Failed() int { return len(r.Results) - r.Passed() }

// OK reports whether every example passed.
func (r Report) OK() bool { return r.Failed() == 0 }

// Run executes every example in order. A panicking example is recorded as
// a failure; Run itself does not panic.
func Run(locale string, examples []Example, logger *zap.Logger) Report {
	report := Report{
		RunID:   newRunID(),
		Locale:  locale,
		Results: make([]Result, 0, len(examples)),
	}
	log := logger.With(zap.String("run_id", report.RunID), zap.String("locale", locale))
	log.Debug("selftest starting", zap.Int("examples", len(examples)))

	for _, ex := range examples {
		res := runOne(ex)
		if res.Passed {
			log.Debug("example passed", zap.String("example", ex.Name))
		} else {
			log.Warn("example failed",
				zap.String("example", ex.Name),
				zap.String("got", res.Got),
				zap.String("want", res.Want),
				zap.String("error", res.Err))
		}
		report.Results = append(report.Results, res)
	}

	log.Debug("selftest finished",
		zap.Int("passed", report.Passed()),
		zap.Int("failed", report.Failed()))
	return report
}

func runOne(ex Example) (res Result) {
	res = Result{Name: ex.Name, Want: ex.Want}
	if ex.WantErr != nil {
		res.Want = ex.WantErr.Error()
	}
	defer func() {
		if r := recover(); r != nil {
			res.Passed = false
			res.Err = fmt.Sprintf("panic: %v", r)
		}
	}()

	got, err := ex.Run()
	res.Got = got
	if err != nil {
		res.Err = err.Error()
	}
	if ex.WantErr != nil {
		res.Passed = errors.Is(err, ex.WantErr)
		return res
	}
	res.Passed = err == nil && got == ex.Want
	return res
}

// newRunID returns a UUID v7, falling back to v4 if the clock source fails.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// WriteText prints one PASS/FAIL line per example and a summary line.
func (r Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		var err error
		switch {
		case res.Passed:
			_, err = fmt.Fprintf(w, "PASS %s\n", res.Name)
		case res.Err != "":
			_, err = fmt.Fprintf(w, "FAIL %s: error %q, want %q\n", res.Name, res.Err, res.Want)
		default:
			_, err = fmt.Fprintf(w, "FAIL %s: got %q, want %q\n", res.Name, res.Got, res.Want)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed(), r.Failed())
	return err
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
