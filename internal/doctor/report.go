// Package doctor diagnoses shotgun's config file and per-platform
// credentials, and repairs what it safely can.
package doctor

import "time"

// Severity orders check outcomes from harmless to blocking.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{"pass", "info", "warning", "error"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText makes JSON reports carry the name, not the ordinal.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is what one check found. Details never holds raw secrets.
type Result struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Status   Severity       `json:"status"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
	Fixable  bool           `json:"fixable,omitempty"`
	FixHint  string         `json:"fix_hint,omitempty"`
}

// Summary counts results per severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) add(sev Severity) {
	switch sev {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	case SeverityError:
		s.Errors++
	}
}

// Report is the outcome of one Runner.Run.
type Report struct {
	Timestamp time.Time `json:"timestamp"`
	Results   []*Result `json:"results"`
	Summary   Summary   `json:"summary"`
}

func (r *Report) HasErrors() bool   { return r.Summary.Errors > 0 }
func (r *Report) HasWarnings() bool { return r.Summary.Warnings > 0 }

// Fixable reports whether any result could be repaired with --fix.
func (r *Report) Fixable() bool {
	for _, res := range r.Results {
		if res.Fixable {
			return true
		}
	}
	return false
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Category() string
	Run() *Result
}

// Fixer is implemented by checks that can repair what their last Run found.
// Fix returns nothing when there is nothing to repair.
type Fixer interface {
	Fix() []Repair
}

// Repair records one attempted fix. Err is nil when it was applied.
type Repair struct {
	Path   string `json:"path"`
	Action string `json:"action"`
	Err    error  `json:"-"`
}

// Runner runs checks in registration order.
type Runner struct {
	checks []Check
	now    func() time.Time
}

func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks, now: time.Now}
}

func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: r.now().UTC(),
		Results:   make([]*Result, 0, len(r.checks)),
	}
	for _, c := range r.checks {
		res := c.Run()
		report.Results = append(report.Results, res)
		report.Summary.add(res.Status)
	}
	return report
}

// Fix asks every Fixer to repair the issues from the preceding Run.
func (r *Runner) Fix() []Repair {
	var repairs []Repair
	for _, c := range r.checks {
		if f, ok := c.(Fixer); ok {
			repairs = append(repairs, f.Fix()...)
		}
	}
	return repairs
}
