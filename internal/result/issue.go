package result

import (
	"fmt"
	"strings"
)

// Severity of a generation issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Machine-checkable issue codes
const (
	CodeInvalidIR            = "invalid-ir"
	CodeMissingRequiredField = "missing-required-field"
	CodeUnsupportedKind      = "unsupported-kind"
	CodeOutOfRange           = "out-of-range"
)

// Issue describes a problem found while generating CSS from IR
type Issue struct {
	Severity   Severity `json:"severity" yaml:"severity"`
	Code       string   `json:"code" yaml:"code"`
	Message    string   `json:"message" yaml:"message"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

func (i Issue) String() string {
	s := fmt.Sprintf("%s [%s]: %s", i.Severity, i.Code, i.Message)
	if i.Suggestion != "" {
		s += " (suggestion: " + i.Suggestion + ")"
	}
	return s
}

// GenerateResult is the outcome of generating CSS text from IR.
// OK implies no error-severity issue is present and Value is set.
type GenerateResult struct {
	OK     bool    `json:"ok" yaml:"ok"`
	Value  string  `json:"value,omitempty" yaml:"value,omitempty"`
	Issues []Issue `json:"issues" yaml:"issues"`
}

// Generated builds a successful GenerateResult. Only warnings may be attached.
func Generated(value string, warnings ...Issue) GenerateResult {
	issues := []Issue{}
	for _, w := range warnings {
		w.Severity = SeverityWarning
		issues = append(issues, w)
	}
	return GenerateResult{OK: true, Value: value, Issues: issues}
}

// Failed builds a failed GenerateResult from at least one issue
func Failed(issues ...Issue) GenerateResult {
	if len(issues) == 0 {
		issues = []Issue{InvalidIR("generation failed")}
	}
	return GenerateResult{OK: false, Issues: issues}
}

// FromIssues builds a failed result if any issue is an error, otherwise
// calls generate to produce the value.
func FromIssues(issues []Issue, generate func() string) GenerateResult {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return Failed(issues...)
		}
	}
	return Generated(generate(), issues...)
}

// Errors returns the error-severity issues
func (g GenerateResult) Errors() []Issue {
	var out []Issue
	for _, issue := range g.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

// Err folds the error issues into a single error, or nil on success
func (g GenerateResult) Err() error {
	if g.OK {
		return nil
	}
	msgs := make([]string, 0, len(g.Issues))
	for _, issue := range g.Errors() {
		msgs = append(msgs, issue.Message)
	}
	return &GenerateError{Issues: g.Issues, summary: strings.Join(msgs, "; ")}
}

// GenerateError carries the issues of a failed generation as an error
type GenerateError struct {
	Issues  []Issue
	summary string
}

func (e *GenerateError) Error() string {
	return "generation failed: " + e.summary
}

// InvalidIR reports an IR value that violates its own invariants
func InvalidIR(format string, args ...any) Issue {
	return Issue{Severity: SeverityError, Code: CodeInvalidIR, Message: fmt.Sprintf(format, args...)}
}

// MissingField reports a required IR field that is absent
func MissingField(field string) Issue {
	return Issue{
		Severity:   SeverityError,
		Code:       CodeMissingRequiredField,
		Message:    fmt.Sprintf("missing required field %q", field),
		Suggestion: fmt.Sprintf("set %q before generating", field),
	}
}

// UnsupportedKind reports an IR discriminant the generator does not know
func UnsupportedKind(kind string) Issue {
	return Issue{Severity: SeverityError, Code: CodeUnsupportedKind, Message: fmt.Sprintf("unsupported kind %q", kind)}
}

// OutOfRange reports a numeric IR field outside its domain
func OutOfRange(field string, value float64, lo, hi string) Issue {
	return Issue{
		Severity:   SeverityError,
		Code:       CodeOutOfRange,
		Message:    fmt.Sprintf("%s must be between %s and %s, got %v", field, lo, hi, value),
		Suggestion: fmt.Sprintf("clamp %s into [%s, %s]", field, lo, hi),
	}
}

// WithPath prefixes the issue message with a field path
func (i Issue) WithPath(path string) Issue {
	if path != "" {
		i.Message = path + ": " + i.Message
	}
	return i
}
