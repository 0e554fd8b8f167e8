package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/common"
)

// Diagnostic codes.
const (
	CodeDuplicateKey    = "DUPLICATE_KEY"
	CodeUnsupportedType = "UNSUPPORTED_TYPE"
	CodeRenderFailed    = "RENDER_FAILED"
	CodeWriteFailed     = "WRITE_FAILED"
)

// Severity grades a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding, optionally tied to an owning type and field.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	// Owner is the qualified owning type, e.g. "example.com/app.Screen".
	Owner string
	// Field is the Go field name.
	Field string
}

// Error renders the diagnostic as "[owner] field: [CODE] message".
func (d Diagnostic) Error() string {
	var sb strings.Builder

	if d.Owner != "" {
		sb.WriteString("[" + d.Owner + "]")
	}

	if d.Field != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(d.Field)
	}

	if sb.Len() > 0 {
		sb.WriteString(": ")
	}

	if d.Code != "" {
		sb.WriteString("[" + d.Code + "] ")
	}

	sb.WriteString(d.Message)

	return sb.String()
}

// Diagnostics collects the findings of one generation pass in the order
// they were reported. The zero value is ready to use.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) add(sev Severity, code, owner, field, format string, args []any) {
	d.items = append(d.items, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Owner:    owner,
		Field:    field,
	})
}

// Errorf records an error.
func (d *Diagnostics) Errorf(code, owner, field, format string, args ...any) {
	d.add(SeverityError, code, owner, field, format, args)
}

// Warnf records a warning.
func (d *Diagnostics) Warnf(code, owner, field, format string, args ...any) {
	d.add(SeverityWarning, code, owner, field, format, args)
}

// Infof records an informational finding.
func (d *Diagnostics) Infof(code, owner, field, format string, args ...any) {
	d.add(SeverityInfo, code, owner, field, format, args)
}

// Merge appends every finding of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other != nil {
		d.items = append(d.items, other.items...)
	}
}

// Len returns the number of findings.
func (d *Diagnostics) Len() int {
	return len(d.items)
}

// Errors returns the error findings.
func (d *Diagnostics) Errors() []Diagnostic { return d.filter(SeverityError) }

// Warnings returns the warning findings.
func (d *Diagnostics) Warnings() []Diagnostic { return d.filter(SeverityWarning) }

// Infos returns the informational findings.
func (d *Diagnostics) Infos() []Diagnostic { return d.filter(SeverityInfo) }

func (d *Diagnostics) filter(sev Severity) []Diagnostic {
	var out []Diagnostic

	for _, item := range d.items {
		if item.Severity == sev {
			out = append(out, item)
		}
	}

	return out
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}

	return false
}

// All returns every finding, most severe first, keeping report order
// within a severity.
func (d *Diagnostics) All() []Diagnostic {
	all := append([]Diagnostic(nil), d.items...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Severity > all[j].Severity
	})

	return all
}

// Err joins the error findings into one error, or returns nil.
func (d *Diagnostics) Err() error {
	var errs []error
	for _, item := range d.Errors() {
		errs = append(errs, item)
	}

	return errors.Join(errs...)
}
