package types

// Severity classifies a Diagnostic.
type Severity int

const (
	// SeverityError is a spec violation that must be fixed.
	SeverityError Severity = iota
	// SeverityWarning is an advisory best-practice deviation.
	SeverityWarning
)

// String returns the lowercase name used in CI annotations.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Severity Severity
	Message  string
	// File is the offending file. Empty when no location is known.
	File string
}

// SkillMetadata is the parsed SKILL.md frontmatter.
type SkillMetadata struct {
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description"`
	License       string         `yaml:"license,omitempty"`
	Compatibility string         `yaml:"compatibility,omitempty"`
	Metadata      map[string]any `yaml:"metadata,omitempty"`
}

// ValidationResult is the ordered set of diagnostics for one skill or a whole repository.
type ValidationResult struct {
	Diagnostics []Diagnostic
}

// Add appends diagnostics, keeping their order.
func (r *ValidationResult) Add(diags ...Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, diags...)
}

// Merge appends every diagnostic of other.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Add(other.Diagnostics...)
}

// Errors returns the error diagnostics in order.
func (r ValidationResult) Errors() []Diagnostic {
	return r.filter(SeverityError)
}

// Warnings returns the warning diagnostics in order.
func (r ValidationResult) Warnings() []Diagnostic {
	return r.filter(SeverityWarning)
}

func (r ValidationResult) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any error diagnostic is present.
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors()) > 0
}

// ExitCode maps the result to a process exit status.
// Warnings fail the run only in strict mode.
func (r ValidationResult) ExitCode(strict bool) int {
	if r.HasErrors() {
		return 1
	}
	if strict && len(r.Warnings()) > 0 {
		return 1
	}
	return 0
}
