package types

import "testing"

func TestExitCode(t *testing.T) {
	errDiag := Diagnostic{Severity: SeverityError, Message: "bad"}
	warnDiag := Diagnostic{Severity: SeverityWarning, Message: "meh"}

	tests := []struct {
		name   string
		diags  []Diagnostic
		strict bool
		want   int
	}{
		{name: "clean", want: 0},
		{name: "clean strict", strict: true, want: 0},
		{name: "warning only", diags: []Diagnostic{warnDiag}, want: 0},
		{name: "warning only strict", diags: []Diagnostic{warnDiag}, strict: true, want: 1},
		{name: "error", diags: []Diagnostic{errDiag}, want: 1},
		{name: "error and warning strict", diags: []Diagnostic{warnDiag, errDiag}, strict: true, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidationResult{Diagnostics: tt.diags}
			if got := r.ExitCode(tt.strict); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.strict, got, tt.want)
			}
		})
	}
}

func TestPartitionKeepsOrder(t *testing.T) {
	var r ValidationResult
	r.Add(
		Diagnostic{Severity: SeverityWarning, Message: "w1"},
		Diagnostic{Severity: SeverityError, Message: "e1"},
		Diagnostic{Severity: SeverityWarning, Message: "w2"},
	)
	r.Merge(ValidationResult{Diagnostics: []Diagnostic{{Severity: SeverityError, Message: "e2"}}})

	errs := r.Errors()
	if len(errs) != 2 || errs[0].Message != "e1" || errs[1].Message != "e2" {
		t.Errorf("Errors() = %+v", errs)
	}
	warns := r.Warnings()
	if len(warns) != 2 || warns[0].Message != "w1" || warns[1].Message != "w2" {
		t.Errorf("Warnings() = %+v", warns)
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" {
		t.Errorf("SeverityError.String() = %q", SeverityError.String())
	}
	if SeverityWarning.String() != "warning" {
		t.Errorf("SeverityWarning.String() = %q", SeverityWarning.String())
	}
}
