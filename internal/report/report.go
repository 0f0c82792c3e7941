// Package report renders validation diagnostics for terminals and for GitHub
// Actions workflow annotations.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/smy-101/skillcheck/internal/scanner"
	"github.com/smy-101/skillcheck/internal/types"
)

// Format selects how diagnostics are rendered.
type Format int

const (
	// FormatTerminal prints severity-tagged, colorized lines.
	FormatTerminal Format = iota
	// FormatGitHub prints one workflow command per diagnostic.
	FormatGitHub
)

const (
	colSkill    = "Skill"
	colErrors   = "Errors"
	colWarnings = "Warnings"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	successStyle = color.New(color.FgGreen, color.Bold)
	pathStyle    = color.New(color.FgBlue)
)

// Printer writes a validation result to an output sink.
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a Printer for out.
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format}
}

// Print writes errors first, then warnings, each under a count header.
// A result with no diagnostics prints a success line.
func (p *Printer) Print(result types.ValidationResult) {
	errs := result.Errors()
	warnings := result.Warnings()

	if len(errs) > 0 {
		fmt.Fprintf(p.out, "\n%s\n\n", errorStyle.Sprintf("Found %d error(s):", len(errs)))
		for _, d := range errs {
			fmt.Fprintln(p.out, p.formatDiagnostic(d))
		}
	}

	if len(warnings) > 0 {
		fmt.Fprintf(p.out, "\n%s\n\n", warningStyle.Sprintf("Found %d warning(s):", len(warnings)))
		for _, d := range warnings {
			fmt.Fprintln(p.out, p.formatDiagnostic(d))
		}
	}

	if len(errs) == 0 && len(warnings) == 0 {
		fmt.Fprintf(p.out, "\n%s\n\n", successStyle.Sprint("✓ All validations passed!"))
	}
}

// PrintSummary renders a per-skill table of error and warning counts.
// It prints nothing in GitHub format or when no skills were validated.
func (p *Printer) PrintSummary(skills []scanner.SkillReport) error {
	if p.format == FormatGitHub || len(skills) == 0 {
		return nil
	}

	cnf := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}

	table := tablewriter.NewTable(p.out, tablewriter.WithConfig(cnf))
	table.Header(colSkill, colErrors, colWarnings)

	for _, skill := range skills {
		table.Append(skill.Name,
			strconv.Itoa(len(skill.Result.Errors())),
			strconv.Itoa(len(skill.Result.Warnings())))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render summary table: %w", err)
	}

	fmt.Fprintf(p.out, "\nTotal: %d skills\n", len(skills))
	return nil
}

func (p *Printer) formatDiagnostic(d types.Diagnostic) string {
	if p.format == FormatGitHub {
		return FormatGitHubAnnotation(d)
	}
	return FormatTerminalLine(d)
}

// FormatTerminalLine renders "ERROR (path): message".
func FormatTerminalLine(d types.Diagnostic) string {
	var prefix string
	if d.Severity == types.SeverityError {
		prefix = errorStyle.Sprint("ERROR")
	} else {
		prefix = warningStyle.Sprint("WARNING")
	}

	location := ""
	if d.File != "" {
		location = " (" + pathStyle.Sprint(d.File) + ")"
	}
	return fmt.Sprintf("%s%s: %s", prefix, location, d.Message)
}

// FormatGitHubAnnotation renders "::error file=path::message". The file
// clause is omitted when the location is unknown.
func FormatGitHubAnnotation(d types.Diagnostic) string {
	if d.File != "" {
		return fmt.Sprintf("::%s file=%s::%s", d.Severity, escapeProperty(d.File), escapeData(d.Message))
	}
	return fmt.Sprintf("::%s::%s", d.Severity, escapeData(d.Message))
}

// escapeData keeps a message on a single workflow command line.
func escapeData(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(s)
}

func escapeProperty(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
	return r.Replace(s)
}
