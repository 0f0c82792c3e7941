// Package scanner discovers skill directories in a repository and validates
// each of them.
//
// A root that contains SKILL.md is a single skill. Otherwise skills live two
// levels down, as <root>/<domain>/<skill>/SKILL.md. Hidden directories are
// skipped and nothing deeper is searched.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smy-101/skillcheck/internal/constants"
	"github.com/smy-101/skillcheck/internal/logger"
	"github.com/smy-101/skillcheck/internal/types"
	"github.com/smy-101/skillcheck/internal/validate"
	"github.com/sourcegraph/conc/iter"
)

// SkillReport holds the result for one discovered skill.
type SkillReport struct {
	Dir    string
	Name   string
	Result types.ValidationResult
}

// Report aggregates every skill's diagnostics in discovery order.
type Report struct {
	types.ValidationResult
	Skills []SkillReport
}

// Scanner walks a repository root.
type Scanner struct {
	root    string
	workers int
	logger  logger.Logger
	opts    []validate.Option
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWorkers sets how many skills are validated concurrently. Values below 1
// mean sequential validation.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		s.workers = n
	}
}

// WithLogger sets the logger for the scanner and the validators it creates.
func WithLogger(l logger.Logger) Option {
	return func(s *Scanner) {
		s.logger = l
	}
}

// WithValidatorOptions passes options to every SkillValidator.
func WithValidatorOptions(opts ...validate.Option) Option {
	return func(s *Scanner) {
		s.opts = append(s.opts, opts...)
	}
}

// New creates a Scanner for root.
func New(root string, opts ...Option) *Scanner {
	s := &Scanner{
		root:    root,
		workers: 1,
		logger:  logger.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s
}

// Discover returns skill directories in discovery order. Entries are visited
// in lexical order so the result is stable between runs.
func (s *Scanner) Discover() ([]string, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{
				Type:    ErrorTypeNotFound,
				Message: fmt.Sprintf("Skills directory not found: %s", s.root),
			}
		}
		return nil, &ScanError{
			Type:    ErrorTypeFilesystem,
			Message: fmt.Sprintf("Failed to access %s", s.root),
			Err:     err,
		}
	}
	if !info.IsDir() {
		return nil, &ScanError{
			Type:    ErrorTypeNotDirectory,
			Message: fmt.Sprintf("Path is not a directory: %s", s.root),
		}
	}

	if hasSkillFile(s.root) {
		s.logger.Debug("Root is a single skill", logger.Field{Key: "root", Value: s.root})
		return []string{s.root}, nil
	}

	domains, err := subdirectories(s.root)
	if err != nil {
		return nil, err
	}

	var skills []string
	for _, domain := range domains {
		candidates, err := subdirectories(domain)
		if err != nil {
			return nil, err
		}
		for _, candidate := range candidates {
			if hasSkillFile(candidate) {
				skills = append(skills, candidate)
			}
		}
	}

	s.logger.Debug("Discovered skills",
		logger.Field{Key: "root", Value: s.root},
		logger.Field{Key: "count", Value: len(skills)})

	return skills, nil
}

// Validate discovers and validates every skill. A discovery failure becomes
// the report's only diagnostic.
func (s *Scanner) Validate(ctx context.Context) *Report {
	report := &Report{}

	dirs, err := s.Discover()
	if err != nil {
		s.logger.Error("Skill discovery failed", err, logger.Field{Key: "root", Value: s.root})
		report.Add(types.Diagnostic{
			Severity: types.SeverityError,
			Message:  err.Error(),
		})
		return report
	}

	validatorOpts := append([]validate.Option{validate.WithLogger(s.logger)}, s.opts...)

	mapper := iter.Mapper[string, SkillReport]{MaxGoroutines: s.workers}
	report.Skills = mapper.Map(dirs, func(dir *string) SkillReport {
		return SkillReport{
			Dir:    *dir,
			Name:   filepath.Base(*dir),
			Result: validate.New(*dir, validatorOpts...).Validate(ctx),
		}
	})

	for _, skill := range report.Skills {
		report.Merge(skill.Result)
	}

	return report
}

// subdirectories lists the non-hidden directories directly under dir, following symlinks.
func subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ScanError{
			Type:    ErrorTypeFilesystem,
			Message: fmt.Sprintf("Failed to read directory %s", dir),
			Err:     err,
		}
	}

	var dirs []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, path)
	}
	return dirs, nil
}

func hasSkillFile(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, constants.SkillFileName))
	return err == nil && !info.IsDir()
}
