// Package validate checks a single skill directory against the Agent Skills
// layout: frontmatter parsing, field rules, directory structure and content
// heuristics. Findings are collected as diagnostics, never returned as errors.
package validate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smy-101/skillcheck/internal/constants"
	"github.com/smy-101/skillcheck/internal/logger"
	"github.com/smy-101/skillcheck/internal/types"
)

// LinkChecker probes an external URL. A nil error means the link is reachable.
type LinkChecker interface {
	Check(ctx context.Context, url string) error
}

// Option configures a SkillValidator.
type Option func(*SkillValidator)

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) Option {
	return func(v *SkillValidator) {
		v.logger = l
	}
}

// WithLinkChecker enables probing of http(s) links found in the body.
func WithLinkChecker(c LinkChecker) Option {
	return func(v *SkillValidator) {
		v.links = c
	}
}

// SkillValidator validates one skill directory. It is single-use: create a new
// one for every run.
type SkillValidator struct {
	dir       string
	dirName   string
	skillFile string
	links     LinkChecker
	logger    logger.Logger
	result    types.ValidationResult
}

// New creates a validator for the skill rooted at dir.
func New(dir string, opts ...Option) *SkillValidator {
	v := &SkillValidator{
		dir:       dir,
		dirName:   directoryName(dir),
		skillFile: filepath.Join(dir, constants.SkillFileName),
		logger:    logger.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every rule and returns the collected diagnostics.
// A missing or malformed SKILL.md stops the frontmatter and content checks for
// this skill only.
func (v *SkillValidator) Validate(ctx context.Context) types.ValidationResult {
	v.logger.Debug("Validating skill", logger.Field{Key: "dir", Value: v.dir})

	if _, err := os.Stat(v.skillFile); err != nil {
		if os.IsNotExist(err) {
			v.errorf("", "Missing required %s file in %s", constants.SkillFileName, v.dir)
		} else {
			v.errorf("", "Failed to read %s: %v", constants.SkillFileName, err)
		}
		return v.result
	}

	v.validateDirectoryStructure()

	data, err := os.ReadFile(v.skillFile)
	if err != nil {
		v.errorf("", "Failed to read %s: %v", constants.SkillFileName, err)
		return v.result
	}

	frontmatter, body, err := ParseFrontmatter(string(data))
	if err != nil {
		v.logger.Debug("Frontmatter rejected",
			logger.Field{Key: "file", Value: v.skillFile},
			logger.Field{Key: "error", Value: err})
		v.errorf("", "%s", err.Error())
		return v.result
	}

	v.validateFrontmatter(frontmatter)
	v.validateContent(ctx, body)

	return v.result
}

func (v *SkillValidator) errorf(file, format string, args ...any) {
	v.add(types.SeverityError, file, format, args...)
}

func (v *SkillValidator) warnf(file, format string, args ...any) {
	v.add(types.SeverityWarning, file, format, args...)
}

func (v *SkillValidator) add(sev types.Severity, file, format string, args ...any) {
	if file == "" {
		file = v.skillFile
	}
	v.result.Add(types.Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		File:     file,
	})
}

// directoryName returns the final path segment of dir, resolving "." and
// trailing separators against the working directory.
func directoryName(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return filepath.Base(abs)
	}
	return filepath.Base(filepath.Clean(dir))
}
