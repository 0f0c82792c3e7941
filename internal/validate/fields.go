package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/smy-101/skillcheck/internal/constants"
)

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// validateFrontmatter checks each known field. A missing name or description
// is reported once and stops all further field checks.
func (v *SkillValidator) validateFrontmatter(fm map[string]any) {
	name, ok := fm["name"]
	if !ok {
		v.errorf("", "Missing required field 'name' in frontmatter")
		return
	}
	description, ok := fm["description"]
	if !ok {
		v.errorf("", "Missing required field 'description' in frontmatter")
		return
	}

	v.validateName(name)
	v.validateDescription(description)

	if license, ok := fm["license"]; ok {
		v.validateStringField("license", license)
	}
	if compatibility, ok := fm["compatibility"]; ok {
		v.validateStringField("compatibility", compatibility)
	}
	if metadata, ok := fm["metadata"]; ok {
		if _, isMap := asMapping(metadata); !isMap {
			v.errorf("", "'metadata' field must be a dictionary, got %s", kindOf(metadata))
		}
	}
}

func (v *SkillValidator) validateName(raw any) {
	name, ok := raw.(string)
	if !ok {
		v.errorf("", "Skill name must be a string, got %s", kindOf(raw))
		return
	}

	if n := utf8.RuneCountInString(name); n > constants.MaxNameLength {
		v.errorf("", "Skill name exceeds maximum length of %d characters (%d chars)", constants.MaxNameLength, n)
	}

	if !namePattern.MatchString(name) {
		v.errorf("", "Skill name must contain only lowercase letters, numbers, and hyphens")
	}

	for _, reserved := range constants.ReservedWords {
		if strings.Contains(name, reserved) {
			v.errorf("", "Skill name cannot contain reserved word '%s'", reserved)
		}
	}

	if strings.ContainsAny(name, "<>") {
		v.errorf("", "Skill name cannot contain XML tags")
	}

	if name != v.dirName {
		v.errorf("", "Skill name '%s' does not match directory name '%s'", name, v.dirName)
	}

	if !isGerundName(name) {
		v.warnf("", "Consider using gerund form (verb-ing) for skill name: '%s' → '%sing' or 'analyzing-%s'", name, name, name)
	}
}

// isGerundName is a loose style nudge: a name passes when it ends in "ing" or
// starts with a known gerund verb, even if the rest is not a gerund.
func isGerundName(name string) bool {
	if strings.HasSuffix(name, "ing") {
		return true
	}
	for _, prefix := range constants.GerundPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (v *SkillValidator) validateDescription(raw any) {
	description, ok := raw.(string)
	if !ok {
		v.errorf("", "Skill description must be a string, got %s", kindOf(raw))
		return
	}

	if strings.TrimSpace(description) == "" {
		v.errorf("", "Skill description cannot be empty")
		return
	}

	if n := utf8.RuneCountInString(description); n > constants.MaxDescriptionLength {
		v.errorf("", "Skill description exceeds maximum length of %d characters (%d chars)", constants.MaxDescriptionLength, n)
	}

	if strings.ContainsAny(description, "<>") {
		v.errorf("", "Skill description cannot contain XML tags")
	}

	lower := strings.ToLower(description)
	if !containsAny(lower, constants.TriggerPhrases) {
		v.warnf("", "Description should include clear 'when to use' triggers (e.g., 'Use when...', 'For...')")
	}

	if containsAny(lower, constants.FirstPersonMarkers) {
		v.warnf("", "Description should use third person (avoid 'I', 'we', 'my', 'our')")
	}

	if len(strings.Split(description, ".")) < 2 {
		v.warnf("", "Description should include both WHAT the skill does and WHEN to use it (at least 2 sentences recommended)")
	}
}

func (v *SkillValidator) validateStringField(field string, raw any) {
	if _, ok := raw.(string); !ok {
		v.errorf("", "'%s' field must be a string, got %s", field, kindOf(raw))
	}
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
