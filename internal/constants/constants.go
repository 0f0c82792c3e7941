// Package constants holds the fixed rule data used by the skill validator.
// None of these values are user-configurable.
package constants

const (
	// SkillFileName is the required metadata file inside every skill directory.
	SkillFileName = "SKILL.md"

	// FrontmatterDelimiter opens and closes the YAML frontmatter block.
	FrontmatterDelimiter = "---"

	// ReferencesDir is where oversized SKILL.md content should be moved.
	ReferencesDir = "references"
)

// Limits
const (
	MaxNameLength        = 64
	MaxDescriptionLength = 1024
	MaxSkillLines        = 500
)

// AllowedSkillDirs lists the only subdirectories a skill may contain.
var AllowedSkillDirs = []string{"scripts", ReferencesDir, "assets"}

// ReservedWords cannot appear anywhere in a skill name. Matching is case-sensitive.
var ReservedWords = []string{"anthropic", "claude"}

// TriggerPhrases mark a description as explaining when to use the skill.
// Matched case-insensitively as substrings.
var TriggerPhrases = []string{"use when", "when", "if you", "for", "helps", "guides"}

// FirstPersonMarkers flag descriptions not written in third person.
var FirstPersonMarkers = []string{"i ", "we ", "my ", "our "}

// GerundPrefixes silence the gerund-form nudge when a name starts with one of them.
var GerundPrefixes = []string{
	"analyzing",
	"diagnosing",
	"migrating",
	"optimizing",
	"configuring",
	"implementing",
	"tuning",
	"validating",
	"planning",
}

// ExternalLinkPrefixes are link targets that are never resolved on disk.
var ExternalLinkPrefixes = []string{"http://", "https://", "#", "mailto:"}

// IsAllowedSkillDir reports whether name is one of AllowedSkillDirs.
func IsAllowedSkillDir(name string) bool {
	for _, dir := range AllowedSkillDirs {
		if dir == name {
			return true
		}
	}
	return false
}
