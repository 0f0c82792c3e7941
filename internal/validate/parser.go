package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/smy-101/skillcheck/internal/constants"
	"github.com/smy-101/skillcheck/internal/types"
	"gopkg.in/yaml.v3"
)

// ParseFrontmatter splits SKILL.md content into its frontmatter mapping and body.
//
// The first line must be exactly "---" and the block ends at the next line that
// is exactly "---". The body is everything after the closing line, verbatim.
func ParseFrontmatter(content string) (map[string]any, string, error) {
	lines := strings.Split(content, "\n")
	if !isDelimiter(lines[0]) {
		return nil, "", &ParseError{
			Type:    ErrorTypeMissingFrontmatter,
			Message: fmt.Sprintf("%s must start with YAML frontmatter (%s)", constants.SkillFileName, constants.FrontmatterDelimiter),
		}
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, "", &ParseError{
			Type:    ErrorTypeUnclosedFrontmatter,
			Message: fmt.Sprintf("%s frontmatter not properly closed (missing closing %s)", constants.SkillFileName, constants.FrontmatterDelimiter),
		}
	}

	block := strings.Join(lines[1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")

	var raw any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, body, &ParseError{
			Type:    ErrorTypeInvalidYAML,
			Message: "Invalid YAML in frontmatter",
			Err:     err,
		}
	}

	fm, ok := asMapping(raw)
	if !ok {
		return nil, body, &ParseError{
			Type:    ErrorTypeNotMapping,
			Message: fmt.Sprintf("%s frontmatter must be a YAML dictionary", constants.SkillFileName),
		}
	}

	return fm, body, nil
}

// ParseMetadata parses content and extracts the well-known string fields.
// Fields with the wrong type are left empty; use a SkillValidator to report them.
func ParseMetadata(content string) (*types.SkillMetadata, string, error) {
	fm, body, err := ParseFrontmatter(content)
	if err != nil {
		return nil, body, err
	}

	meta := &types.SkillMetadata{}
	meta.Name, _ = fm["name"].(string)
	meta.Description, _ = fm["description"].(string)
	meta.License, _ = fm["license"].(string)
	meta.Compatibility, _ = fm["compatibility"].(string)
	meta.Metadata, _ = asMapping(fm["metadata"])
	return meta, body, nil
}

func isDelimiter(line string) bool {
	return strings.TrimSuffix(line, "\r") == constants.FrontmatterDelimiter
}

func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// kindOf names the YAML kind of a decoded value for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	case time.Time:
		return "timestamp"
	case []any:
		return "list"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
