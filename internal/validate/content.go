package validate

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/smy-101/skillcheck/internal/constants"
	"github.com/smy-101/skillcheck/internal/logger"
)

// linkPattern matches inline markdown links: [text](target).
var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

func (v *SkillValidator) validateContent(ctx context.Context, body string) {
	lines := strings.Split(body, "\n")

	if len(lines) > constants.MaxSkillLines {
		v.warnf("", "%s has %d lines (recommended: ≤%d). Consider using %s/ for detailed content.",
			constants.SkillFileName, len(lines), constants.MaxSkillLines, constants.ReferencesDir)
	}

	probed := make(map[string]struct{})
	for _, line := range lines {
		for _, match := range linkPattern.FindAllStringSubmatch(line, -1) {
			target := match[2]

			if isWebLink(target) {
				if v.links == nil {
					continue
				}
				if _, seen := probed[target]; seen {
					continue
				}
				probed[target] = struct{}{}
				v.checkExternalLink(ctx, target)
				continue
			}

			if hasExternalPrefix(target) {
				continue
			}

			if !v.referenceExists(target) {
				v.warnf("", "Broken internal reference: %s", target)
			}
		}
	}
}

func (v *SkillValidator) referenceExists(target string) bool {
	path := target
	if !filepath.IsAbs(path) {
		path = filepath.Join(v.dir, target)
	}
	_, err := os.Stat(path)
	return err == nil
}

func (v *SkillValidator) checkExternalLink(ctx context.Context, url string) {
	if err := v.links.Check(ctx, url); err != nil {
		v.logger.Debug("External link unreachable",
			logger.Field{Key: "url", Value: url},
			logger.Field{Key: "error", Value: err})
		v.warnf("", "Unreachable external link: %s (%v)", url, err)
	}
}

func isWebLink(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

func hasExternalPrefix(target string) bool {
	for _, prefix := range constants.ExternalLinkPrefixes {
		if strings.HasPrefix(target, prefix) {
			return true
		}
	}
	return false
}
